package store

import (
	"sync"

	"github.com/streetbites/streetbites/client"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
)

// Notifier surfaces a user-visible message, the toast of the terminal world.
type Notifier func(title, message string)

// CustomerCache persists the customer's name and phone across sessions so
// order forms come pre-filled. session.Store satisfies it.
type CustomerCache interface {
	SaveCustomer(name, phone string) error
}

// Store is the in-memory authority for the cart, the vendor's current-day
// order board, and the customer's own orders. The backend owns the data;
// everything here is a volatile cached copy reconciled after each mutation.
//
// Construct one per process and pass it around; nothing in here is ambient.
type Store struct {
	mu  sync.Mutex
	api *client.Client

	notify Notifier
	cache  CustomerCache

	cart          []models.CartItem
	kitchenOrders []models.Order
	myOrders      []models.Order

	loading         bool
	myOrdersLoading bool
	err             string
	myOrdersErr     string

	// Data generations. A fetch that finishes after a newer fetch or a
	// confirmed mutation started discards its result instead of clobbering
	// fresher state. The fetch generations track only fetch starts, so the
	// latest fetch still owns the loading flag when its result is stale.
	kitchenGen       uint64
	kitchenFetchGen  uint64
	myOrdersGen      uint64
	myOrdersFetchGen uint64
}

func New(api *client.Client, notify Notifier) *Store {
	if notify == nil {
		notify = func(title, message string) {
			utils.ErrorLogger.Printf("%s: %s", title, message)
		}
	}
	return &Store{api: api, notify: notify}
}

// SetCustomerCache wires the persistent customer cache. Optional; without it
// checkout simply skips the save.
func (s *Store) SetCustomerCache(cache CustomerCache) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = cache
}

// --- cart (pure local mutations, no network) ---

// AddToCart appends the item with quantity 1, or bumps the quantity if it is
// already in the cart.
func (s *Store) AddToCart(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{MenuItem: item, Quantity: 1})
}

func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(itemID)
}

func (s *Store) removeFromCartLocked(itemID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// UpdateQuantity replaces an item's quantity; zero or less removes it.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(itemID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// --- read accessors ---

func (s *Store) KitchenOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.kitchenOrders))
	copy(out, s.kitchenOrders)
	return out
}

func (s *Store) MyOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.myOrders))
	copy(out, s.myOrders)
	return out
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) MyOrdersLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.myOrdersLoading
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// MyOrdersErr reports failures of the personal order lookup. Kept apart from
// Err so a failed lookup never disturbs the kitchen board banner.
func (s *Store) MyOrdersErr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.myOrdersErr
}

// InProgressOrderCount counts the customer's orders not yet done.
func (s *Store) InProgressOrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, order := range s.myOrders {
		if !order.Done() {
			count++
		}
	}
	return count
}

// --- fetches ---

// FetchKitchenOrders replaces the vendor board with today's orders, newest
// first. Failures set the error string and leave the previous list alone;
// nothing is returned to the caller.
func (s *Store) FetchKitchenOrders() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.kitchenGen++
	s.kitchenFetchGen++
	gen := s.kitchenGen
	fetchGen := s.kitchenFetchGen
	s.mu.Unlock()

	backend, err := s.api.KitchenToday()

	s.mu.Lock()
	defer s.mu.Unlock()
	if fetchGen == s.kitchenFetchGen {
		s.loading = false
	}
	if gen != s.kitchenGen {
		// A newer fetch or a confirmed mutation took over while this one
		// was in flight.
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching kitchen orders: %v", err)
		s.err = "Could not fetch kitchen orders. Please try again later."
		return
	}
	s.kitchenOrders = models.ToOrders(backend)
}

// FetchMyOrders replaces the customer order list for one phone number. A
// phone that is not exactly ten digits never reaches the network.
func (s *Store) FetchMyOrders(phone string) {
	if !utils.ValidPhone(phone) {
		s.mu.Lock()
		s.err = "Please enter a valid 10-digit phone number."
		s.myOrdersErr = s.err
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.myOrdersLoading = true
	s.err = ""
	s.myOrdersErr = ""
	s.myOrdersGen++
	s.myOrdersFetchGen++
	gen := s.myOrdersGen
	fetchGen := s.myOrdersFetchGen
	s.mu.Unlock()

	backend, err := s.api.MyOrders(phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	if fetchGen == s.myOrdersFetchGen {
		s.myOrdersLoading = false
	}
	if gen != s.myOrdersGen {
		return
	}
	if err != nil {
		// Kept off the shared error string so a failed personal lookup
		// does not disturb the kitchen board.
		utils.ErrorLogger.Printf("Error fetching my orders: %v", err)
		s.myOrdersErr = "Could not fetch your orders. Please try again later."
		return
	}
	s.myOrders = models.ToOrders(backend)

	if s.cache != nil {
		if err := s.cache.SaveCustomer("", phone); err != nil {
			utils.ErrorLogger.Printf("Could not cache phone number: %v", err)
		}
	}
}

// --- mutations ---

// invalidateFetchesLocked marks any in-flight fetch stale so its result
// cannot overwrite a list already patched by a confirmed write.
func (s *Store) invalidateFetchesLocked() {
	s.kitchenGen++
	s.myOrdersGen++
}

// MarkAsPaid transitions an order to paid (or done, if already served). On a
// confirmed write the matching order is patched in both lists.
func (s *Store) MarkAsPaid(id string) bool {
	return s.transition(id, models.StatusPaid, "Could not mark the order as paid. Please try again.")
}

// CompleteOrder transitions an order to served (or done, if already paid).
func (s *Store) CompleteOrder(id string) bool {
	return s.transition(id, models.StatusServed, "Could not complete the order. Please try again.")
}

func (s *Store) transition(id, status, failureMessage string) bool {
	if err := s.api.UpdateOrderStatus(id, status); err != nil {
		utils.ErrorLogger.Printf("Failed to update order %s: %v", id, err)
		s.notify("Error", failureMessage)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateFetchesLocked()
	patch := func(orders []models.Order) {
		for i := range orders {
			if orders[i].ID != id {
				continue
			}
			orders[i].Status = models.NextStatus(orders[i].Status, status)
			if status == models.StatusServed {
				orders[i].Served = true
			}
		}
	}
	patch(s.kitchenOrders)
	patch(s.myOrders)
	return true
}

// CancelOrder deletes the order and drops it from both lists.
func (s *Store) CancelOrder(id string) bool {
	if err := s.api.CancelOrder(id); err != nil {
		utils.ErrorLogger.Printf("Failed to cancel order %s: %v", id, err)
		s.notify("Error", "Could not cancel the order. Please try again.")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateFetchesLocked()
	drop := func(orders []models.Order) []models.Order {
		kept := orders[:0]
		for _, order := range orders {
			if order.ID != id {
				kept = append(kept, order)
			}
		}
		return kept
	}
	s.kitchenOrders = drop(s.kitchenOrders)
	s.myOrders = drop(s.myOrders)
	return true
}

// UpdateOrderItems replaces the line items of an existing order, then
// refetches the board. Totals move server-side, so no local patch is correct
// here.
func (s *Store) UpdateOrderItems(orderID string, customer models.BackendCustomer, items []models.OrderItem) bool {
	req := models.OrderRequest{Customer: customer}
	for _, item := range items {
		req.Items = append(req.Items, models.OrderRequestItem{
			SKU:   item.Name,
			Qty:   item.Quantity,
			Price: item.Price,
		})
	}

	if err := s.api.ReplaceOrderItems(orderID, req); err != nil {
		utils.ErrorLogger.Printf("Failed to update order %s items: %v", orderID, err)
		s.notify("Error", "Something went wrong while updating the order.")
		return false
	}

	s.FetchKitchenOrders()
	return true
}

// --- checkout ---

func (s *Store) buildOrderRequest(name, phone string) models.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.OrderRequest{
		Customer: models.BackendCustomer{
			Name: name,
			// The backend stores phones with the country prefix attached.
			Phone: "+91" + phone,
		},
	}
	for _, item := range s.cart {
		req.Items = append(req.Items, models.OrderRequestItem{
			SKU:   item.Name,
			Qty:   item.Quantity,
			Price: item.Price,
		})
	}
	return req
}

// Checkout submits the cart as an online-payment order. On success the cart
// is cleared, the customer details are cached, and the payment page URL is
// returned for the caller to open.
func (s *Store) Checkout(name, phone string) (string, bool) {
	if s.CartCount() == 0 || name == "" || !utils.ValidPhone(phone) {
		s.notify("Error", "Cart, name and a 10-digit phone number are required.")
		return "", false
	}

	s.saveCustomer(name, phone)

	resp, err := s.api.CreateOrder(s.buildOrderRequest(name, phone))
	if err != nil {
		utils.ErrorLogger.Printf("Error placing order: %v", err)
		s.notify("Error", "Something went wrong while placing your order.")
		return "", false
	}

	s.ClearCart()
	return resp.CheckoutPageURL, true
}

// CheckoutPayLater submits the cart as a pay-later order (kitchen-side manual
// entry uses this too), then refetches the board.
func (s *Store) CheckoutPayLater(name, phone string) bool {
	if s.CartCount() == 0 || name == "" || !utils.ValidPhone(phone) {
		s.notify("Error", "Cart, name and a 10-digit phone number are required.")
		return false
	}

	s.saveCustomer(name, phone)

	if _, err := s.api.CreateOrderV2(s.buildOrderRequest(name, phone)); err != nil {
		utils.ErrorLogger.Printf("Error creating order: %v", err)
		s.notify("Error", "Something went wrong while creating the order.")
		return false
	}

	s.ClearCart()
	s.FetchKitchenOrders()
	return true
}

func (s *Store) saveCustomer(name, phone string) {
	s.mu.Lock()
	cache := s.cache
	s.mu.Unlock()
	if cache == nil {
		return
	}
	if err := cache.SaveCustomer(name, phone); err != nil {
		utils.ErrorLogger.Printf("Could not cache customer details: %v", err)
	}
}
