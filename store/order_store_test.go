package store_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/streetbites/streetbites/client"
	"github.com/streetbites/streetbites/mockd"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/store"
)

var mockDBCounter int64

// newBackend spins up a mockd instance on its own in-memory database and
// returns a store wired to it.
func newBackend(t *testing.T) (*store.Store, *client.Client, *httptest.Server) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared",
		atomic.AddInt64(&mockDBCounter, 1))
	srv, err := mockd.NewServer(dsn, []byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to start mock backend: %v", err)
	}

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	api := client.New(ts.URL, 5*time.Second)
	return store.New(api, func(title, message string) {}), api, ts
}

func menuItem(id, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price}
}

func TestCartArithmetic(t *testing.T) {
	s := store.New(nil, func(title, message string) {})

	s.AddToCart(menuItem("a", "Item A", 100))
	s.AddToCart(menuItem("b", "Item B", 50))
	s.AddToCart(menuItem("b", "Item B", 50))

	assert.Equal(t, 200.0, s.CartTotal())
	assert.Equal(t, 3, s.CartCount())

	s.UpdateQuantity("a", 5)
	assert.Equal(t, 600.0, s.CartTotal())
	assert.Equal(t, 7, s.CartCount())

	s.RemoveFromCart("b")
	assert.Equal(t, 500.0, s.CartTotal())
	assert.Equal(t, 5, s.CartCount())
}

func TestAddToCartIncrementsExisting(t *testing.T) {
	s := store.New(nil, func(title, message string) {})

	s.AddToCart(menuItem("a", "Item A", 100))
	s.AddToCart(menuItem("a", "Item A", 100))

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := store.New(nil, func(title, message string) {})

	s.AddToCart(menuItem("a", "Item A", 100))
	s.AddToCart(menuItem("b", "Item B", 50))

	s.UpdateQuantity("a", 0)

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "b", cart[0].ID)
	assert.Equal(t, 50.0, s.CartTotal())
}

func TestClearCart(t *testing.T) {
	s := store.New(nil, func(title, message string) {})

	s.AddToCart(menuItem("a", "Item A", 100))
	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Equal(t, 0.0, s.CartTotal())
	assert.Equal(t, 0, s.CartCount())
}

func TestFetchMyOrdersInvalidPhoneSkipsNetwork(t *testing.T) {
	var requests int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"orders":[]}`)
	}))
	defer ts.Close()

	api := client.New(ts.URL, 5*time.Second)
	s := store.New(api, func(title, message string) {})

	s.FetchMyOrders("12345")

	assert.Equal(t, int64(0), atomic.LoadInt64(&requests))
	assert.Empty(t, s.MyOrders())
	assert.Contains(t, s.Err(), "10-digit")
}

func placeOrder(t *testing.T, api *client.Client, phone string) string {
	resp, err := api.CreateOrderV2(models.OrderRequest{
		Items: []models.OrderRequestItem{
			{SKU: "Pav Bhaji", Qty: 1, Price: 140},
			{SKU: "Vada Pav", Qty: 1, Price: 110},
		},
		Customer: models.BackendCustomer{Name: "Asha", Phone: "+91" + phone},
	})
	assert.NoError(t, err)
	return resp.OrderID
}

func TestPaidThenServedResolvesToDone(t *testing.T) {
	s, api, _ := newBackend(t)
	id := placeOrder(t, api, "9876543210")

	s.FetchKitchenOrders()
	assert.Empty(t, s.Err())
	orders := s.KitchenOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, models.StatusCreated, orders[0].Status)
	assert.Equal(t, 250.0, orders[0].Total)

	assert.True(t, s.MarkAsPaid(id))
	assert.Equal(t, models.StatusPaid, s.KitchenOrders()[0].Status)

	assert.True(t, s.CompleteOrder(id))
	assert.Equal(t, models.StatusDone, s.KitchenOrders()[0].Status)

	// The backend agrees once refetched.
	s.FetchKitchenOrders()
	assert.Equal(t, models.StatusDone, s.KitchenOrders()[0].Status)
}

func TestServedThenPaidResolvesToDone(t *testing.T) {
	s, api, _ := newBackend(t)
	id := placeOrder(t, api, "9876543210")

	s.FetchKitchenOrders()
	assert.True(t, s.CompleteOrder(id))
	assert.Equal(t, models.StatusServed, s.KitchenOrders()[0].Status)
	assert.True(t, s.KitchenOrders()[0].Served)

	assert.True(t, s.MarkAsPaid(id))
	assert.Equal(t, models.StatusDone, s.KitchenOrders()[0].Status)
}

func TestCancelOrderRemovesEverywhere(t *testing.T) {
	s, api, _ := newBackend(t)
	phone := "9876543210"
	id := placeOrder(t, api, phone)

	s.FetchKitchenOrders()
	s.FetchMyOrders(phone)
	assert.Len(t, s.KitchenOrders(), 1)
	assert.Len(t, s.MyOrders(), 1)

	assert.True(t, s.CancelOrder(id))
	assert.Empty(t, s.KitchenOrders())
	assert.Empty(t, s.MyOrders())

	s.FetchKitchenOrders()
	assert.Empty(t, s.KitchenOrders())
}

func TestUpdateOrderItemsRefetches(t *testing.T) {
	s, api, _ := newBackend(t)
	id := placeOrder(t, api, "9876543210")

	s.FetchKitchenOrders()
	order := s.KitchenOrders()[0]

	items := append(order.Items, models.OrderItem{Name: "Masala Fries", Quantity: 2, Price: 90})
	customer := models.BackendCustomer{Name: order.CustomerName, Phone: order.CustomerPhone}
	assert.True(t, s.UpdateOrderItems(id, customer, items))

	// No local patch here: the total comes back from the backend.
	updated := s.KitchenOrders()[0]
	assert.Equal(t, 430.0, updated.Total)
	assert.Len(t, updated.Items, 3)
}

func TestCheckoutClearsCartAndReturnsPaymentURL(t *testing.T) {
	s, _, _ := newBackend(t)

	s.AddToCart(menuItem("1", "Pav Bhaji", 140))
	s.AddToCart(menuItem("2", "Sweet Lassi", 70))

	url, ok := s.Checkout("Asha", "9876543210")
	assert.True(t, ok)
	assert.Contains(t, url, "checkout")
	assert.Empty(t, s.Cart())

	s.FetchMyOrders("9876543210")
	orders := s.MyOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, 210.0, orders[0].Total)
	assert.Equal(t, 1, s.InProgressOrderCount())
}

func TestCheckoutValidation(t *testing.T) {
	var notified string
	s := store.New(nil, func(title, message string) { notified = message })

	_, ok := s.Checkout("Asha", "9876543210")
	assert.False(t, ok, "empty cart must not check out")
	assert.NotEmpty(t, notified)

	s.AddToCart(menuItem("1", "Pav Bhaji", 140))
	_, ok = s.Checkout("Asha", "12345")
	assert.False(t, ok, "short phone must not check out")
	assert.Len(t, s.Cart(), 1, "cart is kept on a failed checkout")
}

func TestFetchFailureSetsErrorAndKeepsList(t *testing.T) {
	s, api, ts := newBackend(t)
	placeOrder(t, api, "9876543210")

	s.FetchKitchenOrders()
	assert.Len(t, s.KitchenOrders(), 1)

	ts.Close()
	s.FetchKitchenOrders()
	assert.NotEmpty(t, s.Err())
	assert.Len(t, s.KitchenOrders(), 1, "stale list survives a failed refetch")
}

func TestMyOrdersFetchFailureSurfacesError(t *testing.T) {
	s, api, ts := newBackend(t)
	phone := "9876543210"
	placeOrder(t, api, phone)

	s.FetchMyOrders(phone)
	assert.Len(t, s.MyOrders(), 1)
	assert.Empty(t, s.MyOrdersErr())

	ts.Close()
	s.FetchMyOrders(phone)
	assert.NotEmpty(t, s.MyOrdersErr())
	assert.Empty(t, s.Err(), "a failed personal lookup stays off the shared error")
	assert.Len(t, s.MyOrders(), 1, "stale list survives a failed refetch")
}

const boardWithNewOrder = `{"orders":[{"_id":"7","orderToken":"107",` +
	`"customer":{"name":"Asha","phone":"+919876543210"},"amount":140,` +
	`"amountDue":140,"status":"new","createdAt":"2026-08-31T10:00:00Z",` +
	`"lineItems":[{"_id":"li1","sku":"Pav Bhaji","qty":1,"price":140}]}]}`

// slowBoard serves the kitchen board, blocking one chosen GET until released
// so fetches can be raced deterministically.
func slowBoard(t *testing.T, blockCall int32) (*store.Store, chan struct{}, chan struct{}) {
	block := make(chan struct{})
	entered := make(chan struct{})
	var gets int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			fmt.Fprint(w, `{"message":"Status updated"}`)
			return
		}
		if atomic.AddInt32(&gets, 1) == blockCall {
			close(entered)
			<-block
		}
		fmt.Fprint(w, boardWithNewOrder)
	}))
	t.Cleanup(ts.Close)

	api := client.New(ts.URL, 5*time.Second)
	return store.New(api, func(title, message string) {}), block, entered
}

func TestOverlappingFetchDiscardsOlderResult(t *testing.T) {
	s, block, entered := slowBoard(t, 1)

	done := make(chan struct{})
	go func() {
		s.FetchKitchenOrders()
		close(done)
	}()
	<-entered

	// The second fetch starts while the first is stalled and wins.
	s.FetchKitchenOrders()
	assert.Len(t, s.KitchenOrders(), 1)
	assert.False(t, s.Loading())

	close(block)
	<-done
	assert.Len(t, s.KitchenOrders(), 1)
	assert.False(t, s.Loading())
}

func TestStaleRefetchDoesNotRevertConfirmedTransition(t *testing.T) {
	s, block, entered := slowBoard(t, 2)

	s.FetchKitchenOrders()
	assert.Equal(t, models.StatusCreated, s.KitchenOrders()[0].Status)

	done := make(chan struct{})
	go func() {
		s.FetchKitchenOrders()
		close(done)
	}()
	<-entered

	// The write lands while the refetch is stalled on a pre-write snapshot.
	assert.True(t, s.MarkAsPaid("7"))
	close(block)
	<-done

	assert.Equal(t, models.StatusPaid, s.KitchenOrders()[0].Status,
		"a refetch older than the write must not overwrite the patched list")
	assert.False(t, s.Loading())
}

func TestTransitionFailureReturnsFalse(t *testing.T) {
	s, _, _ := newBackend(t)

	assert.False(t, s.MarkAsPaid("9999"), "unknown order id must fail")
	assert.False(t, s.CancelOrder("9999"))
}
