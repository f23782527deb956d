package models

import (
	"sort"
	"time"
)

// Wire shapes returned by the backend. Field names follow the backend's
// Mongo-flavoured payloads (_id, sku, qty) and are mapped into the local
// shapes on ingestion.

type BackendMenuItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

type BackendCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BackendLineItem struct {
	ID    string  `json:"_id"`
	SKU   string  `json:"sku"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type BackendOrder struct {
	ID         string            `json:"_id"`
	OrderToken string            `json:"orderToken"`
	Customer   BackendCustomer   `json:"customer"`
	Amount     float64           `json:"amount"`
	AmountDue  float64           `json:"amountDue"`
	Status     string            `json:"status"`
	Served     bool              `json:"served"`
	CreatedAt  time.Time         `json:"createdAt"`
	LineItems  []BackendLineItem `json:"lineItems"`
}

type OrdersResponse struct {
	Orders []BackendOrder `json:"orders"`
}

// OrderRequest is the body for order creation and item replacement.
type OrderRequest struct {
	Items         []OrderRequestItem `json:"items"`
	Customer      BackendCustomer    `json:"customer"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
}

type OrderRequestItem struct {
	SKU   string  `json:"sku"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// CreateOrderResponse covers both creation routes: online payment returns a
// checkout page URL, pay-later returns the order id/token.
type CreateOrderResponse struct {
	CheckoutPageURL string `json:"checkoutPageUrl"`
	OrderID         string `json:"orderId"`
	OrderToken      string `json:"orderToken"`
}

func (m BackendMenuItem) ToMenuItem() MenuItem {
	return MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.ImageURL,
		Category:    m.Category,
	}
}

func (b BackendOrder) ToOrder() Order {
	items := make([]OrderItem, 0, len(b.LineItems))
	for _, li := range b.LineItems {
		items = append(items, OrderItem{
			ID:       li.ID,
			Name:     li.SKU,
			Quantity: li.Qty,
			Price:    li.Price,
		})
	}

	status := NormalizeStatus(b.Status, b.Served)
	return Order{
		ID:            b.ID,
		Token:         b.OrderToken,
		Items:         items,
		CustomerName:  b.Customer.Name,
		CustomerPhone: b.Customer.Phone,
		Total:         b.Amount,
		AmountDue:     b.AmountDue,
		Timestamp:     b.CreatedAt.UnixMilli(),
		Status:        status,
		Served:        b.Served || status == StatusServed || status == StatusDone,
	}
}

// ToOrders maps a wire order list and sorts it newest first, the order every
// screen displays.
func ToOrders(backend []BackendOrder) []Order {
	orders := make([]Order, 0, len(backend))
	for _, b := range backend {
		orders = append(orders, b.ToOrder())
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp > orders[j].Timestamp
	})
	return orders
}
