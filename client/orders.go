package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/streetbites/streetbites/models"
)

// MyOrders fetches a customer's orders by phone number. The caller is
// responsible for the 10-digit guard; this wrapper sends whatever it is told.
func (c *Client) MyOrders(phone string) ([]models.BackendOrder, error) {
	var resp models.OrdersResponse
	path := "/api/myorder?phone=" + url.QueryEscape(phone)
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// OrderDetail fetches a single order by its backend id.
func (c *Client) OrderDetail(id string) (*models.BackendOrder, error) {
	var order models.BackendOrder
	path := "/api/orders/detail?id=" + url.QueryEscape(id)
	if err := c.get(path, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an online-payment order. The response carries the
// payment gateway's checkout page URL.
func (c *Client) CreateOrder(req models.OrderRequest) (*models.CreateOrderResponse, error) {
	var resp models.CreateOrderResponse
	if err := c.post("/api/orders", req, &resp); err != nil {
		return nil, err
	}
	if resp.CheckoutPageURL == "" {
		return nil, fmt.Errorf("checkoutPageUrl not found in response")
	}
	return &resp, nil
}

// CreateOrderV2 places a pay-later order, settled in person.
func (c *Client) CreateOrderV2(req models.OrderRequest) (*models.CreateOrderResponse, error) {
	req.PaymentMethod = "pay-later"
	var resp models.CreateOrderResponse
	if err := c.post("/api/orderv2", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReplaceOrderItems swaps the full line-item set of an existing order. Totals
// and amount due are recomputed server-side; callers must refetch.
func (c *Client) ReplaceOrderItems(id string, req models.OrderRequest) error {
	return c.do(http.MethodPut, "/api/orders/"+id, req, nil)
}

// CancelOrder deletes an order.
func (c *Client) CancelOrder(id string) error {
	return c.do(http.MethodDelete, "/api/orders/"+id, nil, nil)
}
