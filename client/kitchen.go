package client

import (
	"net/http"
	"net/url"

	"github.com/streetbites/streetbites/models"
)

// KitchenToday fetches the vendor's current-day order board.
func (c *Client) KitchenToday() ([]models.BackendOrder, error) {
	var resp models.OrdersResponse
	if err := c.get("/api/kitchen/today", &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrderStatus transitions an order. The backend understands the raw
// transition names ("paid", "served"); folding into "done" happens on read.
func (c *Client) UpdateOrderStatus(id, status string) error {
	body := map[string]string{"status": status}
	return c.do(http.MethodPatch, "/api/kitchen/status/"+id, body, nil)
}

// DashboardStats fetches the kitchen dashboard for one branch.
func (c *Client) DashboardStats(branch string) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	path := "/api/kitchen/dashboard-stats?branch=" + url.QueryEscape(branch)
	if err := c.get(path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SalesReport fetches the date-ranged sales report. Dates are yyyy-mm-dd.
func (c *Client) SalesReport(startDate, endDate string) (*models.SalesReport, error) {
	var report models.SalesReport
	path := "/api/kitchen/sales-report?startDate=" + url.QueryEscape(startDate) +
		"&endDate=" + url.QueryEscape(endDate)
	if err := c.get(path, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
