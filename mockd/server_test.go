package mockd_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/streetbites/streetbites/mockd"
	"github.com/streetbites/streetbites/models"
)

var dbCounter int64

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:mockdtest%d?mode=memory&cache=shared",
		atomic.AddInt64(&dbCounter, 1))
	srv, err := mockd.NewServer(dsn, []byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to start mock backend: %v", err)
	}
	return srv.Router()
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createOrder(t *testing.T, router *gin.Engine) string {
	w := doJSON(router, "POST", "/api/orderv2", models.OrderRequest{
		Items: []models.OrderRequestItem{
			{SKU: "Pav Bhaji", Qty: 1, Price: 140},
			{SKU: "Sweet Lassi", Qty: 2, Price: 70},
		},
		Customer: models.BackendCustomer{Name: "Asha", Phone: "+919876543210"},
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OrderID string `json:"orderId"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.OrderID
}

func TestStatusFlagsFoldIntoDone(t *testing.T) {
	router := newRouter(t)
	id := createOrder(t, router)

	w := doJSON(router, "PATCH", "/api/kitchen/status/"+id, map[string]string{"status": "paid"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "PATCH", "/api/kitchen/status/"+id, map[string]string{"status": "served"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/kitchen/today", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.OrdersResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, "done", resp.Orders[0].Status)
	assert.True(t, resp.Orders[0].Served)
	assert.Equal(t, 0.0, resp.Orders[0].AmountDue)
}

func TestUnknownStatusRejected(t *testing.T) {
	router := newRouter(t)
	id := createOrder(t, router)

	w := doJSON(router, "PATCH", "/api/kitchen/status/"+id, map[string]string{"status": "cooked"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceItemsRecomputesAmount(t *testing.T) {
	router := newRouter(t)
	id := createOrder(t, router)

	w := doJSON(router, "PUT", "/api/orders/"+id, models.OrderRequest{
		Items:    []models.OrderRequestItem{{SKU: "Hakka Noodles", Qty: 3, Price: 150}},
		Customer: models.BackendCustomer{Name: "Asha", Phone: "+919876543210"},
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/orders/detail?id="+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.BackendOrder
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 450.0, order.Amount)
	assert.Len(t, order.LineItems, 1)
}

func TestSalesReportAggregates(t *testing.T) {
	router := newRouter(t)
	createOrder(t, router)
	createOrder(t, router)

	today := time.Now().Format("2006-01-02")
	token := registerAndToken(t, router)
	w := doJSON(router, "GET",
		"/api/kitchen/sales-report?startDate="+today+"&endDate="+today, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var report models.SalesReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 560.0, report.TotalRevenue)
	assert.Equal(t, 280.0, report.AvgOrder)
	assert.Len(t, report.Customers, 1)
	assert.Equal(t, 2, report.Customers[0].Orders)

	for _, row := range report.Items {
		if row.Name == "Sweet Lassi" {
			assert.Equal(t, 4, row.Quantity)
			assert.Equal(t, 280.0, row.Revenue)
		}
	}
}

func registerAndToken(t *testing.T, router *gin.Engine) string {
	w := doJSON(router, "POST", "/api/register", models.RegisterRequest{
		Name:     "Meena",
		Email:    "meena@example.com",
		Password: "s3cret",
		Branch:   "MG Road",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestDashboardRequiresAuth(t *testing.T) {
	router := newRouter(t)

	w := doJSON(router, "GET", "/api/kitchen/dashboard-stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	createOrder(t, router)
	token := registerAndToken(t, router)

	w = doJSON(router, "GET", "/api/kitchen/dashboard-stats?branch=MG+Road", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.KPIs.OrdersToday)
	assert.Equal(t, 280.0, stats.KPIs.RevenueToday)
	assert.NotEmpty(t, stats.LowStockItems, "seeded pav buns run low")
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	router := newRouter(t)
	registerAndToken(t, router)

	w := doJSON(router, "POST", "/api/register", models.RegisterRequest{
		Name:     "Meena Again",
		Email:    "meena@example.com",
		Password: "other",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
