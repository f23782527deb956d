package client_test

import (
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/streetbites/streetbites/client"
	"github.com/streetbites/streetbites/mockd"
	"github.com/streetbites/streetbites/models"
)

var clientDBCounter int64

func newClient(t *testing.T) *client.Client {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:clienttest%d?mode=memory&cache=shared",
		atomic.AddInt64(&clientDBCounter, 1))
	srv, err := mockd.NewServer(dsn, []byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to start mock backend: %v", err)
	}

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return client.New(ts.URL, 5*time.Second)
}

func TestGetMenuMapsWireShape(t *testing.T) {
	api := newClient(t)

	menu, err := api.GetMenu()
	assert.NoError(t, err)
	assert.NotEmpty(t, menu)

	for _, item := range menu {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Category)
		assert.Greater(t, item.Price, 0.0)
	}
}

func TestCreateOrderReturnsCheckoutURL(t *testing.T) {
	api := newClient(t)

	resp, err := api.CreateOrder(models.OrderRequest{
		Items:    []models.OrderRequestItem{{SKU: "Vada Pav", Qty: 2, Price: 50}},
		Customer: models.BackendCustomer{Name: "Ravi", Phone: "+919812345678"},
	})
	assert.NoError(t, err)
	assert.Contains(t, resp.CheckoutPageURL, resp.OrderToken)
	assert.NotEmpty(t, resp.OrderID)
}

func TestKitchenTodayNormalizesNewStatus(t *testing.T) {
	api := newClient(t)

	_, err := api.CreateOrderV2(models.OrderRequest{
		Items:    []models.OrderRequestItem{{SKU: "Pav Bhaji", Qty: 1, Price: 140}},
		Customer: models.BackendCustomer{Name: "Ravi", Phone: "+919812345678"},
	})
	assert.NoError(t, err)

	backend, err := api.KitchenToday()
	assert.NoError(t, err)
	assert.Len(t, backend, 1)
	// The wire still says "new"; normalization happens in the mapping.
	assert.Equal(t, "new", backend[0].Status)
	assert.Equal(t, models.StatusCreated, backend[0].ToOrder().Status)
	assert.Equal(t, 140.0, backend[0].ToOrder().AmountDue)
}

func TestBackendRejectionCarriesMessage(t *testing.T) {
	api := newClient(t)

	_, err := api.Login("nobody@example.com", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestManagementRoutesRequireToken(t *testing.T) {
	api := newClient(t)

	_, err := api.Branches()
	assert.Error(t, err, "unauthenticated branch list must fail")

	resp, err := api.Register(models.RegisterRequest{
		Name:     "Meena",
		Email:    "meena@example.com",
		Password: "s3cret",
		Role:     "manager",
		Branch:   "MG Road",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "MG Road", resp.Profile.Branch)

	// Register attaches the token, so the same call now succeeds.
	branches, err := api.Branches()
	assert.NoError(t, err)
	assert.NotEmpty(t, branches)

	login, err := api.Login("meena@example.com", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "manager", login.Profile.Role)
}

func TestOrderDetailAndCancel(t *testing.T) {
	api := newClient(t)

	created, err := api.CreateOrderV2(models.OrderRequest{
		Items:    []models.OrderRequestItem{{SKU: "Hakka Noodles", Qty: 1, Price: 150}},
		Customer: models.BackendCustomer{Name: "Ravi", Phone: "+919812345678"},
	})
	assert.NoError(t, err)

	detail, err := api.OrderDetail(created.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, created.OrderToken, detail.OrderToken)
	assert.Equal(t, 150.0, detail.Amount)

	assert.NoError(t, api.CancelOrder(created.OrderID))

	_, err = api.OrderDetail(created.OrderID)
	assert.Error(t, err)
}
