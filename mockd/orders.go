package mockd

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func orderAmount(items []models.OrderRequestItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

func (oc *OrderController) createFromRequest(c *gin.Context) (*Order, bool) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order payload"))
		return nil, false
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must contain at least one item"))
		return nil, false
	}
	if req.Customer.Name == "" || req.Customer.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer name and phone are required"))
		return nil, false
	}

	order := Order{
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		Amount:        orderAmount(req.Items),
		CreatedAt:     time.Now(),
	}
	for _, item := range req.Items {
		order.LineItems = append(order.LineItems, LineItem{
			SKU:   item.SKU,
			Qty:   item.Qty,
			Price: item.Price,
		})
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}

	// Token is derived from the row id so it stays short and human-readable.
	order.Token = fmt.Sprintf("%d", 100+order.ID)
	if err := oc.DB.Model(&order).Update("token", order.Token).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	return &order, true
}

// CreateOrder handles the online-payment route. The mock has no gateway, so
// the checkout URL points at a placeholder payment page.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	order, ok := oc.createFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"checkoutPageUrl": fmt.Sprintf("https://pay.streetbites.test/checkout/%s", order.Token),
		"orderId":         fmt.Sprintf("%d", order.ID),
		"orderToken":      order.Token,
	})
}

// CreateOrderV2 handles pay-later orders.
func (oc *OrderController) CreateOrderV2(c *gin.Context) {
	order, ok := oc.createFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"orderId":    fmt.Sprintf("%d", order.ID),
		"orderToken": order.Token,
	})
}

// MyOrders returns a customer's orders. The stored phone carries a country
// prefix, so lookup is by suffix.
func (oc *OrderController) MyOrders(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("phone is required"))
		return
	}

	var orders []Order
	if err := oc.DB.Preload("LineItems").
		Where("customer_phone LIKE ?", "%"+phone).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": toWireOrders(orders)})
}

func (oc *OrderController) OrderDetail(c *gin.Context) {
	id := c.Query("id")
	var order Order
	if err := oc.DB.Preload("LineItems").First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	c.JSON(http.StatusOK, order.toWire())
}

// ReplaceItems swaps the full line-item set and recomputes the total.
func (oc *OrderController) ReplaceItems(c *gin.Context) {
	id := c.Param("id")
	var order Order
	if err := oc.DB.First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order payload"))
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must contain at least one item"))
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&LineItem{}).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			li := LineItem{OrderID: order.ID, SKU: item.SKU, Qty: item.Qty, Price: item.Price}
			if err := tx.Create(&li).Error; err != nil {
				return err
			}
		}
		return tx.Model(&order).Update("amount", orderAmount(req.Items)).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", nil)
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	id := c.Param("id")
	var order Order
	if err := oc.DB.First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", nil)
}

func toWireOrders(orders []Order) []models.BackendOrder {
	out := make([]models.BackendOrder, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].toWire())
	}
	return out
}
