package mockd

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
	"gorm.io/gorm"
)

type KitchenController struct {
	DB *gorm.DB
}

func NewKitchenController(db *gorm.DB) *KitchenController {
	return &KitchenController{DB: db}
}

// Today returns the current-day order board.
func (kc *KitchenController) Today(c *gin.Context) {
	start := startOfDay(time.Now())

	var orders []Order
	if err := kc.DB.Preload("LineItems").
		Where("created_at >= ?", start).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": toWireOrders(orders)})
}

// UpdateStatus applies one lifecycle transition. "paid" and "served" flip
// their flags; "done" is accepted as a synonym for served, matching the
// older front-end variant that patched status straight to done.
func (kc *KitchenController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status is required"))
		return
	}

	var order Order
	if err := kc.DB.First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	switch body.Status {
	case models.StatusPaid:
		order.Paid = true
	case models.StatusServed, models.StatusDone:
		order.Served = true
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown status "+body.Status))
		return
	}

	if err := kc.DB.Model(&order).Updates(map[string]interface{}{
		"paid":   order.Paid,
		"served": order.Served,
	}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Status updated", gin.H{"status": order.rawStatus()})
}

// DashboardStats aggregates today's and yesterday's orders plus low stock.
func (kc *KitchenController) DashboardStats(c *gin.Context) {
	branch := c.Query("branch")
	now := time.Now()
	todayStart := startOfDay(now)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var orders []Order
	if err := kc.DB.Where("created_at >= ?", yesterdayStart).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	stats := models.DashboardStats{
		SalesTodayByHour:     make([]models.HourlySales, 24),
		SalesYesterdayByHour: make([]models.HourlySales, 24),
	}
	for h := 0; h < 24; h++ {
		stats.SalesTodayByHour[h].Hour = h
		stats.SalesYesterdayByHour[h].Hour = h
	}

	for _, order := range orders {
		if order.CreatedAt.Before(todayStart) {
			stats.SalesYesterdayByHour[order.CreatedAt.Hour()].Sales += order.Amount
			continue
		}
		stats.SalesTodayByHour[order.CreatedAt.Hour()].Sales += order.Amount
		stats.KPIs.OrdersToday++
		stats.KPIs.RevenueToday += order.Amount
		stats.KPIs.PendingDue += order.amountDue()
	}
	if stats.KPIs.OrdersToday > 0 {
		stats.KPIs.AvgOrder = stats.KPIs.RevenueToday / float64(stats.KPIs.OrdersToday)
	}

	var low []Ingredient
	query := kc.DB.Where("quantity < ?", 10.0)
	if branch != "" {
		query = query.Where("branch = ?", branch)
	}
	if err := query.Find(&low).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for i := range low {
		stats.LowStockItems = append(stats.LowStockItems, low[i].toWire())
	}

	c.JSON(http.StatusOK, stats)
}

// SalesReport aggregates a date range (yyyy-mm-dd, inclusive).
func (kc *KitchenController) SalesReport(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("startDate"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid startDate"))
		return
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("endDate"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid endDate"))
		return
	}
	end = end.AddDate(0, 0, 1)

	var orders []Order
	if err := kc.DB.Preload("LineItems").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report := models.SalesReport{
		TotalOrders: len(orders),
		Orders:      toWireOrders(orders),
	}

	itemRows := map[string]*models.ItemSalesRow{}
	customerRows := map[string]*models.CustomerSalesRow{}
	for _, order := range orders {
		report.TotalRevenue += order.Amount

		for _, li := range order.LineItems {
			row, ok := itemRows[li.SKU]
			if !ok {
				row = &models.ItemSalesRow{Name: li.SKU}
				itemRows[li.SKU] = row
			}
			row.Quantity += li.Qty
			row.Revenue += li.Price * float64(li.Qty)
		}

		row, ok := customerRows[order.CustomerPhone]
		if !ok {
			row = &models.CustomerSalesRow{Name: order.CustomerName, Phone: order.CustomerPhone}
			customerRows[order.CustomerPhone] = row
		}
		row.Orders++
		row.Spent += order.Amount
	}
	if report.TotalOrders > 0 {
		report.AvgOrder = report.TotalRevenue / float64(report.TotalOrders)
	}
	for _, row := range itemRows {
		report.Items = append(report.Items, *row)
	}
	for _, row := range customerRows {
		report.Customers = append(report.Customers, *row)
	}

	c.JSON(http.StatusOK, report)
}

func (i *Ingredient) toWire() models.Ingredient {
	return models.Ingredient{
		ID:       itoa(i.ID),
		Name:     i.Name,
		Quantity: i.Quantity,
		Unit:     i.Unit,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
