package models

// DashboardKPIs are the headline numbers on the kitchen dashboard.
type DashboardKPIs struct {
	RevenueToday float64 `json:"revenueToday"`
	OrdersToday  int     `json:"ordersToday"`
	AvgOrder     float64 `json:"avgOrderValue"`
	PendingDue   float64 `json:"pendingDue"`
}

type HourlySales struct {
	Hour  int     `json:"hour"`
	Sales float64 `json:"sales"`
}

type DashboardStats struct {
	KPIs                 DashboardKPIs `json:"kpis"`
	SalesTodayByHour     []HourlySales `json:"salesTodayByHour"`
	SalesYesterdayByHour []HourlySales `json:"salesYesterdayByHour"`
	LowStockItems        []Ingredient  `json:"lowStockItems"`
}

// SalesReport is the date-ranged report behind the sales screen.
type SalesReport struct {
	TotalRevenue float64            `json:"totalRevenue"`
	TotalOrders  int                `json:"totalOrders"`
	AvgOrder     float64            `json:"avgOrderValue"`
	Orders       []BackendOrder     `json:"orders"`
	Items        []ItemSalesRow     `json:"itemAnalysis"`
	Customers    []CustomerSalesRow `json:"customerAnalysis"`
}

type ItemSalesRow struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CustomerSalesRow struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Orders int     `json:"orders"`
	Spent  float64 `json:"spent"`
}
