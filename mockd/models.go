package mockd

import (
	"strconv"
	"time"

	"github.com/streetbites/streetbites/models"
)

// Storage models for the fake backend. They deliberately reproduce the real
// backend's quirks on the wire: `_id` strings, `sku`/`qty` line items, and
// the raw "new" status for fresh orders.

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;default:'staff'"`
	Branch       string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

type Menu struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	ImageURL    string  `gorm:"type:varchar(255)"`
	Category    string  `gorm:"type:varchar(100)"`
}

type Order struct {
	ID            uint   `gorm:"primaryKey"`
	Token         string `gorm:"type:varchar(20);not null"`
	CustomerName  string `gorm:"type:varchar(255);not null"`
	CustomerPhone string `gorm:"type:varchar(20);not null;index"`
	Amount        float64
	Paid          bool
	Served        bool
	CreatedAt     time.Time  `gorm:"not null"`
	LineItems     []LineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type LineItem struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"not null;index"`
	SKU     string
	Qty     int
	Price   float64
}

type Branch struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
}

type Ingredient struct {
	ID       uint   `gorm:"primaryKey"`
	Branch   string `gorm:"type:varchar(255);index"`
	Name     string `gorm:"type:varchar(255);not null"`
	Quantity float64
	Unit     string `gorm:"type:varchar(50)"`
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// rawStatus reproduces the backend's vocabulary, including "new".
func (o *Order) rawStatus() string {
	switch {
	case o.Paid && o.Served:
		return "done"
	case o.Paid:
		return "paid"
	case o.Served:
		return "served"
	default:
		return "new"
	}
}

func (o *Order) amountDue() float64 {
	if o.Paid {
		return 0
	}
	return o.Amount
}

func (o *Order) toWire() models.BackendOrder {
	items := make([]models.BackendLineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, models.BackendLineItem{
			ID:    strconv.FormatUint(uint64(li.ID), 10),
			SKU:   li.SKU,
			Qty:   li.Qty,
			Price: li.Price,
		})
	}
	return models.BackendOrder{
		ID:         strconv.FormatUint(uint64(o.ID), 10),
		OrderToken: o.Token,
		Customer: models.BackendCustomer{
			Name:  o.CustomerName,
			Phone: o.CustomerPhone,
		},
		Amount:    o.Amount,
		AmountDue: o.amountDue(),
		Status:    o.rawStatus(),
		Served:    o.Served,
		CreatedAt: o.CreatedAt,
		LineItems: items,
	}
}

func (m *Menu) toWire() models.BackendMenuItem {
	return models.BackendMenuItem{
		ID:          strconv.FormatUint(uint64(m.ID), 10),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
	}
}
