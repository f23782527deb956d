package models

// MenuItem is a catalog entry. The catalog is read-only from the client's
// side; the backend owns it.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// CartItem is a menu item placed in the local cart.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
