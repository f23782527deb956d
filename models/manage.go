package models

// Vendor-side management entities. All are thin projections of backend
// records; the client never edits them in place, it re-reads after a create.

type Branch struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Ingredient struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type StaffMember struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type StaffResponse struct {
	Staff []StaffMember `json:"staff"`
}
