package models

// Canonical order statuses. Raw backend payloads also use "new" for freshly
// created orders and track "served" as a separate flag on some routes; both
// are folded into this set on ingestion, see NormalizeStatus.
const (
	StatusCreated = "created"
	StatusPaid    = "paid"
	StatusServed  = "served"
	StatusDone    = "done"
)

// OrderItem is an immutable snapshot of a purchased line item. Quantities and
// prices are fixed at order-creation (or item-replacement) time.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is the client's cached copy of a backend order. The backend is the
// source of truth; Total and AmountDue are never computed locally.
type Order struct {
	ID            string      `json:"id"`
	Token         string      `json:"token"`
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Total         float64     `json:"total"`
	AmountDue     float64     `json:"amountDue"`
	Timestamp     int64       `json:"timestamp"`
	Status        string      `json:"status"`
	Served        bool        `json:"served"`
}

// Done reports whether the order reached its terminal state.
func (o *Order) Done() bool {
	return o.Status == StatusDone
}

// NormalizeStatus maps the backend's status vocabulary onto the canonical
// set. The raw data evolved several shapes: "new" and "created" both mean
// not-yet-paid, and "served" exists both as a status value and as a boolean
// alongside "paid".
func NormalizeStatus(raw string, served bool) string {
	switch raw {
	case "new", "", StatusCreated:
		if served {
			return StatusServed
		}
		return StatusCreated
	case StatusPaid:
		if served {
			return StatusDone
		}
		return StatusPaid
	case StatusServed:
		return StatusServed
	case StatusDone:
		return StatusDone
	default:
		// Unknown vocabulary from a newer backend; keep it visible rather
		// than guessing.
		return raw
	}
}

// NextStatus applies one transition of the order lifecycle:
//
//	created --paid--> paid --served--> done
//	created --served--> served --paid--> done
func NextStatus(current, transition string) string {
	switch transition {
	case StatusPaid:
		if current == StatusServed {
			return StatusDone
		}
		if current == StatusDone {
			return StatusDone
		}
		return StatusPaid
	case StatusServed:
		if current == StatusPaid {
			return StatusDone
		}
		if current == StatusDone {
			return StatusDone
		}
		return StatusServed
	default:
		return current
	}
}
