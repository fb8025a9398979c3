package models

import "time"

// Customer is the public projection of a user on an invoice. Password and
// other credential fields never appear here.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InvoiceItem is one priced line of an invoice. MenuPrice and Subtotal are
// read from the catalog at projection time, while the invoice Total is the
// value frozen when the order was created.
type InvoiceItem struct {
	ID        string  `json:"id"`
	MenuName  string  `json:"menuName"`
	MenuPrice float64 `json:"menuPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Invoice is the derived, read-only view of an order. It is built on demand
// and never persisted.
type Invoice struct {
	ID        string        `json:"id"`
	OrderDate time.Time     `json:"orderDate"`
	Status    string        `json:"status"`
	Customer  Customer      `json:"customer"`
	Items     []InvoiceItem `json:"items"`
	Total     float64       `json:"total"`
}

// InvoiceResponse is the envelope the order endpoints respond with.
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}
