package models

import "time"

// OrderStatusPending is the status every order is created with. No other
// status transitions happen in this service.
const OrderStatusPending = "PENDING"

// OrderLine is one requested (menu item, quantity) pair of a creation
// request. Duplicate menu ids are kept as independent lines, not merged.
type OrderLine struct {
	MenuID   string `json:"menuId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// OrderItem represents a single persisted line of an order. The unit price
// is not stored per line; the order's total captures the catalog prices read
// at creation time.
type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"type:varchar(36);index"`
	MenuID    string    `json:"menu_id" gorm:"type:varchar(36);index"`
	Menu      Menu      `json:"menu" gorm:"foreignKey:MenuID"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order represents a customer order together with its joined user and line
// items, as returned by the order repository.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"type:varchar(36);index"`
	User      User        `json:"user" gorm:"foreignKey:UserID"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
