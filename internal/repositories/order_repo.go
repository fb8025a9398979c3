package repositories

import "warung/internal/models"

// OrderRepository defines the interface for order data access.
//
// Create persists the order header and all of its line items as one atomic
// unit and leaves the order joined with its user and each item's menu.
// GetAll and GetByID return the same joined shape.
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
}
