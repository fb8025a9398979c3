package repositories

import "warung/internal/models"

// MenuRepository defines the interface for menu catalog data access.
// GetByIDs resolves a set of menu ids in one query; it returns the records
// that exist and never fails on a partial match, so the caller can perform
// its own membership check.
type MenuRepository interface {
	GetAll() ([]models.Menu, error)
	GetByID(id string) (*models.Menu, error)
	GetByIDs(ids []string) ([]models.Menu, error)
	Create(menu *models.Menu) error
	Update(menu *models.Menu) error
	Delete(id string) error
}
