package repositories

import (
	"errors"
	"fmt"

	"warung/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMenuRepository is a GORM implementation of MenuRepository.
type GORMMenuRepository struct {
	db *gorm.DB
}

// NewGORMMenuRepository creates a new instance of GORMMenuRepository.
func NewGORMMenuRepository(db *gorm.DB) *GORMMenuRepository {
	return &GORMMenuRepository{
		db: db,
	}
}

// GetAll retrieves all menus from the database.
func (r *GORMMenuRepository) GetAll() ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("failed to get all menus: %w", err)
	}
	return menus, nil
}

// GetByID retrieves a single menu by its ID from the database.
func (r *GORMMenuRepository) GetByID(id string) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get menu by ID %s: %w", id, err)
	}
	return &menu, nil
}

// GetByIDs retrieves all menus matching the given IDs in a single query.
func (r *GORMMenuRepository) GetByIDs(ids []string) ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.Where("id IN ?", ids).Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("failed to get menus by IDs: %w", err)
	}
	return menus, nil
}

// Create creates a new menu in the database.
func (r *GORMMenuRepository) Create(menu *models.Menu) error {
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	if err := r.db.Create(menu).Error; err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

// Update updates an existing menu in the database.
func (r *GORMMenuRepository) Update(menu *models.Menu) error {
	res := r.db.Save(menu) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update menu: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound if no rows were
		// affected by an update, so we check RowsAffected.
		return fmt.Errorf("menu with ID %s: %w", menu.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a menu by its ID from the database.
func (r *GORMMenuRepository) Delete(id string) error {
	res := r.db.Delete(&models.Menu{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
