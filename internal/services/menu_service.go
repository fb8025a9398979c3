package services

import (
	"fmt"

	"warung/internal/models"
	"warung/internal/repositories"
)

// MenuService handles business logic related to the menu catalog.
type MenuService struct {
	repo repositories.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetAllMenus retrieves all menus.
func (s *MenuService) GetAllMenus() ([]models.Menu, error) {
	return s.repo.GetAll()
}

// GetMenuByID retrieves a single menu by its ID.
func (s *MenuService) GetMenuByID(id string) (*models.Menu, error) {
	return s.repo.GetByID(id)
}

// CreateMenu creates a new menu.
func (s *MenuService) CreateMenu(menu *models.Menu) error {
	return s.repo.Create(menu)
}

// UpdateMenu applies a partial update to an existing menu and returns the
// updated record.
func (s *MenuService) UpdateMenu(id string, patch models.MenuUpdate) (*models.Menu, error) {
	menu, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		menu.Name = *patch.Name
	}
	if patch.Price != nil {
		menu.Price = *patch.Price
	}
	if patch.Category != nil {
		menu.Category = *patch.Category
	}

	if err := s.repo.Update(menu); err != nil {
		return nil, fmt.Errorf("failed to update menu %s: %w", id, err)
	}
	return menu, nil
}

// DeleteMenu deletes a menu by its ID and returns the deleted record.
func (s *MenuService) DeleteMenu(id string) (*models.Menu, error) {
	menu, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return menu, nil
}
