package repositories

import (
	"fmt"
	"sync"

	"warung/internal/models"

	"github.com/google/uuid"
)

// MockMenuRepository is an in-memory implementation of MenuRepository.
type MockMenuRepository struct {
	menus map[string]models.Menu
	mu    sync.RWMutex
}

// NewMockMenuRepository creates a new instance of MockMenuRepository.
func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{
		menus: make(map[string]models.Menu),
	}
}

// GetAll returns all menus.
func (r *MockMenuRepository) GetAll() ([]models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menuList := make([]models.Menu, 0, len(r.menus))
	for _, menu := range r.menus {
		menuList = append(menuList, menu)
	}
	return menuList, nil
}

// GetByID returns a menu by its ID.
func (r *MockMenuRepository) GetByID(id string) (*models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menu, ok := r.menus[id]
	if !ok {
		return nil, fmt.Errorf("menu with ID %s: %w", id, ErrNotFound)
	}
	return &menu, nil
}

// GetByIDs returns the menus matching the given IDs. Missing IDs are
// silently skipped, matching the batched lookup contract.
func (r *MockMenuRepository) GetByIDs(ids []string) ([]models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menuList := make([]models.Menu, 0, len(ids))
	for _, id := range ids {
		if menu, ok := r.menus[id]; ok {
			menuList = append(menuList, menu)
		}
	}
	return menuList, nil
}

// Create adds a new menu.
func (r *MockMenuRepository) Create(menu *models.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	r.menus[menu.ID] = *menu
	return nil
}

// Update replaces an existing menu.
func (r *MockMenuRepository) Update(menu *models.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[menu.ID]; !ok {
		return fmt.Errorf("menu with ID %s: %w", menu.ID, ErrNotFound)
	}
	r.menus[menu.ID] = *menu
	return nil
}

// Delete removes a menu by its ID.
func (r *MockMenuRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[id]; !ok {
		return fmt.Errorf("menu with ID %s: %w", id, ErrNotFound)
	}
	delete(r.menus, id)
	return nil
}
