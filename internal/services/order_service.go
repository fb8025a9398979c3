package services

import (
	"errors"
	"fmt"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// EventPublisher publishes order lifecycle events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderCreatedEvent) error
}

// OrderService handles business logic related to orders: validation against
// the user directory and menu catalog, pricing, the transactional write, and
// invoice projection.
type OrderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// CreateOrder validates the requested lines against the live catalog and
// user directory, prices them, and persists the order with its items as one
// atomic unit. On success it returns the invoice projection of the stored
// order.
//
// The catalog is read exactly once, before the write; a concurrent price
// update between that read and the commit is not detected.
func (s *OrderService) CreateOrder(userID string, lines []models.OrderLine) (*models.Invoice, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}

	menuIDs := distinctMenuIDs(lines)
	menus, err := s.menuRepo.GetByIDs(menuIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}
	// Set-membership check over distinct ids: a single missing id fails the
	// whole request before anything is written.
	if len(menus) != len(menuIDs) {
		return nil, ErrMenuItemsNotFound
	}

	menusByID := make(map[string]models.Menu, len(menus))
	for _, menu := range menus {
		menusByID[menu.ID] = menu
	}

	items, total, err := PriceOrder(lines, menusByID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID: user.ID,
		User:   *user,
		Items:  items,
		Total:  total,
		Status: models.OrderStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Event publishing is best-effort on top of a committed order; a broker
	// failure must not fail the request.
	if s.publisher != nil {
		event := rabbitmq.OrderCreatedEvent{
			OrderID: order.ID,
			UserID:  order.UserID,
			Total:   order.Total,
			Status:  order.Status,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			logrus.Warnf("Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	invoice := BuildInvoice(order)
	return &invoice, nil
}

// ListOrders returns the invoice projection of every persisted order.
func (s *OrderService) ListOrders() ([]models.Invoice, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	invoices := make([]models.Invoice, 0, len(orders))
	for i := range orders {
		invoices = append(invoices, BuildInvoice(&orders[i]))
	}
	return invoices, nil
}

// GetOrderByID returns the invoice projection of a single order.
func (s *OrderService) GetOrderByID(id string) (*models.Invoice, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	invoice := BuildInvoice(order)
	return &invoice, nil
}

// PriceOrder derives one order item per requested line and the order total
// from the resolved catalog records. Duplicate menu ids stay independent
// lines. Pure function; safe to call without any storage dependency.
func PriceOrder(lines []models.OrderLine, menusByID map[string]models.Menu) ([]models.OrderItem, float64, error) {
	var total float64
	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {
		menu, ok := menusByID[line.MenuID]
		if !ok {
			return nil, 0, fmt.Errorf("menu item %s has no resolved record: %w", line.MenuID, ErrInvariantViolation)
		}
		total += menu.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuID:   line.MenuID,
			Menu:     menu,
			Quantity: line.Quantity,
		})
	}
	return items, total, nil
}

// distinctMenuIDs returns the requested menu ids with duplicates removed,
// preserving first-seen order.
func distinctMenuIDs(lines []models.OrderLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if !seen[line.MenuID] {
			seen[line.MenuID] = true
			ids = append(ids, line.MenuID)
		}
	}
	return ids
}
