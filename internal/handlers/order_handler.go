package handlers

import (
	"errors"

	"warung/internal/models"
	"warung/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// OrderHandler handles HTTP requests for orders. All order routes require an
// authenticated user; the user id is taken from the token, never from the
// request body.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	Items []models.OrderLine `json:"items" validate:"required,min=1,dive"`
}

// HandleCreateOrder creates a new order for the authenticated user and
// responds with its invoice.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Debugf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	invoice, err := h.service.CreateOrder(userID, req.Items)
	if err != nil {
		logrus.Infof("Error creating order for user %s: %v", userID, err)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrMenuItemsNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "One or more menu items not found",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not create order",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.InvoiceResponse{Invoice: *invoice})
}

// HandleGetOrders retrieves the invoices of all persisted orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	invoices, err := h.service.ListOrders()
	if err != nil {
		logrus.Errorf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	responses := make([]models.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, models.InvoiceResponse{Invoice: invoice})
	}
	return c.JSON(responses)
}

// HandleGetOrderByID retrieves the invoice of a single order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	invoice, err := h.service.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		logrus.Errorf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(models.InvoiceResponse{Invoice: *invoice})
}
