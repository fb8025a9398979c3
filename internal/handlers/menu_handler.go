package handlers

import (
	"errors"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the menu routes. Reads are public; mutations run
// behind the supplied auth and admin middleware.
func (h *MenuHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	menuRoutes := router.Group("/menus")
	menuRoutes.Get("/", h.HandleGetMenus)
	menuRoutes.Get("/:id", h.HandleGetMenuByID)
	menuRoutes.Post("/", authRequired, adminRequired, h.HandleCreateMenu)
	menuRoutes.Patch("/:id", authRequired, adminRequired, h.HandleUpdateMenu)
	menuRoutes.Delete("/:id", authRequired, adminRequired, h.HandleDeleteMenu)
}

// HandleGetMenus retrieves all menus.
func (h *MenuHandler) HandleGetMenus(c *fiber.Ctx) error {
	menus, err := h.service.GetAllMenus()
	if err != nil {
		logrus.Errorf("Error getting all menus: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menus",
			"error":   err.Error(),
		})
	}
	return c.JSON(menus)
}

// HandleGetMenuByID retrieves a single menu by its ID.
func (h *MenuHandler) HandleGetMenuByID(c *fiber.Ctx) error {
	menuID := c.Params("id")
	menu, err := h.service.GetMenuByID(menuID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Menu not found",
			})
		}
		logrus.Errorf("Error getting menu by ID %s: %v", menuID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(menu)
}

// CreateMenuRequest represents the request body for menu creation.
type CreateMenuRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
}

// HandleCreateMenu creates a new menu. Admin only.
func (h *MenuHandler) HandleCreateMenu(c *fiber.Ctx) error {
	var req CreateMenuRequest
	if err := c.BodyParser(&req); err != nil {
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

	menu := models.Menu{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	}
	if err := h.service.CreateMenu(&menu); err != nil {
		logrus.Errorf("Error creating menu: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create menu",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(menu)
}

// UpdateMenuRequest represents the request body for a partial menu update.
type UpdateMenuRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
}

// HandleUpdateMenu applies a partial update to a menu. Admin only.
func (h *MenuHandler) HandleUpdateMenu(c *fiber.Ctx) error {
	menuID := c.Params("id")

	var req UpdateMenuRequest
	if err := c.BodyParser(&req); err != nil {
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

	menu, err := h.service.UpdateMenu(menuID, models.MenuUpdate{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Menu not found",
			})
		}
		logrus.Errorf("Error updating menu %s: %v", menuID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update menu",
			"error":   err.Error(),
		})
	}

	return c.JSON(menu)
}

// HandleDeleteMenu deletes a menu by its ID. Admin only.
func (h *MenuHandler) HandleDeleteMenu(c *fiber.Ctx) error {
	menuID := c.Params("id")

	menu, err := h.service.DeleteMenu(menuID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Menu not found",
			})
		}
		logrus.Errorf("Error deleting menu %s: %v", menuID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete menu",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Menu deleted successfully",
		"deletedMenu": menu,
	})
}
