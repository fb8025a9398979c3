package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"warung/internal/handlers"
	"warung/internal/middleware"
	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app backed by a fresh in-memory SQLite database,
// wired the same way as main. The event publisher is nil so no broker is
// needed.
func setupApp() (*fiber.App, *services.AuthService, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// A unique name per setup keeps tests from sharing database state.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Menu{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	menuRepo := repositories.NewGORMMenuRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, userRepo, nil)

	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	menuHandler.RegisterRoutes(apiV1, middleware.AuthRequired(authService), middleware.AdminRequired())

	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	orderHandler.RegisterRoutes(protectedRoutes)

	return app, authService, nil
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

// registerUser registers a user through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	}
	if role != "" {
		body["role"] = role
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", body, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var registerResp map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&registerResp))
	token, _ := registerResp["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

// createMenu creates a menu through the API using an admin token.
func createMenu(t *testing.T, app *fiber.App, adminToken, name string, price float64) models.Menu {
	t.Helper()

	body := map[string]interface{}{
		"name":     name,
		"price":    price,
		"category": "food",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/menus", body, adminToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var menu models.Menu
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&menu))
	assert.NotEmpty(t, menu.ID)
	return menu
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)

	userToRegister := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", userToRegister, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var registerResp map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&registerResp))
	assert.Equal(t, "User registered successfully", registerResp["message"])
	resp.Body.Close()

	// Registering the same email again conflicts.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", userToRegister, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	token, _ := loginResp["token"].(string)
	assert.NotEmpty(t, token)
	resp.Body.Close()

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.Contains(t, claims, "user_id")

	// Wrong password is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestMenuEndpoints(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	adminToken := registerUser(t, app, "Admin", "admin@example.com", models.RoleAdmin)
	userToken := registerUser(t, app, "Plain User", "user@example.com", "")

	// Mutations require a token and the ADMIN role.
	menuBody := map[string]interface{}{"name": "Nasi Goreng", "price": 10.0, "category": "mains"}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/menus", menuBody, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/menus", menuBody, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	created := createMenu(t, app, adminToken, "Nasi Goreng", 10)
	assert.Equal(t, "Nasi Goreng", created.Name)
	assert.Equal(t, 10.0, created.Price)

	// Reads are public.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/menus", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var menus []models.Menu
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&menus))
	assert.Len(t, menus, 1)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/menus/"+created.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Menu
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created.ID, fetched.ID)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/menus/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Partial update changes only the supplied fields.
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/menus/"+created.ID, map[string]interface{}{
		"price": 12.5,
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Menu
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Nasi Goreng", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	resp.Body.Close()

	// Delete responds with the removed record and the menu is gone after.
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/menus/"+created.ID, nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleteResp struct {
		Message     string      `json:"message"`
		DeletedMenu models.Menu `json:"deletedMenu"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&deleteResp))
	assert.Equal(t, created.ID, deleteResp.DeletedMenu.ID)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/menus/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateOrderFlow(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	adminToken := registerUser(t, app, "Admin", "admin@example.com", models.RoleAdmin)
	userToken := registerUser(t, app, "Hungry User", "hungry@example.com", "")

	nasi := createMenu(t, app, adminToken, "Nasi Goreng", 10)
	teh := createMenu(t, app, adminToken, "Es Teh", 5)

	// Order routes require authentication.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	orderBody := map[string]interface{}{
		"items": []map[string]interface{}{
			{"menuId": nasi.ID, "quantity": 2},
			{"menuId": teh.ID, "quantity": 3},
		},
	}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", orderBody, userToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var createResp models.InvoiceResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&createResp))
	resp.Body.Close()

	invoice := createResp.Invoice
	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, models.OrderStatusPending, invoice.Status)
	assert.Equal(t, 35.0, invoice.Total)
	assert.Equal(t, "Hungry User", invoice.Customer.Name)
	assert.Equal(t, "hungry@example.com", invoice.Customer.Email)
	assert.Len(t, invoice.Items, 2)

	subtotals := map[string]float64{}
	for _, item := range invoice.Items {
		subtotals[item.MenuName] = item.Subtotal
	}
	assert.Equal(t, 20.0, subtotals["Nasi Goreng"])
	assert.Equal(t, 15.0, subtotals["Es Teh"])

	// The order surfaces in the listing and can be fetched by id.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders", nil, userToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listResp []models.InvoiceResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listResp))
	assert.Len(t, listResp, 1)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+invoice.ID, nil, userToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetchedResp models.InvoiceResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&fetchedResp))
	assert.Equal(t, invoice.ID, fetchedResp.Invoice.ID)
	assert.Equal(t, 35.0, fetchedResp.Invoice.Total)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/missing", nil, userToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateOrderRejectsUnknownMenu(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	adminToken := registerUser(t, app, "Admin", "admin@example.com", models.RoleAdmin)
	userToken := registerUser(t, app, "Hungry User", "hungry@example.com", "")
	nasi := createMenu(t, app, adminToken, "Nasi Goreng", 10)

	orderBody := map[string]interface{}{
		"items": []map[string]interface{}{
			{"menuId": nasi.ID, "quantity": 1},
			{"menuId": "missing-menu", "quantity": 1},
		},
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/orders", orderBody, userToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The rejected request must not leave a partial order behind.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders", nil, userToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listResp []models.InvoiceResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listResp))
	assert.Len(t, listResp, 0)
	resp.Body.Close()

	// An empty item list fails validation.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{},
	}, userToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
