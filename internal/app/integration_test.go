package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/chorokshop-backend/config"
	"github.com/ikkim/chorokshop-backend/internal/app/controller"
	"github.com/ikkim/chorokshop-backend/internal/app/repository"
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	"github.com/ikkim/chorokshop-backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Router      *gin.Engine
	CartService service.CartService
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	// Setup repositories
	catalogRepo, err := repository.NewCatalogRepository(repository.DefaultCatalog())
	require.NoError(t, err)
	cartRepo := repository.NewCartRepository()

	// Setup services
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartRepo, catalogRepo)

	// Setup controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(cartService)

	// Setup router with the real middleware chain
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:        "8080",
			GinMode:     gin.TestMode,
			Environment: "test",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Stats: config.StatsConfig{
			Schedule: "@hourly",
		},
	}
	engine := router.NewRouter(catalogController, cartController, checkoutController, cfg).Setup()

	return &TestServer{
		Router:      engine,
		CartService: cartService,
	}
}

func TestShopperJourney(t *testing.T) {
	ts := setupIntegrationTest(t)

	// 1. Health check
	t.Log("Step 1: Health check")
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var healthResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &healthResp)
	assert.Equal(t, "healthy", healthResp["status"])

	// 2. Browse the catalog
	t.Log("Step 2: Browse products")
	req = httptest.NewRequest("GET", "/api/v1/products", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var productsResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &productsResp)
	assert.Equal(t, float64(6), productsResp["count"])

	// 3. Browse by category
	t.Log("Step 3: Browse products grouped by category")
	req = httptest.NewRequest("GET", "/api/v1/products/grouped", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var groupedResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &groupedResp)
	assert.Equal(t, float64(3), groupedResp["count"])

	// 4. Add a monstera
	t.Log("Step 4: Add monstera to cart")
	body, _ := json.Marshal(map[string]string{"product_id": "monstera"})
	req = httptest.NewRequest("POST", "/api/v1/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cartResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, float64(1), cartResp["total_quantity"])

	// 5. Tap the same product again: quantity must stay at 1
	t.Log("Step 5: Add monstera again")
	body, _ = json.Marshal(map[string]string{"product_id": "monstera"})
	req = httptest.NewRequest("POST", "/api/v1/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, float64(1), cartResp["total_quantity"])
	items := cartResp["items"].([]interface{})
	require.Len(t, items, 1)

	// 6. Add a stuckyi and bump its quantity
	t.Log("Step 6: Add stuckyi and increment it")
	body, _ = json.Marshal(map[string]string{"product_id": "stuckyi"})
	req = httptest.NewRequest("POST", "/api/v1/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("POST", "/api/v1/cart/stuckyi/increment", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, float64(3), cartResp["total_quantity"])
	assert.Equal(t, float64(55000), cartResp["total_cost"]) // 25000 + 15000*2

	// 7. Checkout reports the totals without touching the cart
	t.Log("Step 7: Checkout")
	req = httptest.NewRequest("POST", "/api/v1/checkout", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var checkoutResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &checkoutResp)
	assert.Equal(t, float64(55000), checkoutResp["total_cost"])
	assert.Equal(t, "55,000원", checkoutResp["total_display"])

	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, float64(3), cartResp["total_quantity"])
	assert.Equal(t, float64(55000), cartResp["total_cost"])

	// 8. Put one stuckyi back
	t.Log("Step 8: Decrement stuckyi")
	req = httptest.NewRequest("POST", "/api/v1/cart/stuckyi/decrement", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, float64(2), cartResp["total_quantity"])
	assert.Equal(t, float64(40000), cartResp["total_cost"])

	// 9. Empty the cart entry by entry
	t.Log("Step 9: Remove both products")
	req = httptest.NewRequest("DELETE", "/api/v1/cart/monstera", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("DELETE", "/api/v1/cart/stuckyi", nil)
	w = httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Len(t, cartResp["items"], 0)
	assert.Equal(t, float64(0), cartResp["total_quantity"])
	assert.Equal(t, float64(0), cartResp["total_cost"])
}

func TestCartCommandsAreTotal(t *testing.T) {
	ts := setupIntegrationTest(t)

	// Commands aimed at products that were never added must not fail
	requests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/cart/cactus/increment"},
		{"POST", "/api/v1/cart/cactus/decrement"},
		{"DELETE", "/api/v1/cart/cactus"},
		{"POST", "/api/v1/cart/monstera/increment"},
		{"POST", "/api/v1/cart/monstera/decrement"},
		{"DELETE", "/api/v1/cart/monstera"},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			req := httptest.NewRequest(r.method, r.path, nil)
			w := httptest.NewRecorder()

			ts.Router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	// The cart is still empty afterwards
	assert.Len(t, ts.CartService.Snapshot(), 0)
}

func TestAddUnknownProduct(t *testing.T) {
	ts := setupIntegrationTest(t)

	body, _ := json.Marshal(map[string]string{"product_id": "cactus"})
	req := httptest.NewRequest("POST", "/api/v1/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "CATALOG_PRODUCT_NOT_FOUND", response["error"])

	// Nothing reaches the cart
	assert.Len(t, ts.CartService.Snapshot(), 0)
}
