package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/config"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/infrastructure/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
	"github.com/sangkips/blisspos/internal/presentation/http/handler"
	"github.com/sangkips/blisspos/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full stack over a temp data directory, mirroring
// the wiring in cmd/api.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	categoryRepo, err := repository.NewCategoryRepository(store)
	require.NoError(t, err)
	itemRepo, err := repository.NewItemRepository(store)
	require.NoError(t, err)
	saleRepo, err := repository.NewSaleRepository(store)
	require.NoError(t, err)
	profileRepo, err := repository.NewStoreProfileRepository(store, entity.StoreProfile{
		Name:    "Cafe Bliss",
		Cashier: "Baqir",
	})
	require.NoError(t, err)

	catalogService := service.NewCatalogService(categoryRepo, itemRepo)
	cartService := service.NewCartService(itemRepo, saleRepo, 0.05)
	ledgerService := service.NewLedgerService(saleRepo)
	settingsService := service.NewSettingsService(profileRepo)
	receiptService := service.NewReceiptService(printer.NewNullPrinter(), profileRepo, ledgerService, "none", 32, "PKR")

	handlers := &Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService, receiptService),
		Sales:    handler.NewSalesHandler(ledgerService, receiptService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "blisspos-test"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	return Setup(handlers, cfg)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	env := &envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), env))
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestSaleFlow(t *testing.T) {
	router := newTestRouter(t)

	// Build the catalog
	w, env := do(t, router, http.MethodPost, "/api/v1/categories", gin.H{"name": "Menu", "color": "#8D6E63"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)
	category := decode[struct {
		ID string `json:"id"`
	}](t, env.Data)

	w, env = do(t, router, http.MethodPost, "/api/v1/items", gin.H{
		"name":        "Coffee",
		"price":       5.0,
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[struct {
		ID string `json:"id"`
	}](t, env.Data)

	// Two coffees with a 10% discount, paid by card
	for i := 0; i < 2; i++ {
		w, _ = do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"item_id": item.ID})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, _ = do(t, router, http.MethodPut, "/api/v1/cart/discount", gin.H{"percent": 10})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, router, http.MethodPut, "/api/v1/cart/payment-method", gin.H{"method": "card"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, router, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	checkout := decode[struct {
		Sale struct {
			ID            string          `json:"id"`
			Subtotal      decimal.Decimal `json:"subtotal"`
			Total         decimal.Decimal `json:"total"`
			PaymentMethod string          `json:"payment_method"`
			ReceiptNumber string          `json:"receipt_number"`
		} `json:"sale"`
		Receipt struct {
			ReceiptNumber string `json:"receipt_number"`
		} `json:"receipt"`
	}](t, env.Data)

	// 10.00 less 1.00 discount plus 0.45 tax
	assert.True(t, checkout.Sale.Subtotal.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, checkout.Sale.Total.Equal(decimal.RequireFromString("9.45")))
	assert.Equal(t, "card", checkout.Sale.PaymentMethod)
	assert.Equal(t, checkout.Sale.ReceiptNumber, checkout.Receipt.ReceiptNumber)

	// The cart is reset for the next customer
	w, env = do(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[struct {
		Items []json.RawMessage `json:"items"`
	}](t, env.Data)
	assert.Empty(t, cart.Items)

	// The sale is in the history
	w, env = do(t, router, http.MethodGet, "/api/v1/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
	assert.Contains(t, string(env.Data), checkout.Sale.ID)

	w, _ = do(t, router, http.MethodGet, "/api/v1/sales/"+checkout.Sale.ID+"/receipt", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/cart/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestDeleteCategoryRemovesItems(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodPost, "/api/v1/categories", gin.H{"name": "Menu"})
	category := decode[struct {
		ID string `json:"id"`
	}](t, env.Data)

	w, _ := do(t, router, http.MethodPost, "/api/v1/items", gin.H{
		"name":        "Coffee",
		"price":       5.0,
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/api/v1/categories/"+category.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = do(t, router, http.MethodGet, "/api/v1/items", nil)
	items := decode[[]json.RawMessage](t, env.Data)
	assert.Empty(t, items)
}

func TestInvalidRequests(t *testing.T) {
	router := newTestRouter(t)

	// Missing name fails binding
	w, _ := do(t, router, http.MethodPost, "/api/v1/categories", gin.H{"color": "#fff"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown sale ID
	w, _ = do(t, router, http.MethodGet, "/api/v1/sales/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed UUID param
	w, _ = do(t, router, http.MethodDelete, "/api/v1/items/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed date filter
	w, _ = do(t, router, http.MethodGet, "/api/v1/sales?date=01-06-2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
