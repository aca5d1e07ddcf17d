// internal/interfaces/http/server_test.go
package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/checkout"
	"github.com/your-org/pos-backend/internal/domain/customer"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/report"
	"github.com/your-org/pos-backend/internal/domain/sale"
	"github.com/your-org/pos-backend/internal/domain/supplier"
	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()

	products, err := product.NewStore(storage.NewJSONFile(filepath.Join(dir, "inventory.json")))
	require.NoError(t, err)
	ledger, err := sale.NewLedger(storage.NewJSONFile(filepath.Join(dir, "sales.json")))
	require.NoError(t, err)
	customers, err := customer.NewStore(storage.NewJSONFile(filepath.Join(dir, "customers.json")))
	require.NoError(t, err)
	suppliers, err := supplier.NewStore(storage.NewJSONFile(filepath.Join(dir, "suppliers.json")))
	require.NoError(t, err)

	cartService := cart.NewService(products)
	return NewServer(cfg, &Services{
		Products:  products,
		Cart:      cartService,
		Checkout:  checkout.NewService(products, cartService, ledger),
		Ledger:    ledger,
		Customers: customers,
		Suppliers: suppliers,
		Reports:   report.NewService(ledger),
	})
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "pos-backend",
			Version:     "1.0.0",
			Environment: "test",
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: []string{"*"},
			CORSAllowedMethods: []string{"GET", "POST"},
			CORSAllowedHeaders: []string{"Content-Type"},
			TrustedProxies:     []string{"10.0.0.0/8"},
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func TestBuildEngineServesHealth(t *testing.T) {
	server := newTestServer(t, testConfig())
	require.NoError(t, server.buildEngine())

	rec := httptest.NewRecorder()
	server.gin.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "POS API", rec.Header().Get("Server"))
}

func TestBuildEngineRejectsInvalidTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.Security.TrustedProxies = []string{"not-a-cidr"}

	server := newTestServer(t, cfg)
	require.Error(t, server.buildEngine())
}
