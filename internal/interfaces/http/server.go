// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/checkout"
	"github.com/your-org/pos-backend/internal/domain/customer"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/report"
	"github.com/your-org/pos-backend/internal/domain/sale"
	"github.com/your-org/pos-backend/internal/domain/supplier"
	"github.com/your-org/pos-backend/internal/interfaces/http/middleware"
	"github.com/your-org/pos-backend/internal/interfaces/http/routes"
	"github.com/your-org/pos-backend/internal/pkg/pdf"
)

// Services bundles the stores and services the HTTP layer exposes.
type Services struct {
	Products  *product.Store
	Cart      *cart.Service
	Checkout  *checkout.Service
	Ledger    *sale.Ledger
	Customers *customer.Store
	Suppliers *supplier.Store
	Reports   *report.Service
	PDF       *pdf.Service
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	services   *Services
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, services *Services) *Server {
	return &Server{
		config:   cfg,
		services: services,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := s.buildEngine(); err != nil {
		return err
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.startedAt = time.Now()

	log.Printf("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	log.Printf("🌐 API Base URL: http://localhost:%s/api/v1", s.config.Server.Port)
	log.Printf("📊 Health Check: http://localhost:%s/health", s.config.Server.Port)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	log.Println("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	log.Println("✅ HTTP server stopped gracefully")
	return nil
}

// buildEngine assembles the gin engine: trusted proxies, middleware chain
// and routes.
func (s *Server) buildEngine() error {
	s.gin = gin.New()

	// Client IPs in logs are only trusted from the configured proxies.
	if err := s.gin.SetTrustedProxies(s.config.Security.TrustedProxies); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Custom logger middleware
	s.gin.Use(middleware.Logger(s.config))

	// Request ID middleware
	s.gin.Use(middleware.RequestID())

	// CORS middleware
	s.gin.Use(middleware.CORS(s.config))

	// Security headers middleware
	s.gin.Use(middleware.SecurityHeaders())

	// Timeout middleware
	s.gin.Use(middleware.Timeout(30 * time.Second))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoints (outside the API group)
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	// API v1 routes
	apiV1 := s.gin.Group("/api/v1")

	routes.SetupProductRoutes(apiV1, s.services.Products)
	routes.SetupCartRoutes(apiV1, s.services.Cart)
	routes.SetupCheckoutRoutes(apiV1, s.services.Checkout)
	routes.SetupSaleRoutes(apiV1, s.services.Ledger, s.services.PDF)
	routes.SetupCustomerRoutes(apiV1, s.services.Customers)
	routes.SetupSupplierRoutes(apiV1, s.services.Suppliers)
	routes.SetupReportRoutes(apiV1, s.services.Reports)
	routes.SetupCatalogRoutes(apiV1)

	// Root endpoint with an endpoint map in development
	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products":  "/api/v1/products",
					"cart":      "/api/v1/cart",
					"checkout":  "/api/v1/checkout",
					"sales":     "/api/v1/sales",
					"customers": "/api/v1/customers",
					"suppliers": "/api/v1/suppliers",
					"reports":   "/api/v1/reports",
					"catalogs":  "/api/v1/catalogs",
				},
			})
		})
	}
}

// healthCheck handles health check requests. The flat-file stores are loaded
// at startup, so reporting their counts doubles as a liveness probe on the
// data layer.
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"stores": gin.H{
			"products":  s.services.Products.Count(),
			"sales":     s.services.Ledger.Len(),
			"customers": s.services.Customers.Count(),
			"suppliers": s.services.Suppliers.Count(),
		},
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).String(),
	})
}
