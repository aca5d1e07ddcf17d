// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/checkout"
	"github.com/your-org/pos-backend/internal/domain/customer"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/report"
	"github.com/your-org/pos-backend/internal/domain/sale"
	"github.com/your-org/pos-backend/internal/domain/supplier"
	"github.com/your-org/pos-backend/internal/infrastructure/storage"
	"github.com/your-org/pos-backend/internal/interfaces/http"
	"github.com/your-org/pos-backend/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open the flat-file stores
	products, err := product.NewStore(storage.NewJSONFile(cfg.InventoryPath()))
	if err != nil {
		log.Fatalf("Failed to open inventory store: %v", err)
	}

	ledger, err := sale.NewLedger(storage.NewJSONFile(cfg.SalesPath()))
	if err != nil {
		log.Fatalf("Failed to open sales ledger: %v", err)
	}

	customers, err := customer.NewStore(storage.NewJSONFile(cfg.CustomersPath()))
	if err != nil {
		log.Fatalf("Failed to open customer store: %v", err)
	}

	suppliers, err := supplier.NewStore(storage.NewJSONFile(cfg.SuppliersPath()))
	if err != nil {
		log.Fatalf("Failed to open supplier store: %v", err)
	}

	log.Printf("📦 Loaded %d products, %d sales, %d customers, %d suppliers",
		products.Count(), ledger.Len(), customers.Count(), suppliers.Count())

	// Wire the register services over the stores
	cartService := cart.NewService(products)
	checkoutService := checkout.NewService(products, cartService, ledger)
	reportService := report.NewService(ledger)
	pdfService := pdf.NewService(cfg)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, &http.Services{
		Products:  products,
		Cart:      cartService,
		Checkout:  checkoutService,
		Ledger:    ledger,
		Customers: customers,
		Suppliers: suppliers,
		Reports:   reportService,
		PDF:       pdfService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
