// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/checkout"
	"github.com/your-org/pos-backend/internal/domain/customer"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/report"
	"github.com/your-org/pos-backend/internal/domain/sale"
	"github.com/your-org/pos-backend/internal/domain/supplier"
	"github.com/your-org/pos-backend/internal/interfaces/http/handlers"
	"github.com/your-org/pos-backend/internal/pkg/pdf"
)

// SetupProductRoutes sets up product catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, products *product.Store) {
	productHandler := handlers.NewProductHandler(products)

	group := rg.Group("/products")
	{
		group.GET("", productHandler.ListProducts)
		group.GET("/search", productHandler.SearchProducts)
		group.GET("/:barcode", productHandler.GetProduct)
		group.POST("", productHandler.CreateProduct)
		group.PUT("/:barcode", productHandler.UpdateProduct)
		group.DELETE("/:barcode", productHandler.DeleteProduct)
	}
}

// SetupCartRoutes sets up routes for the in-progress sale
func SetupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service) {
	cartHandler := handlers.NewCartHandler(cartService)

	group := rg.Group("/cart")
	{
		group.GET("", cartHandler.GetCart)
		group.POST("/items", cartHandler.AddToCart)
		group.DELETE("/items/:barcode", cartHandler.RemoveFromCart)
		group.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up the checkout route
func SetupCheckoutRoutes(rg *gin.RouterGroup, checkoutService *checkout.Service) {
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	rg.POST("/checkout", checkoutHandler.Checkout)
}

// SetupSaleRoutes sets up sales history and receipt routes
func SetupSaleRoutes(rg *gin.RouterGroup, ledger *sale.Ledger, pdfService *pdf.Service) {
	saleHandler := handlers.NewSaleHandler(ledger, pdfService)

	group := rg.Group("/sales")
	{
		group.GET("", saleHandler.ListSales)
		group.GET("/search", saleHandler.SearchSales)
		group.GET("/:folio", saleHandler.GetSale)
		group.GET("/:folio/receipt", saleHandler.GetReceipt)
		group.GET("/:folio/receipt.pdf", saleHandler.GetReceiptPDF)
	}
}

// SetupCustomerRoutes sets up fiscal customer registry routes
func SetupCustomerRoutes(rg *gin.RouterGroup, customers *customer.Store) {
	customerHandler := handlers.NewCustomerHandler(customers)

	group := rg.Group("/customers")
	{
		group.GET("", customerHandler.ListCustomers)
		group.GET("/:rfc", customerHandler.GetCustomer)
		group.POST("", customerHandler.CreateCustomer)
		group.PUT("/:rfc", customerHandler.UpdateCustomer)
		group.DELETE("/:rfc", customerHandler.DeleteCustomer)
	}
}

// SetupSupplierRoutes sets up supplier registry routes
func SetupSupplierRoutes(rg *gin.RouterGroup, suppliers *supplier.Store) {
	supplierHandler := handlers.NewSupplierHandler(suppliers)

	group := rg.Group("/suppliers")
	{
		group.GET("", supplierHandler.ListSuppliers)
		group.GET("/search", supplierHandler.SearchSuppliers)
		group.GET("/:id", supplierHandler.GetSupplier)
		group.POST("", supplierHandler.CreateSupplier)
		group.PUT("/:id", supplierHandler.UpdateSupplier)
		group.DELETE("/:id", supplierHandler.DeactivateSupplier)
		group.POST("/:id/activate", supplierHandler.ActivateSupplier)
	}
}

// SetupReportRoutes sets up sales reporting routes
func SetupReportRoutes(rg *gin.RouterGroup, reports *report.Service) {
	reportHandler := handlers.NewReportHandler(reports)

	group := rg.Group("/reports")
	{
		group.GET("/daily", reportHandler.DailyReport)
		group.GET("/sales.csv", reportHandler.ExportSalesCSV)
	}
}

// SetupCatalogRoutes sets up the static fiscal catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup) {
	catalogHandler := handlers.NewCatalogHandler()

	group := rg.Group("/catalogs")
	{
		group.GET("/fiscal-regimes", catalogHandler.ListFiscalRegimes)
		group.GET("/cfdi-uses", catalogHandler.ListCFDIUses)
	}
}
