// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/product"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	products *product.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *product.Store) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.products.All(),
	})
}

// GetProduct handles GET /products/:barcode
func (h *ProductHandler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	p, ok := h.products.Get(barcode)
	if !ok {
		// Fall back to secondary codes so scanned alternate barcodes resolve.
		entry, found := h.products.SearchByCode(barcode)
		if !found {
			respondError(c, &product.NotFoundError{Barcode: barcode})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Product retrieved successfully",
			"data":    entry,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product.Entry{Barcode: barcode, Product: p},
	})
}

// CreateProductRequest is the payload for registering a product
type CreateProductRequest struct {
	Barcode string          `json:"barcode" binding:"required"`
	Product product.Product `json:"product" binding:"required"`
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.products.Create(req.Barcode, req.Product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product.Entry{Barcode: req.Barcode, Product: req.Product},
	})
}

// UpdateProduct handles PUT /products/:barcode
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	var p product.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.products.Update(barcode, p); err != nil {
		respondError(c, err)
		return
	}

	updated, _ := h.products.Get(barcode)
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product.Entry{Barcode: barcode, Product: updated},
	})
}

// DeleteProduct handles DELETE /products/:barcode
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	if err := h.products.Delete(barcode); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	results := h.products.SearchByDescription(query)
	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    results,
		"count":   len(results),
	})
}
