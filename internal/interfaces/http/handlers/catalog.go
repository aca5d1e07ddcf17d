// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/fiscal"
)

// CatalogHandler serves the static SAT fiscal catalogs
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListFiscalRegimes handles GET /catalogs/fiscal-regimes
func (h *CatalogHandler) ListFiscalRegimes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Fiscal regimes retrieved successfully",
		"data":    fiscal.Regimes(),
	})
}

// ListCFDIUses handles GET /catalogs/cfdi-uses
func (h *CatalogHandler) ListCFDIUses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "CFDI uses retrieved successfully",
		"data":    fiscal.CFDIUses(),
	})
}
