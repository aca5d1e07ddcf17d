// internal/interfaces/http/handlers/sale.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/sale"
	"github.com/your-org/pos-backend/internal/pkg/pdf"
	"github.com/your-org/pos-backend/internal/pkg/receipt"
)

// SaleHandler handles the committed sales history
type SaleHandler struct {
	ledger     *sale.Ledger
	pdfService *pdf.Service
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(ledger *sale.Ledger, pdfService *pdf.Service) *SaleHandler {
	return &SaleHandler{
		ledger:     ledger,
		pdfService: pdfService,
	}
}

// ListSales handles GET /sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sales retrieved successfully",
		"data":    h.ledger.All(),
		"count":   h.ledger.Len(),
	})
}

// GetSale handles GET /sales/:folio
func (h *SaleHandler) GetSale(c *gin.Context) {
	committed, ok := h.lookupSale(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale retrieved successfully",
		"data":    committed,
	})
}

// SearchSales handles GET /sales/search
func (h *SaleHandler) SearchSales(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	results := h.ledger.SearchByDescription(query)
	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    results,
		"count":   len(results),
	})
}

// GetReceipt handles GET /sales/:folio/receipt
func (h *SaleHandler) GetReceipt(c *gin.Context) {
	committed, ok := h.lookupSale(c)
	if !ok {
		return
	}

	c.String(http.StatusOK, receipt.Format(committed))
}

// GetReceiptPDF handles GET /sales/:folio/receipt.pdf
func (h *SaleHandler) GetReceiptPDF(c *gin.Context) {
	committed, ok := h.lookupSale(c)
	if !ok {
		return
	}

	buf, err := h.pdfService.GenerateReceipt(&committed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate PDF receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", committed.Folio))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *SaleHandler) lookupSale(c *gin.Context) (sale.Sale, bool) {
	folio, err := strconv.Atoi(c.Param("folio"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid folio number",
		})
		return sale.Sale{}, false
	}

	committed, ok := h.ledger.ByFolio(folio)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("sale with folio %d not found", folio),
		})
		return sale.Sale{}, false
	}
	return committed, true
}
