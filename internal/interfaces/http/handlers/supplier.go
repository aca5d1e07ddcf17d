// internal/interfaces/http/handlers/supplier.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/supplier"
)

// SupplierHandler handles the supplier registry
type SupplierHandler struct {
	suppliers *supplier.Store
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(suppliers *supplier.Store) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// ListSuppliers handles GET /suppliers
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	// Deactivated suppliers stay hidden unless include_inactive is set.
	var entries []supplier.Entry
	if c.Query("include_inactive") == "true" {
		entries = h.suppliers.All()
	} else {
		entries = h.suppliers.Active()
	}

	if terms := c.Query("payment_terms"); terms != "" {
		pt := supplier.PaymentTerms(terms)
		if !pt.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "payment_terms must be weekly, biweekly or monthly",
			})
			return
		}
		entries = h.suppliers.ByPaymentTerms(pt)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suppliers retrieved successfully",
		"data":    entries,
		"count":   len(entries),
	})
}

// GetSupplier handles GET /suppliers/:id
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id := c.Param("id")

	sup, ok := h.suppliers.Get(id)
	if !ok {
		respondError(c, &supplier.NotFoundError{ID: strings.ToUpper(id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supplier retrieved successfully",
		"data":    supplier.Entry{ID: strings.ToUpper(id), Supplier: sup},
	})
}

// CreateSupplierRequest is the payload for registering a supplier
type CreateSupplierRequest struct {
	ID       string            `json:"id"`
	Supplier supplier.Supplier `json:"supplier" binding:"required"`
}

// CreateSupplier handles POST /suppliers
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	id, err := h.suppliers.Create(req.ID, req.Supplier)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Supplier created successfully",
		"data": gin.H{
			"id": id,
		},
	})
}

// UpdateSupplier handles PUT /suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id := c.Param("id")

	var sup supplier.Supplier
	if err := c.ShouldBindJSON(&sup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.suppliers.Update(id, sup); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supplier updated successfully",
	})
}

// DeactivateSupplier handles DELETE /suppliers/:id
func (h *SupplierHandler) DeactivateSupplier(c *gin.Context) {
	// Deletion is a soft deactivate; the record survives for history.
	if err := h.suppliers.Deactivate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supplier deactivated successfully",
	})
}

// ActivateSupplier handles POST /suppliers/:id/activate
func (h *SupplierHandler) ActivateSupplier(c *gin.Context) {
	if err := h.suppliers.Activate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supplier activated successfully",
	})
}

// SearchSuppliers handles GET /suppliers/search
func (h *SupplierHandler) SearchSuppliers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	activeOnly := c.Query("include_inactive") != "true"
	results := h.suppliers.Search(query, activeOnly)
	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    results,
		"count":   len(results),
	})
}
