// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/your-org/pos-backend/internal/domain/checkout"
)

// CheckoutHandler handles committing the in-progress sale
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// CheckoutRequest is the payment for the current cart
type CheckoutRequest struct {
	Tendered decimal.Decimal `json:"tendered" binding:"required"`
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	committed, err := h.checkout.Process(req.Tendered)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sale completed successfully",
		"data":    committed,
	})
}
