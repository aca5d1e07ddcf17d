// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/cart"
)

// CartHandler handles the single in-progress sale
type CartHandler struct {
	cart *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cart: cartService}
}

// cartResponse is the cart with its running totals
type cartResponse struct {
	Lines    []cart.Line `json:"lines"`
	Subtotal string      `json:"subtotal"`
	Tax      string      `json:"tax"`
	Total    string      `json:"total"`
	Discount string      `json:"discount"`
}

func (h *CartHandler) snapshot() cartResponse {
	return cartResponse{
		Lines:    h.cart.Lines(),
		Subtotal: h.cart.Subtotal().StringFixed(2),
		Tax:      h.cart.Tax().StringFixed(2),
		Total:    h.cart.Total().StringFixed(2),
		Discount: h.cart.Discount().StringFixed(2),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.snapshot(),
	})
}

// AddToCartRequest is the payload for adding an item by description
type AddToCartRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	line, err := h.cart.AddByDescription(req.Description, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"line": line,
			"cart": h.snapshot(),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:barcode
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	barcode := c.Param("barcode")

	if !h.cart.Remove(barcode) {
		respondError(c, &cart.ProductNotFoundError{Query: barcode})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.snapshot(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
