// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/checkout"
	"github.com/your-org/pos-backend/internal/domain/customer"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/supplier"
)

// respondError maps domain errors onto HTTP status codes. Unknown errors
// surface as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		productNotFound  *product.NotFoundError
		productExists    *product.AlreadyExistsError
		productInvalid   *product.ValidationError
		stockShort       *product.InsufficientStockError
		cartInvalid      *cart.ValidationError
		cartNotFound     *cart.ProductNotFoundError
		checkoutInvalid  *checkout.ValidationError
		emptyCart        *checkout.EmptyCartError
		paymentShort     *checkout.InsufficientPaymentError
		commitFailed     *checkout.CommitError
		customerNotFound *customer.NotFoundError
		customerInvalid  *customer.ValidationError
		supplierNotFound *supplier.NotFoundError
		supplierInvalid  *supplier.ValidationError
	)

	switch {
	case errors.As(err, &productNotFound),
		errors.As(err, &cartNotFound),
		errors.As(err, &customerNotFound),
		errors.As(err, &supplierNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &productExists),
		errors.As(err, &stockShort):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &paymentShort):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &productInvalid),
		errors.As(err, &cartInvalid),
		errors.As(err, &checkoutInvalid),
		errors.As(err, &emptyCart),
		errors.As(err, &customerInvalid),
		errors.As(err, &supplierInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &commitFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
