// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/customer"
)

// CustomerHandler handles the fiscal customer registry
type CustomerHandler struct {
	customers *customer.Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *customer.Store) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	// An optional q filters by RFC, business name, email or phone.
	if query := c.Query("q"); query != "" {
		results := h.customers.Search(query)
		c.JSON(http.StatusOK, gin.H{
			"message": "Search completed successfully",
			"data":    results,
			"count":   len(results),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data":    h.customers.All(),
	})
}

// GetCustomer handles GET /customers/:rfc
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	rfc := c.Param("rfc")

	cust, ok := h.customers.Get(rfc)
	if !ok {
		respondError(c, &customer.NotFoundError{RFC: strings.ToUpper(rfc)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    customer.Entry{RFC: strings.ToUpper(rfc), Customer: cust},
	})
}

// CreateCustomerRequest is the payload for registering a customer
type CreateCustomerRequest struct {
	RFC      string            `json:"rfc" binding:"required"`
	Customer customer.Customer `json:"customer" binding:"required"`
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.customers.Create(req.RFC, req.Customer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
	})
}

// UpdateCustomer handles PUT /customers/:rfc
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	rfc := c.Param("rfc")

	var cust customer.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.customers.Update(rfc, cust); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer updated successfully",
	})
}

// DeleteCustomer handles DELETE /customers/:rfc
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customers.Delete(c.Param("rfc")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer deleted successfully",
	})
}
