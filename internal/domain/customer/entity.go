// internal/domain/customer/entity.go
package customer

import "time"

// Customer represents an invoicing customer keyed by RFC. The fiscal fields
// are reference data for invoice paperwork; no tax-authority integration.
type Customer struct {
	BusinessName  string    `json:"business_name"`
	FiscalRegime  string    `json:"fiscal_regime"`
	CFDIUse       string    `json:"cfdi_use"`
	PostalCode    string    `json:"postal_code"`
	FiscalAddress string    `json:"fiscal_address"`
	State         string    `json:"state"`
	City          string    `json:"city"`
	Municipality  string    `json:"municipality"`
	Neighborhood  string    `json:"neighborhood"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	RegisteredAt  time.Time `json:"registered_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Entry pairs a customer with its RFC key.
type Entry struct {
	RFC      string   `json:"rfc"`
	Customer Customer `json:"customer"`
}
