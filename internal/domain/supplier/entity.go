// internal/domain/supplier/entity.go
package supplier

import "time"

// PaymentTerms is the supplier's billing cycle.
type PaymentTerms string

const (
	PaymentWeekly   PaymentTerms = "weekly"
	PaymentBiweekly PaymentTerms = "biweekly"
	PaymentMonthly  PaymentTerms = "monthly"
)

// Valid reports whether the value is one of the known billing cycles.
func (p PaymentTerms) Valid() bool {
	switch p {
	case PaymentWeekly, PaymentBiweekly, PaymentMonthly:
		return true
	}
	return false
}

// Supplier represents a vendor keyed by an uppercase supplier ID.
// Deactivated suppliers are kept on file until permanently deleted.
type Supplier struct {
	Alias        string       `json:"alias"`
	RFC          string       `json:"rfc"`
	BusinessName string       `json:"business_name"`
	Contact      string       `json:"contact"`
	Phone        string       `json:"phone"`
	PostalCode   string       `json:"postal_code"`
	State        string       `json:"state"`
	City         string       `json:"city"`
	Municipality string       `json:"municipality"`
	Neighborhood string       `json:"neighborhood"`
	Address      string       `json:"address"`
	Fax          string       `json:"fax"`
	Email        string       `json:"email"`
	Website      string       `json:"website"`
	PaymentTerms PaymentTerms `json:"payment_terms"`
	Conditions   string       `json:"conditions"`
	RegisteredAt time.Time    `json:"registered_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Active       bool         `json:"active"`
}

// Entry pairs a supplier with its ID.
type Entry struct {
	ID       string   `json:"id"`
	Supplier Supplier `json:"supplier"`
}
