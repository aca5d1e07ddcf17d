// internal/domain/sale/entity.go
package sale

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Line is the immutable per-product snapshot stored inside a committed sale.
type Line struct {
	Barcode        string          `json:"barcode"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Classification string          `json:"classification"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	AppliedPrice   decimal.Decimal `json:"applied_price"`
	Cost           decimal.Decimal `json:"cost"`
	Unit           string          `json:"unit"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Wholesale      bool            `json:"wholesale"`
	Savings        decimal.Decimal `json:"savings"`
}

// PricingDetail summarizes which pricing tiers applied across a sale.
type PricingDetail struct {
	RetailTotal    decimal.Decimal `json:"retail_total"`
	WholesaleTotal decimal.Decimal `json:"wholesale_total"`
	WholesaleLines int             `json:"wholesale_lines"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
}

// Sale is a committed, folio-numbered sale. It is created once by checkout
// and never mutated afterwards.
type Sale struct {
	Folio    int             `json:"folio"`
	Date     time.Time       `json:"date"`
	Lines    []Line          `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Tendered decimal.Decimal `json:"tendered"`
	Change   decimal.Decimal `json:"change"`
	Pricing  PricingDetail   `json:"pricing"`
}

// ContainsDescription reports whether any line's name or description
// contains the term, case-insensitively.
func (s Sale) ContainsDescription(term string) bool {
	term = strings.ToLower(term)
	for _, line := range s.Lines {
		if strings.Contains(strings.ToLower(line.Description), term) ||
			strings.Contains(strings.ToLower(line.Name), term) {
			return true
		}
	}
	return false
}
