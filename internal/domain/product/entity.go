// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item keyed by its barcode. The barcode itself
// is the map key in the store and is not repeated inside the record.
type Product struct {
	Code           string          `json:"code"`
	ProductNumber  string          `json:"product_number"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Classification string          `json:"classification"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Cost           decimal.Decimal `json:"cost"`
	Supplier       string          `json:"supplier"`
	Unit           string          `json:"unit"`
	Manufacturer   string          `json:"manufacturer"`
	Type           string          `json:"type"`
	CodeA          string          `json:"code_a"`
	CodeB          string          `json:"code_b"`
	CodeC          string          `json:"code_c"`
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Entry pairs a product with its barcode for search results and listings.
type Entry struct {
	Barcode string  `json:"barcode"`
	Product Product `json:"product"`
}

// MatchesDescription reports whether the product matches a case-insensitive
// substring search over its descriptive fields.
func (p Product) MatchesDescription(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Classification), term) ||
		strings.Contains(strings.ToLower(p.Manufacturer), term) ||
		strings.Contains(strings.ToLower(p.Type), term)
}

// MatchesCode reports whether any of the product's secondary codes equals
// the given code. The barcode key is checked separately by the store.
func (p Product) MatchesCode(code string) bool {
	return p.Code == code ||
		p.ProductNumber == code ||
		p.CodeA == code ||
		p.CodeB == code ||
		p.CodeC == code
}
