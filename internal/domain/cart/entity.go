// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/your-org/pos-backend/internal/domain/product"
)

// WholesaleThreshold is the line quantity at or above which the wholesale
// price applies to every unit in the line, not just the units past the
// threshold.
const WholesaleThreshold = 6

// TaxRate is the fixed tax applied to the cart subtotal.
var TaxRate = decimal.RequireFromString("0.16")

// Line is a product snapshot taken at add time paired with a quantity.
// Inventory edits made after the snapshot do not affect an in-progress sale.
type Line struct {
	Barcode        string          `json:"barcode"`
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
	Quantity       int             `json:"quantity"`
}

// NewLine snapshots a product into a cart line.
func NewLine(barcode string, p product.Product, quantity int) Line {
	return Line{
		Barcode:        barcode,
		Code:           p.Code,
		ProductNumber:  p.ProductNumber,
		Name:           p.Name,
		Description:    p.Description,
		Classification: p.Classification,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Cost:           p.Cost,
		Supplier:       p.Supplier,
		Unit:           p.Unit,
		Manufacturer:   p.Manufacturer,
		Type:           p.Type,
		Quantity:       quantity,
	}
}

// IsWholesale reports whether the line quantity reaches the wholesale
// threshold.
func (l Line) IsWholesale() bool {
	return l.Quantity >= WholesaleThreshold
}

// UnitPrice resolves the price per unit from the line quantity: wholesale at
// or above the threshold, retail below it.
func (l Line) UnitPrice() decimal.Decimal {
	if l.IsWholesale() {
		return l.WholesalePrice
	}
	return l.RetailPrice
}

// Subtotal is the resolved unit price times the quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Savings is what the customer saves against retail pricing on this line.
// Zero for retail-priced lines.
func (l Line) Savings() decimal.Decimal {
	if !l.IsWholesale() {
		return decimal.Zero
	}
	return l.RetailPrice.Sub(l.WholesalePrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
}
