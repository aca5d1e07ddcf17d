// internal/domain/cart/service.go
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/your-org/pos-backend/internal/domain/product"
)

// Service holds the single in-progress sale. Lines are owned exclusively by
// the service and live from the first add until checkout or cancel. Stock is
// never touched here; the register reserves it only logically until commit.
type Service struct {
	inventory *product.Store
	lines     []Line
}

// NewService creates a cart over the given inventory.
func NewService(inventory *product.Store) *Service {
	return &Service{inventory: inventory}
}

// AddByDescription resolves the description against the inventory and adds
// the first match to the cart. If a line for that product already exists the
// quantities are merged and the unit price re-resolves against the combined
// quantity; a failed stock check leaves the existing line unchanged.
func (s *Service) AddByDescription(description string, quantity int) (Line, error) {
	if strings.TrimSpace(description) == "" {
		return Line{}, &ValidationError{Reason: "description cannot be empty"}
	}
	if quantity <= 0 {
		return Line{}, &ValidationError{Reason: "quantity must be greater than zero"}
	}

	matches := s.inventory.SearchByDescription(description)
	if len(matches) == 0 {
		return Line{}, &ProductNotFoundError{Query: description}
	}

	// Multiple matches silently resolve to the first hit. A picker UI would
	// surface the candidate list instead.
	entry := matches[0]

	for i := range s.lines {
		if s.lines[i].Barcode != entry.Barcode {
			continue
		}

		newQuantity := s.lines[i].Quantity + quantity
		if !s.inventory.HasStock(entry.Barcode, newQuantity) {
			return Line{}, &product.InsufficientStockError{
				Barcode:   entry.Barcode,
				Name:      entry.Product.Name,
				Requested: newQuantity,
				Available: s.inventory.AvailableStock(entry.Barcode),
			}
		}

		s.lines[i].Quantity = newQuantity
		return s.lines[i], nil
	}

	if !s.inventory.HasStock(entry.Barcode, quantity) {
		return Line{}, &product.InsufficientStockError{
			Barcode:   entry.Barcode,
			Name:      entry.Product.Name,
			Requested: quantity,
			Available: s.inventory.AvailableStock(entry.Barcode),
		}
	}

	line := NewLine(entry.Barcode, entry.Product, quantity)
	s.lines = append(s.lines, line)
	return line, nil
}

// Remove deletes the line for the barcode. It reports whether a line was
// removed; removing an absent line is a no-op, not an error.
func (s *Service) Remove(barcode string) bool {
	for i := range s.lines {
		if s.lines[i].Barcode == barcode {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByDescription deletes the first line whose name or description
// contains the text, case-insensitively, and returns the removed line.
func (s *Service) RemoveByDescription(description string) (Line, error) {
	term := strings.ToLower(description)
	for i := range s.lines {
		if strings.Contains(strings.ToLower(s.lines[i].Description), term) ||
			strings.Contains(strings.ToLower(s.lines[i].Name), term) {
			removed := s.lines[i]
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return removed, nil
		}
	}
	return Line{}, &ProductNotFoundError{Query: description}
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Service) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty() bool {
	return len(s.lines) == 0
}

// Subtotal sums every line subtotal.
func (s *Service) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range s.lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	return subtotal
}

// Tax is the fixed-rate tax on the current subtotal.
func (s *Service) Tax() decimal.Decimal {
	return TaxOn(s.Subtotal())
}

// Total is subtotal plus tax.
func (s *Service) Total() decimal.Decimal {
	subtotal := s.Subtotal()
	return subtotal.Add(TaxOn(subtotal))
}

// Discount is the aggregate wholesale saving across all lines: what retail
// pricing would have charged minus what is actually charged.
func (s *Service) Discount() decimal.Decimal {
	discount := decimal.Zero
	for _, line := range s.lines {
		discount = discount.Add(line.Savings())
	}
	return discount
}

// Clear discards all lines with no side effects on inventory.
func (s *Service) Clear() {
	s.lines = nil
}

// TaxOn computes the fixed-rate tax on a subtotal.
func TaxOn(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// ChangeDue is the cash returned to the customer, never negative. A
// shortfall is rejected at checkout, not floored here.
func ChangeDue(tendered, total decimal.Decimal) decimal.Decimal {
	change := tendered.Sub(total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}
