// internal/domain/checkout/service.go
package checkout

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/domain/sale"
)

// Service commits the in-progress cart into the sales ledger. The commit is
// a validate-all-then-write-all sequence: every line's stock is re-checked
// read-only before any decrement, so a validation failure leaves inventory
// and cart untouched.
type Service struct {
	inventory *product.Store
	cart      *cart.Service
	ledger    *sale.Ledger
}

// NewService creates a checkout service over the given stores.
func NewService(inventory *product.Store, cartService *cart.Service, ledger *sale.Ledger) *Service {
	return &Service{
		inventory: inventory,
		cart:      cartService,
		ledger:    ledger,
	}
}

// Process validates the cart against payment and stock, decrements stock per
// line in cart order, appends the folio-numbered sale to the ledger and
// clears the cart. On any validation failure the cart stays open unchanged.
// A failure after the first decrement surfaces as a CommitError with no
// rollback of decrements already applied.
func (s *Service) Process(tendered decimal.Decimal) (*sale.Sale, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, &EmptyCartError{}
	}
	if tendered.IsNegative() {
		return nil, &ValidationError{Reason: "tendered amount cannot be negative"}
	}

	// Read-only pass: every line must still be coverable by current stock.
	for _, line := range lines {
		if !s.inventory.HasStock(line.Barcode, line.Quantity) {
			return nil, &product.InsufficientStockError{
				Barcode:   line.Barcode,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: s.inventory.AvailableStock(line.Barcode),
			}
		}
	}

	subtotal := s.cart.Subtotal()
	tax := cart.TaxOn(subtotal)
	total := subtotal.Add(tax)

	if tendered.LessThan(total) {
		return nil, &InsufficientPaymentError{
			Total:     total,
			Tendered:  tendered,
			Shortfall: total.Sub(tendered),
		}
	}

	committed := s.buildSale(lines, subtotal, tax, total, tendered)

	// Write pass. Nothing else can run in the single-register model, but a
	// storage failure here is fatal to this checkout: already-applied
	// decrements are not rolled back.
	for _, line := range lines {
		if err := s.inventory.AdjustStock(line.Barcode, -line.Quantity); err != nil {
			return nil, &CommitError{
				Folio: committed.Folio,
				Err:   fmt.Errorf("stock decrement for %q failed: %w", line.Name, err),
			}
		}
	}

	if err := s.ledger.Append(committed); err != nil {
		return nil, &CommitError{
			Folio: committed.Folio,
			Err:   fmt.Errorf("ledger append failed: %w", err),
		}
	}

	s.cart.Clear()
	return &committed, nil
}

// Cancel discards the in-progress cart. Stock was never decremented before
// commit, so there is nothing to restore.
func (s *Service) Cancel() {
	s.cart.Clear()
}

func (s *Service) buildSale(lines []cart.Line, subtotal, tax, total, tendered decimal.Decimal) sale.Sale {
	saleLines := make([]sale.Line, 0, len(lines))
	pricing := sale.PricingDetail{
		RetailTotal:    decimal.Zero,
		WholesaleTotal: decimal.Zero,
		DiscountTotal:  decimal.Zero,
	}

	for _, line := range lines {
		lineSubtotal := line.Subtotal()
		savings := line.Savings()

		saleLines = append(saleLines, sale.Line{
			Barcode:        line.Barcode,
			Code:           line.Code,
			Name:           line.Name,
			Description:    line.Description,
			Classification: line.Classification,
			RetailPrice:    line.RetailPrice,
			WholesalePrice: line.WholesalePrice,
			AppliedPrice:   line.UnitPrice(),
			Cost:           line.Cost,
			Unit:           line.Unit,
			Quantity:       line.Quantity,
			Subtotal:       lineSubtotal,
			Wholesale:      line.IsWholesale(),
			Savings:        savings,
		})

		if line.IsWholesale() {
			pricing.WholesaleTotal = pricing.WholesaleTotal.Add(lineSubtotal)
			pricing.WholesaleLines++
			pricing.DiscountTotal = pricing.DiscountTotal.Add(savings)
		} else {
			pricing.RetailTotal = pricing.RetailTotal.Add(lineSubtotal)
		}
	}

	return sale.Sale{
		Folio:    s.ledger.NextFolio(),
		Date:     time.Now(),
		Lines:    saleLines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Tendered: tendered,
		Change:   cart.ChangeDue(tendered, total),
		Pricing:  pricing,
	}
}
