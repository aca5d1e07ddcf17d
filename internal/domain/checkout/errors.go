// internal/domain/checkout/errors.go
package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError indicates a malformed tendered amount.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// EmptyCartError indicates checkout was attempted with no lines in the cart.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

// InsufficientPaymentError indicates the tendered amount does not cover the
// total. Shortfall carries the missing amount for the operator.
type InsufficientPaymentError struct {
	Total     decimal.Decimal
	Tendered  decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: total %s, tendered %s, short %s",
		e.Total.StringFixed(2), e.Tendered.StringFixed(2), e.Shortfall.StringFixed(2))
}

// CommitError indicates a stock decrement or persistence write failed
// partway through a checkout. Decrements already applied are not rolled
// back; the operator must reconcile inventory manually.
type CommitError struct {
	Folio int
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("sale %d did not commit cleanly: %v", e.Folio, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
