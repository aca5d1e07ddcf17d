// internal/domain/product/errors.go
package product

import "fmt"

// NotFoundError indicates that no product exists under the given barcode.
type NotFoundError struct {
	Barcode string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.Barcode)
}

// AlreadyExistsError indicates a create attempt for an occupied barcode.
type AlreadyExistsError struct {
	Barcode string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("product %q already exists", e.Barcode)
}

// ValidationError indicates a product record rejected at the store boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InsufficientStockError indicates that a requested quantity exceeds the
// available stock. Available carries the current count so callers can report
// it to the operator.
type InsufficientStockError struct {
	Barcode   string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}
