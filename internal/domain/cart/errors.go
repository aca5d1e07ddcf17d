// internal/domain/cart/errors.go
package cart

import "fmt"

// ValidationError indicates bad operator input: an empty description or a
// non-positive quantity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ProductNotFoundError indicates that no catalog product matched the search
// text.
type ProductNotFoundError struct {
	Query string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("no products found matching %q", e.Query)
}
