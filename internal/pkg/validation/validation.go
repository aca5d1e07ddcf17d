// internal/pkg/validation/validation.go
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// RFC format used by the Mexican tax registry: 3-4 letters, 6 digit date, 3 char homoclave.
var rfcPattern = regexp.MustCompile(`^[A-Z&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

// IsEmail reports whether the value is a well-formed email address.
func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsRFC reports whether the value is a well-formed RFC tax identifier.
func IsRFC(rfc string) bool {
	return rfcPattern.MatchString(strings.ToUpper(strings.TrimSpace(rfc)))
}

// ParseQuantity parses a positive integer quantity from user input.
func ParseQuantity(value string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("quantity must be a whole number")
	}
	if qty <= 0 {
		return 0, fmt.Errorf("quantity must be greater than zero")
	}
	return qty, nil
}

// ParseAmount parses a non-negative money amount from user input.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	return amount, nil
}

// FormatCurrency renders an amount as a currency string with thousands
// separators, e.g. $1,234.50.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := "$" + grouped.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
