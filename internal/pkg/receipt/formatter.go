// internal/pkg/receipt/formatter.go
package receipt

import (
	"fmt"
	"strings"

	"github.com/your-org/pos-backend/internal/domain/sale"
)

const (
	lineWidth       = 50
	descMaxLen      = 30
	timestampLayout = "2006-01-02 15:04:05"
)

// Format renders a committed sale as a printable text receipt. The layout is
// deterministic for a given sale.
func Format(s sale.Sale) string {
	var b strings.Builder
	heavy := strings.Repeat("=", lineWidth)
	light := strings.Repeat("-", lineWidth)

	b.WriteString(heavy + "\n")
	b.WriteString("SALES RECEIPT\n")
	b.WriteString(heavy + "\n")
	fmt.Fprintf(&b, "Date: %s\n", s.Date.Format(timestampLayout))
	fmt.Fprintf(&b, "Folio: %d\n", s.Folio)
	b.WriteString(light + "\n")
	b.WriteString("ITEMS:\n")
	b.WriteString(light + "\n")

	for _, line := range s.Lines {
		b.WriteString(line.Name + "\n")
		if line.Description != "" {
			fmt.Fprintf(&b, "  Desc: %s\n", truncate(line.Description, descMaxLen))
		}

		fmt.Fprintf(&b, "  %d x $%s", line.Quantity, line.AppliedPrice.StringFixed(2))
		if line.Wholesale && line.RetailPrice.IsPositive() {
			fmt.Fprintf(&b, " (Wholesale) Savings: $%s", line.Savings.StringFixed(2))
		}
		fmt.Fprintf(&b, " = $%s\n", line.Subtotal.StringFixed(2))

		if line.Unit != "" && line.Unit != "pz" {
			fmt.Fprintf(&b, "  Unit: %s\n", line.Unit)
		}
	}

	b.WriteString(light + "\n")
	if s.Pricing.DiscountTotal.IsPositive() {
		fmt.Fprintf(&b, "Wholesale discount: $%s\n", s.Pricing.DiscountTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Subtotal: $%s\n", s.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Tax (16%%): $%s\n", s.Tax.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL: $%s\n", s.Total.StringFixed(2))
	fmt.Fprintf(&b, "Tendered: $%s\n", s.Tendered.StringFixed(2))
	fmt.Fprintf(&b, "Change: $%s\n", s.Change.StringFixed(2))
	b.WriteString(heavy + "\n")
	b.WriteString("THANK YOU FOR YOUR PURCHASE!\n")
	b.WriteString(heavy + "\n")

	return b.String()
}

// truncate shortens s to max characters, counting runes so accented
// descriptions never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
