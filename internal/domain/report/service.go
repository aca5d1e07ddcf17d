// internal/domain/report/service.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/your-org/pos-backend/internal/domain/sale"
)

// Service builds summaries and exports over the committed sales history.
type Service struct {
	ledger *sale.Ledger
}

// NewService creates a report service over the given ledger.
func NewService(ledger *sale.Ledger) *Service {
	return &Service{ledger: ledger}
}

// DailySummary aggregates the sales committed on one calendar day.
type DailySummary struct {
	Date      string          `json:"date"`
	SaleCount int             `json:"sale_count"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
}

// Daily summarizes the sales committed on the given day, matched by the
// sale's local calendar date.
func (s *Service) Daily(day time.Time) DailySummary {
	summary := DailySummary{
		Date:     day.Format("2006-01-02"),
		Total:    decimal.Zero,
		Discount: decimal.Zero,
	}

	for _, committed := range s.ledger.All() {
		if committed.Date.Format("2006-01-02") != summary.Date {
			continue
		}
		summary.SaleCount++
		summary.Total = summary.Total.Add(committed.Total)
		summary.Discount = summary.Discount.Add(committed.Pricing.DiscountTotal)
	}
	return summary
}

// ExportCSV writes the full ledger as one flat CSV row per sale line.
func (s *Service) ExportCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"folio", "date", "product", "description", "quantity", "unit_price", "subtotal", "wholesale"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, committed := range s.ledger.All() {
		for _, line := range committed.Lines {
			wholesale := "NO"
			if line.Wholesale {
				wholesale = "YES"
			}
			row := []string{
				fmt.Sprintf("%d", committed.Folio),
				committed.Date.Format("2006-01-02 15:04:05"),
				line.Name,
				line.Description,
				fmt.Sprintf("%d", line.Quantity),
				line.AppliedPrice.StringFixed(2),
				line.Subtotal.StringFixed(2),
				wholesale,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
