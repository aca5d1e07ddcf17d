// internal/domain/sale/ledger.go
package sale

import (
	"fmt"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

// Ledger is the append-only history of committed sales, persisted as a
// whole-file JSON array after every append.
type Ledger struct {
	file      *storage.JSONFile
	sales     []Sale
	nextFolio int
}

// NewLedger loads the sales history from the backing file. The next folio is
// seeded from the highest folio on record plus one, so folios are never
// reused even if sales were removed from the file out-of-band.
func NewLedger(file *storage.JSONFile) (*Ledger, error) {
	l := &Ledger{file: file}
	if err := file.Load(&l.sales); err != nil {
		return nil, fmt.Errorf("failed to load sales history: %w", err)
	}

	l.nextFolio = 1
	for _, s := range l.sales {
		if s.Folio >= l.nextFolio {
			l.nextFolio = s.Folio + 1
		}
	}
	return l, nil
}

// NextFolio returns the folio the next committed sale will receive.
func (l *Ledger) NextFolio() int {
	return l.nextFolio
}

// Append adds the sale to the end of the ledger and persists the full
// history. The folio counter advances only on a successful write.
func (l *Ledger) Append(s Sale) error {
	l.sales = append(l.sales, s)
	if err := l.file.Save(l.sales); err != nil {
		l.sales = l.sales[:len(l.sales)-1]
		return fmt.Errorf("failed to save sales history: %w", err)
	}
	if s.Folio >= l.nextFolio {
		l.nextFolio = s.Folio + 1
	}
	return nil
}

// ByFolio looks a sale up by its folio number.
func (l *Ledger) ByFolio(folio int) (Sale, bool) {
	for _, s := range l.sales {
		if s.Folio == folio {
			return s, true
		}
	}
	return Sale{}, false
}

// SearchByDescription returns every sale containing at least one line whose
// name or description contains the term, in ledger order.
func (l *Ledger) SearchByDescription(term string) []Sale {
	var results []Sale
	for _, s := range l.sales {
		if s.ContainsDescription(term) {
			results = append(results, s)
		}
	}
	return results
}

// All returns the full history in ledger order, oldest first.
func (l *Ledger) All() []Sale {
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Len returns the number of committed sales.
func (l *Ledger) Len() int {
	return len(l.sales)
}
