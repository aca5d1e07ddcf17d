// internal/domain/product/service.go
package product

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

// Store holds the product catalog in memory, keyed by barcode, and rewrites
// the backing JSON file after every mutation.
type Store struct {
	file     *storage.JSONFile
	products map[string]Product
	order    []string
}

// NewStore loads the catalog from the backing file. Barcodes are ordered
// lexicographically at load time; products created afterwards keep insertion
// order, so listings and searches stay deterministic.
func NewStore(file *storage.JSONFile) (*Store, error) {
	s := &Store{
		file:     file,
		products: make(map[string]Product),
	}
	if err := file.Load(&s.products); err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	s.order = make([]string, 0, len(s.products))
	for barcode := range s.products {
		s.order = append(s.order, barcode)
	}
	sort.Strings(s.order)

	return s, nil
}

// Get returns the product stored under the barcode.
func (s *Store) Get(barcode string) (Product, bool) {
	p, ok := s.products[barcode]
	return p, ok
}

// All returns every product in store order.
func (s *Store) All() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, barcode := range s.order {
		entries = append(entries, Entry{Barcode: barcode, Product: s.products[barcode]})
	}
	return entries
}

// Count returns the number of products in the catalog.
func (s *Store) Count() int {
	return len(s.products)
}

// Create adds a new product under the barcode and persists the catalog.
func (s *Store) Create(barcode string, p Product) error {
	barcode = strings.TrimSpace(barcode)
	if err := validateRecord(barcode, p); err != nil {
		return err
	}
	if _, exists := s.products[barcode]; exists {
		return &AlreadyExistsError{Barcode: barcode}
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Unit == "" {
		p.Unit = "pz"
	}

	s.products[barcode] = p
	s.order = append(s.order, barcode)
	return s.persist()
}

// Update replaces the product stored under the barcode and persists the
// catalog. The original creation timestamp is preserved.
func (s *Store) Update(barcode string, p Product) error {
	existing, ok := s.products[barcode]
	if !ok {
		return &NotFoundError{Barcode: barcode}
	}
	if err := validateRecord(barcode, p); err != nil {
		return err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if p.Unit == "" {
		p.Unit = "pz"
	}

	s.products[barcode] = p
	return s.persist()
}

// Delete removes the product stored under the barcode and persists the
// catalog.
func (s *Store) Delete(barcode string) error {
	if _, ok := s.products[barcode]; !ok {
		return &NotFoundError{Barcode: barcode}
	}

	delete(s.products, barcode)
	for i, b := range s.order {
		if b == barcode {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.persist()
}

// SearchByDescription returns every product whose descriptive fields contain
// the term, case-insensitively, in store order. The register's auto-add path
// uses the first match.
func (s *Store) SearchByDescription(term string) []Entry {
	var results []Entry
	for _, barcode := range s.order {
		p := s.products[barcode]
		if p.MatchesDescription(term) {
			results = append(results, Entry{Barcode: barcode, Product: p})
		}
	}
	return results
}

// SearchByCode looks a product up by barcode first, then by any of its
// secondary codes.
func (s *Store) SearchByCode(code string) (Entry, bool) {
	if p, ok := s.products[code]; ok {
		return Entry{Barcode: code, Product: p}, true
	}
	for _, barcode := range s.order {
		p := s.products[barcode]
		if p.MatchesCode(code) {
			return Entry{Barcode: barcode, Product: p}, true
		}
	}
	return Entry{}, false
}

// HasStock reports whether the product exists and has at least qty units.
func (s *Store) HasStock(barcode string, qty int) bool {
	p, ok := s.products[barcode]
	return ok && p.Stock >= qty
}

// AvailableStock returns the current stock count, or zero when the barcode
// is unknown.
func (s *Store) AvailableStock(barcode string) int {
	return s.products[barcode].Stock
}

// AdjustStock applies a delta to the product's stock and persists the
// catalog. Negative deltas decrement; a delta that would drive stock below
// zero is rejected before anything is applied, so stock never goes negative
// even if the caller skipped HasStock.
func (s *Store) AdjustStock(barcode string, delta int) error {
	p, ok := s.products[barcode]
	if !ok {
		return &NotFoundError{Barcode: barcode}
	}

	next := p.Stock + delta
	if next < 0 {
		return &InsufficientStockError{
			Barcode:   barcode,
			Name:      p.Name,
			Requested: -delta,
			Available: p.Stock,
		}
	}

	p.Stock = next
	p.UpdatedAt = time.Now()
	s.products[barcode] = p
	return s.persist()
}

// Import merges the given records into the catalog, overwriting records for
// barcodes that already exist, and persists once.
func (s *Store) Import(records map[string]Product) (int, error) {
	for barcode, p := range records {
		if _, exists := s.products[barcode]; !exists {
			s.order = append(s.order, barcode)
		}
		s.products[barcode] = p
	}
	if err := s.persist(); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *Store) persist() error {
	if err := s.file.Save(s.products); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}

func validateRecord(barcode string, p Product) error {
	if barcode == "" {
		return &ValidationError{Reason: "barcode is required"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Reason: "product name is required"}
	}
	if p.RetailPrice.IsNegative() || p.WholesalePrice.IsNegative() || p.Cost.IsNegative() {
		return &ValidationError{Reason: "prices cannot be negative"}
	}
	if p.Stock < 0 {
		return &ValidationError{Reason: "stock cannot be negative"}
	}
	return nil
}
