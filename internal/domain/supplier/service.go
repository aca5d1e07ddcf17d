// internal/domain/supplier/service.go
package supplier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
	"github.com/your-org/pos-backend/internal/pkg/validation"
)

// NotFoundError indicates that no supplier exists under the given ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("supplier %q not found", e.ID)
}

// ValidationError indicates a supplier record rejected at the store
// boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Store holds suppliers in memory, keyed by uppercase ID, and rewrites the
// backing JSON file after every mutation.
type Store struct {
	file      *storage.JSONFile
	suppliers map[string]Supplier
}

// NewStore loads suppliers from the backing file.
func NewStore(file *storage.JSONFile) (*Store, error) {
	s := &Store{
		file:      file,
		suppliers: make(map[string]Supplier),
	}
	if err := file.Load(&s.suppliers); err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}
	return s, nil
}

// Get returns the supplier stored under the ID.
func (s *Store) Get(id string) (Supplier, bool) {
	sup, ok := s.suppliers[strings.ToUpper(id)]
	return sup, ok
}

// All returns every supplier ordered by ID.
func (s *Store) All() []Entry {
	keys := make([]string, 0, len(s.suppliers))
	for id := range s.suppliers {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, id := range keys {
		entries = append(entries, Entry{ID: id, Supplier: s.suppliers[id]})
	}
	return entries
}

// Active returns every active supplier ordered by ID.
func (s *Store) Active() []Entry {
	var entries []Entry
	for _, entry := range s.All() {
		if entry.Supplier.Active {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Create registers a new supplier. An empty ID gets a generated one; the
// resulting uppercase ID is returned.
func (s *Store) Create(id string, sup Supplier) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		id = strings.ToUpper(uuid.NewString()[:8])
	}
	if _, exists := s.suppliers[id]; exists {
		return "", &ValidationError{Reason: "supplier ID already exists"}
	}
	if err := validateRecord(sup); err != nil {
		return "", err
	}

	now := time.Now()
	sup.RFC = strings.ToUpper(sup.RFC)
	sup.RegisteredAt = now
	sup.UpdatedAt = now
	sup.Active = true
	s.suppliers[id] = sup
	if err := s.persist(); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the supplier stored under the ID, preserving registration
// time and active state.
func (s *Store) Update(id string, sup Supplier) error {
	id = strings.ToUpper(strings.TrimSpace(id))
	existing, ok := s.suppliers[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	if err := validateRecord(sup); err != nil {
		return err
	}

	sup.RFC = strings.ToUpper(sup.RFC)
	sup.RegisteredAt = existing.RegisteredAt
	sup.Active = existing.Active
	sup.UpdatedAt = time.Now()
	s.suppliers[id] = sup
	return s.persist()
}

// Deactivate marks the supplier inactive without removing its record.
func (s *Store) Deactivate(id string) error {
	return s.setActive(id, false)
}

// Activate marks a previously deactivated supplier active again.
func (s *Store) Activate(id string) error {
	return s.setActive(id, true)
}

// DeletePermanently removes the supplier record entirely.
func (s *Store) DeletePermanently(id string) error {
	id = strings.ToUpper(strings.TrimSpace(id))
	if _, ok := s.suppliers[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.suppliers, id)
	return s.persist()
}

// Search returns suppliers whose ID, alias, business name, RFC or contact
// contains the criterion, case-insensitively. With activeOnly set,
// deactivated suppliers are skipped.
func (s *Store) Search(criterion string, activeOnly bool) []Entry {
	term := strings.ToLower(criterion)
	var results []Entry
	for _, entry := range s.All() {
		sup := entry.Supplier
		if activeOnly && !sup.Active {
			continue
		}
		if strings.Contains(strings.ToLower(entry.ID), term) ||
			strings.Contains(strings.ToLower(sup.Alias), term) ||
			strings.Contains(strings.ToLower(sup.BusinessName), term) ||
			strings.Contains(strings.ToLower(sup.RFC), term) ||
			strings.Contains(strings.ToLower(sup.Contact), term) {
			results = append(results, entry)
		}
	}
	return results
}

// ByPaymentTerms returns active suppliers on the given billing cycle.
func (s *Store) ByPaymentTerms(terms PaymentTerms) []Entry {
	var results []Entry
	for _, entry := range s.Active() {
		if entry.Supplier.PaymentTerms == terms {
			results = append(results, entry)
		}
	}
	return results
}

// Count returns the number of supplier records, active or not.
func (s *Store) Count() int {
	return len(s.suppliers)
}

func (s *Store) setActive(id string, active bool) error {
	id = strings.ToUpper(strings.TrimSpace(id))
	sup, ok := s.suppliers[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	sup.Active = active
	sup.UpdatedAt = time.Now()
	s.suppliers[id] = sup
	return s.persist()
}

func (s *Store) persist() error {
	if err := s.file.Save(s.suppliers); err != nil {
		return fmt.Errorf("failed to save suppliers: %w", err)
	}
	return nil
}

func validateRecord(sup Supplier) error {
	if strings.TrimSpace(sup.Alias) == "" {
		return &ValidationError{Reason: "alias is required"}
	}
	if strings.TrimSpace(sup.BusinessName) == "" {
		return &ValidationError{Reason: "business name is required"}
	}
	if strings.TrimSpace(sup.Phone) == "" {
		return &ValidationError{Reason: "phone is required"}
	}
	if sup.RFC != "" && !validation.IsRFC(sup.RFC) {
		return &ValidationError{Reason: "invalid RFC (leave empty if not applicable)"}
	}
	if sup.Email != "" && !validation.IsEmail(sup.Email) {
		return &ValidationError{Reason: "invalid email address"}
	}
	if !sup.PaymentTerms.Valid() {
		return &ValidationError{Reason: "payment terms must be weekly, biweekly or monthly"}
	}
	return nil
}
