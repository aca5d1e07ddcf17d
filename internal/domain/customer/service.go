// internal/domain/customer/service.go
package customer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
	"github.com/your-org/pos-backend/internal/pkg/validation"
)

// NotFoundError indicates that no customer exists under the given RFC.
type NotFoundError struct {
	RFC string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer %q not found", e.RFC)
}

// ValidationError indicates a customer record rejected at the store
// boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Store holds customers in memory, keyed by uppercase RFC, and rewrites the
// backing JSON file after every mutation.
type Store struct {
	file      *storage.JSONFile
	customers map[string]Customer
}

// NewStore loads customers from the backing file.
func NewStore(file *storage.JSONFile) (*Store, error) {
	s := &Store{
		file:      file,
		customers: make(map[string]Customer),
	}
	if err := file.Load(&s.customers); err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return s, nil
}

// Get returns the customer stored under the RFC.
func (s *Store) Get(rfc string) (Customer, bool) {
	c, ok := s.customers[strings.ToUpper(rfc)]
	return c, ok
}

// All returns every customer ordered by RFC.
func (s *Store) All() []Entry {
	keys := make([]string, 0, len(s.customers))
	for rfc := range s.customers {
		keys = append(keys, rfc)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, rfc := range keys {
		entries = append(entries, Entry{RFC: rfc, Customer: s.customers[rfc]})
	}
	return entries
}

// Create registers a new customer under its RFC.
func (s *Store) Create(rfc string, c Customer) error {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	if !validation.IsRFC(rfc) {
		return &ValidationError{Reason: "invalid RFC"}
	}
	if _, exists := s.customers[rfc]; exists {
		return &ValidationError{Reason: "a customer with this RFC already exists"}
	}
	if err := validateRecord(c); err != nil {
		return err
	}

	now := time.Now()
	c.RegisteredAt = now
	c.UpdatedAt = now
	s.customers[rfc] = c
	return s.persist()
}

// Update replaces the customer stored under the RFC, preserving the
// registration timestamp.
func (s *Store) Update(rfc string, c Customer) error {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	existing, ok := s.customers[rfc]
	if !ok {
		return &NotFoundError{RFC: rfc}
	}
	if err := validateRecord(c); err != nil {
		return err
	}

	c.RegisteredAt = existing.RegisteredAt
	c.UpdatedAt = time.Now()
	s.customers[rfc] = c
	return s.persist()
}

// Delete removes the customer stored under the RFC.
func (s *Store) Delete(rfc string) error {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	if _, ok := s.customers[rfc]; !ok {
		return &NotFoundError{RFC: rfc}
	}
	delete(s.customers, rfc)
	return s.persist()
}

// Search returns customers whose RFC, business name, email or phone contains
// the criterion, case-insensitively, ordered by RFC.
func (s *Store) Search(criterion string) []Entry {
	term := strings.ToLower(criterion)
	var results []Entry
	for _, entry := range s.All() {
		c := entry.Customer
		if strings.Contains(strings.ToLower(entry.RFC), term) ||
			strings.Contains(strings.ToLower(c.BusinessName), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) {
			results = append(results, entry)
		}
	}
	return results
}

// Count returns the number of registered customers.
func (s *Store) Count() int {
	return len(s.customers)
}

func (s *Store) persist() error {
	if err := s.file.Save(s.customers); err != nil {
		return fmt.Errorf("failed to save customers: %w", err)
	}
	return nil
}

func validateRecord(c Customer) error {
	if strings.TrimSpace(c.BusinessName) == "" {
		return &ValidationError{Reason: "business name is required"}
	}
	if !validation.IsEmail(c.Email) {
		return &ValidationError{Reason: "invalid email address"}
	}
	if strings.TrimSpace(c.Phone) == "" {
		return &ValidationError{Reason: "phone is required"}
	}
	if strings.TrimSpace(c.PostalCode) == "" {
		return &ValidationError{Reason: "postal code is required"}
	}
	return nil
}
