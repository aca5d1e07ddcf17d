// internal/domain/product/service_test.go
package product

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(storage.NewJSONFile(filepath.Join(t.TempDir(), "inventory.json")))
	require.NoError(t, err)
	return store
}

func milk() Product {
	return Product{
		Name:           "Milk",
		Description:    "Whole milk 1L",
		Classification: "Dairy",
		RetailPrice:    decimal.NewFromInt(20),
		WholesalePrice: decimal.NewFromInt(16),
		Cost:           decimal.NewFromInt(12),
		Unit:           "pz",
		Manufacturer:   "Lala",
		Type:           "Beverage",
		Stock:          10,
	}
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("7501234567890", milk()))

	p, ok := store.Get("7501234567890")
	require.True(t, ok)
	assert.Equal(t, "Milk", p.Name)
	assert.Equal(t, 10, p.Stock)
	assert.False(t, p.CreatedAt.IsZero())

	err := store.Create("7501234567890", milk())
	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
}

func TestCreateValidation(t *testing.T) {
	store := newTestStore(t)

	var verr *ValidationError

	err := store.Create("", milk())
	require.ErrorAs(t, err, &verr)

	nameless := milk()
	nameless.Name = "  "
	err = store.Create("123", nameless)
	require.ErrorAs(t, err, &verr)

	negative := milk()
	negative.RetailPrice = decimal.NewFromInt(-1)
	err = store.Create("123", negative)
	require.ErrorAs(t, err, &verr)

	badStock := milk()
	badStock.Stock = -5
	err = store.Create("123", badStock)
	require.ErrorAs(t, err, &verr)
}

func TestSearchByDescription(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("001", milk()))

	hammer := Product{
		Name:           "Hammer",
		Description:    "Claw hammer 16oz",
		Classification: "Tools",
		Manufacturer:   "Truper",
		Type:           "Hand tool",
		RetailPrice:    decimal.NewFromInt(150),
		WholesalePrice: decimal.NewFromInt(120),
		Stock:          5,
	}
	require.NoError(t, store.Create("002", hammer))

	// Case-insensitive match against name.
	results := store.SearchByDescription("MILK")
	require.Len(t, results, 1)
	assert.Equal(t, "001", results[0].Barcode)

	// Matches classification, manufacturer and type fields too.
	assert.Len(t, store.SearchByDescription("tools"), 1)
	assert.Len(t, store.SearchByDescription("truper"), 1)
	assert.Len(t, store.SearchByDescription("hand tool"), 1)

	assert.Empty(t, store.SearchByDescription("nonexistent-xyz"))
}

func TestSearchByDescriptionOrder(t *testing.T) {
	store := newTestStore(t)

	for _, barcode := range []string{"300", "100", "200"} {
		screw := milk()
		screw.Name = "Screw " + barcode
		screw.Description = "Wood screw"
		require.NoError(t, store.Create(barcode, screw))
	}

	results := store.SearchByDescription("screw")
	require.Len(t, results, 3)
	// Insertion order, not lexicographic.
	assert.Equal(t, "300", results[0].Barcode)
	assert.Equal(t, "100", results[1].Barcode)
	assert.Equal(t, "200", results[2].Barcode)
}

func TestSearchByCode(t *testing.T) {
	store := newTestStore(t)
	p := milk()
	p.Code = "PROD001"
	p.CodeB = "ALT-9"
	require.NoError(t, store.Create("7501234567890", p))

	entry, ok := store.SearchByCode("7501234567890")
	require.True(t, ok)
	assert.Equal(t, "Milk", entry.Product.Name)

	entry, ok = store.SearchByCode("PROD001")
	require.True(t, ok)
	assert.Equal(t, "7501234567890", entry.Barcode)

	_, ok = store.SearchByCode("ALT-9")
	assert.True(t, ok)

	_, ok = store.SearchByCode("missing")
	assert.False(t, ok)
}

func TestHasStockAndAdjust(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("001", milk()))

	assert.True(t, store.HasStock("001", 10))
	assert.False(t, store.HasStock("001", 11))
	assert.False(t, store.HasStock("missing", 1))
	assert.Equal(t, 10, store.AvailableStock("001"))

	require.NoError(t, store.AdjustStock("001", -6))
	assert.Equal(t, 4, store.AvailableStock("001"))

	// A decrement past zero is rejected and nothing is applied.
	err := store.AdjustStock("001", -5)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 4, store.AvailableStock("001"))

	// Positive deltas add stock back.
	require.NoError(t, store.AdjustStock("001", 2))
	assert.Equal(t, 6, store.AvailableStock("001"))

	err = store.AdjustStock("missing", -1)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPersistenceAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	store, err := NewStore(storage.NewJSONFile(path))
	require.NoError(t, err)
	require.NoError(t, store.Create("001", milk()))
	require.NoError(t, store.AdjustStock("001", -3))

	reloaded, err := NewStore(storage.NewJSONFile(path))
	require.NoError(t, err)
	p, ok := reloaded.Get("001")
	require.True(t, ok)
	assert.Equal(t, 7, p.Stock)
	assert.True(t, p.RetailPrice.Equal(decimal.NewFromInt(20)))
}

func TestUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("001", milk()))

	updated := milk()
	updated.RetailPrice = decimal.NewFromInt(22)
	require.NoError(t, store.Update("001", updated))

	p, _ := store.Get("001")
	assert.True(t, p.RetailPrice.Equal(decimal.NewFromInt(22)))

	require.NoError(t, store.Delete("001"))
	_, ok := store.Get("001")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count())

	var notFound *NotFoundError
	require.ErrorAs(t, store.Delete("001"), &notFound)
	require.ErrorAs(t, store.Update("001", milk()), &notFound)
}
