// internal/domain/cart/service_test.go
package cart

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-backend/internal/domain/product"
	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

func newTestInventory(t *testing.T) *product.Store {
	t.Helper()
	store, err := product.NewStore(storage.NewJSONFile(filepath.Join(t.TempDir(), "inventory.json")))
	require.NoError(t, err)

	require.NoError(t, store.Create("7501234567890", product.Product{
		Name:           "Milk",
		Description:    "Whole milk 1L",
		Classification: "Dairy",
		RetailPrice:    decimal.NewFromInt(20),
		WholesalePrice: decimal.NewFromInt(16),
		Unit:           "pz",
		Stock:          10,
	}))
	require.NoError(t, store.Create("7500000000001", product.Product{
		Name:           "Hammer",
		Description:    "Claw hammer 16oz",
		Classification: "Tools",
		RetailPrice:    decimal.NewFromInt(150),
		WholesalePrice: decimal.NewFromInt(120),
		Unit:           "pz",
		Stock:          3,
	}))
	return store
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddByDescriptionRetailPricing(t *testing.T) {
	cart := NewService(newTestInventory(t))

	line, err := cart.AddByDescription("milk", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.False(t, line.IsWholesale())
	assert.True(t, line.UnitPrice().Equal(amount("20")))
	assert.True(t, line.Subtotal().Equal(amount("40")))
	assert.True(t, cart.Subtotal().Equal(amount("40")))
}

func TestAddByDescriptionWholesalePricing(t *testing.T) {
	cart := NewService(newTestInventory(t))

	line, err := cart.AddByDescription("milk", 6)
	require.NoError(t, err)
	assert.True(t, line.IsWholesale())
	assert.True(t, line.UnitPrice().Equal(amount("16")))
	assert.True(t, line.Subtotal().Equal(amount("96")))
	assert.True(t, line.Savings().Equal(amount("24")))
}

func TestMergeCrossesWholesaleThreshold(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("milk", 4)
	require.NoError(t, err)
	line, err := cart.AddByDescription("milk", 3)
	require.NoError(t, err)

	// One line of 7 priced wholesale as a whole, not two separately priced adds.
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, line.Quantity)
	assert.True(t, line.UnitPrice().Equal(amount("16")))
	assert.True(t, cart.Subtotal().Equal(amount("112")))
}

func TestAddValidation(t *testing.T) {
	cart := NewService(newTestInventory(t))

	var verr *ValidationError
	_, err := cart.AddByDescription("  ", 1)
	require.ErrorAs(t, err, &verr)

	_, err = cart.AddByDescription("milk", 0)
	require.ErrorAs(t, err, &verr)

	_, err = cart.AddByDescription("milk", -2)
	require.ErrorAs(t, err, &verr)

	assert.True(t, cart.IsEmpty())
}

func TestAddUnknownProduct(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("nonexistent-xyz", 1)
	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nonexistent-xyz", notFound.Query)
	assert.True(t, cart.IsEmpty())
}

func TestAddInsufficientStock(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("hammer", 4)
	var stockErr *product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.True(t, cart.IsEmpty())
}

func TestMergeInsufficientStockLeavesLineUnchanged(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("hammer", 2)
	require.NoError(t, err)

	_, err = cart.AddByDescription("hammer", 2)
	var stockErr *product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 4, stockErr.Requested)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	cart := NewService(newTestInventory(t))

	line, err := cart.AddByDescription("milk", 2)
	require.NoError(t, err)

	assert.True(t, cart.Remove(line.Barcode))
	assert.True(t, cart.IsEmpty())
	// Removing an absent line is a no-op.
	assert.False(t, cart.Remove(line.Barcode))
}

func TestRemoveByDescription(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("milk", 2)
	require.NoError(t, err)
	_, err = cart.AddByDescription("hammer", 1)
	require.NoError(t, err)

	removed, err := cart.RemoveByDescription("claw")
	require.NoError(t, err)
	assert.Equal(t, "Hammer", removed.Name)
	require.Len(t, cart.Lines(), 1)

	_, err = cart.RemoveByDescription("claw")
	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTotals(t *testing.T) {
	cart := NewService(newTestInventory(t))

	_, err := cart.AddByDescription("milk", 6)
	require.NoError(t, err)

	assert.True(t, cart.Subtotal().Equal(amount("96")))
	assert.True(t, cart.Tax().Equal(amount("15.36")))
	assert.True(t, cart.Total().Equal(amount("111.36")))
	assert.True(t, cart.Discount().Equal(amount("24")))

	// total = subtotal + tax exactly.
	assert.True(t, cart.Subtotal().Add(cart.Tax()).Equal(cart.Total()))
}

func TestChangeDue(t *testing.T) {
	assert.True(t, ChangeDue(amount("120"), amount("111.36")).Equal(amount("8.64")))
	assert.True(t, ChangeDue(amount("50"), amount("69.6")).Equal(decimal.Zero))
	assert.True(t, ChangeDue(amount("100"), amount("100")).Equal(decimal.Zero))
}

func TestSnapshotIsolation(t *testing.T) {
	inventory := newTestInventory(t)
	cart := NewService(inventory)

	line, err := cart.AddByDescription("milk", 2)
	require.NoError(t, err)

	// Editing the product after the add does not change the in-progress sale.
	edited, _ := inventory.Get(line.Barcode)
	edited.RetailPrice = decimal.NewFromInt(99)
	require.NoError(t, inventory.Update(line.Barcode, edited))

	lines := cart.Lines()
	assert.True(t, lines[0].UnitPrice().Equal(amount("20")))
}

func TestClear(t *testing.T) {
	cart := NewService(newTestInventory(t))
	_, err := cart.AddByDescription("milk", 2)
	require.NoError(t, err)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().Equal(decimal.Zero))
}
