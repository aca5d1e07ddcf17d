// internal/domain/supplier/service_test.go
package supplier

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-backend/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(storage.NewJSONFile(filepath.Join(t.TempDir(), "suppliers.json")))
	require.NoError(t, err)
	return store
}

func validSupplier() Supplier {
	return Supplier{
		Alias:        "Truper",
		RFC:          "TRU850101AB1",
		BusinessName: "Truper Herramientas SA de CV",
		Contact:      "Juan Perez",
		Phone:        "5512345678",
		PaymentTerms: PaymentMonthly,
	}
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("prov-01", validSupplier())
	require.NoError(t, err)
	assert.Equal(t, "PROV-01", id)

	sup, ok := store.Get("prov-01")
	require.True(t, ok)
	assert.True(t, sup.Active)
	assert.Equal(t, "Truper", sup.Alias)
}

func TestCreateGeneratesID(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("", validSupplier())
	require.NoError(t, err)
	assert.Len(t, id, 8)

	_, ok := store.Get(id)
	assert.True(t, ok)
}

func TestCreateValidation(t *testing.T) {
	store := newTestStore(t)
	var verr *ValidationError

	noAlias := validSupplier()
	noAlias.Alias = " "
	_, err := store.Create("A", noAlias)
	require.ErrorAs(t, err, &verr)

	badRFC := validSupplier()
	badRFC.RFC = "nope"
	_, err = store.Create("A", badRFC)
	require.ErrorAs(t, err, &verr)

	// Empty RFC is allowed.
	noRFC := validSupplier()
	noRFC.RFC = ""
	_, err = store.Create("A", noRFC)
	require.NoError(t, err)

	badTerms := validSupplier()
	badTerms.PaymentTerms = "yearly"
	_, err = store.Create("B", badTerms)
	require.ErrorAs(t, err, &verr)

	badEmail := validSupplier()
	badEmail.Email = "not-an-email"
	_, err = store.Create("B", badEmail)
	require.ErrorAs(t, err, &verr)

	_, err = store.Create("A", validSupplier())
	require.ErrorAs(t, err, &verr)
}

func TestDeactivateActivate(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create("PROV-01", validSupplier())
	require.NoError(t, err)

	require.NoError(t, store.Deactivate("PROV-01"))
	sup, _ := store.Get("PROV-01")
	assert.False(t, sup.Active)
	assert.Empty(t, store.Active())
	assert.Equal(t, 1, store.Count())

	// Deactivated suppliers are excluded from active-only search.
	assert.Empty(t, store.Search("truper", true))
	assert.Len(t, store.Search("truper", false), 1)

	require.NoError(t, store.Activate("PROV-01"))
	assert.Len(t, store.Active(), 1)
}

func TestByPaymentTerms(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create("M1", validSupplier())
	require.NoError(t, err)

	weekly := validSupplier()
	weekly.Alias = "Cemex"
	weekly.PaymentTerms = PaymentWeekly
	_, err = store.Create("W1", weekly)
	require.NoError(t, err)

	results := store.ByPaymentTerms(PaymentWeekly)
	require.Len(t, results, 1)
	assert.Equal(t, "W1", results[0].ID)
}

func TestDeletePermanentlyAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.json")
	store, err := NewStore(storage.NewJSONFile(path))
	require.NoError(t, err)

	_, err = store.Create("PROV-01", validSupplier())
	require.NoError(t, err)

	reloaded, err := NewStore(storage.NewJSONFile(path))
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Count())

	require.NoError(t, reloaded.DeletePermanently("PROV-01"))
	var notFound *NotFoundError
	require.ErrorAs(t, reloaded.DeletePermanently("PROV-01"), &notFound)
}
