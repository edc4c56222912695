package ports

import (
	"strings"
	"testing"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogStoreContract runs a suite of tests to verify that a CatalogStore
// implementation adheres to the defined interface contract.
// expected must be the records the store was built from, in load order, and must
// not be empty.
func RunCatalogStoreContract(t *testing.T, store CatalogStore, expected []domain.Shop) {
	t.Helper()
	require.NotEmpty(t, expected, "contract needs at least one record")

	t.Run("GetAll keeps load order", func(t *testing.T) {
		all := store.GetAll()
		require.Len(t, all, len(expected))
		for i := range expected {
			assert.Equal(t, expected[i].ID, all[i].ID)
		}
	})

	t.Run("GetAll is not aliased", func(t *testing.T) {
		first := store.GetAll()
		first[0].Name = "mutated"
		if len(first[0].Services) > 0 {
			first[0].Services[0] = "mutated"
		}

		again := store.GetAll()
		assert.Equal(t, expected[0].Name, again[0].Name)
		assert.Equal(t, expected[0].Services, again[0].Services)
	})

	t.Run("GetByID", func(t *testing.T) {
		for _, want := range expected {
			got, err := store.GetByID(want.ID)
			require.NoError(t, err)
			assert.Equal(t, want.ID, got.ID)
		}
	})

	t.Run("GetByID is case-sensitive", func(t *testing.T) {
		id := strings.ToUpper(expected[0].ID)
		if id == expected[0].ID {
			t.Skip("id has no letters to change case")
		}
		_, err := store.GetByID(id)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := store.GetByID("does-not-exist")
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("Search empty query matches all", func(t *testing.T) {
		assert.Len(t, store.Search(""), len(expected))
	})

	t.Run("Search ignores case", func(t *testing.T) {
		name := expected[0].Name
		lower := store.Search(strings.ToLower(name))
		upper := store.Search(strings.ToUpper(name))
		assert.NotEmpty(t, lower)
		assert.Equal(t, lower, upper)
	})

	t.Run("Search no match", func(t *testing.T) {
		got := store.Search("zzz-no-such-shop-zzz")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
