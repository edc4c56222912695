package tests

import (
	"context"
	"testing"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/ports"
)

// CatalogLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.CatalogLoader.
func CatalogLoaderContractTest(t *testing.T, loader ports.CatalogLoader, expected []domain.Shop) {
	t.Helper()

	// 1. Test Load (Success)
	t.Run("Load_Success", func(t *testing.T) {
		shops, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading catalog: %v", err)
		}
		if len(shops) != len(expected) {
			t.Fatalf("expected %d records, got %d", len(expected), len(shops))
		}
		for i, want := range expected {
			got := shops[i]
			if got.ID != want.ID {
				t.Errorf("record %d: got id %q, want %q", i, got.ID, want.ID)
			}
			if got.Name != want.Name {
				t.Errorf("record %s: got name %q, want %q", want.ID, got.Name, want.Name)
			}
			if len(got.Services) != len(want.Services) || len(got.Equipment) != len(want.Equipment) {
				t.Errorf("record %s: tag mismatch. got %v/%v, want %v/%v",
					want.ID, got.Services, got.Equipment, want.Services, want.Equipment)
			}
		}
	})

	// 2. Test Load (Idempotent)
	t.Run("Load_Idempotent", func(t *testing.T) {
		first, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading catalog: %v", err)
		}
		second, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading catalog: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("loads disagree: %d vs %d records", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Errorf("record %d: order changed between loads (%s vs %s)", i, first[i].ID, second[i].ID)
			}
		}
	})
}
