package ports

import (
	"context"

	"github.com/aretw0/rentals/pkg/domain"
)

// CatalogLoader defines how the server retrieves its record set.
// It is called once at startup; the result is frozen into a CatalogStore.
type CatalogLoader interface {
	// Load returns the records in their canonical order.
	Load(ctx context.Context) ([]domain.Shop, error)
}
