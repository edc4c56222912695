package memory

import (
	"context"

	"github.com/aretw0/rentals/pkg/domain"
)

// Loader implements ports.CatalogLoader over records already held in memory.
type Loader struct {
	shops []domain.Shop
}

// NewLoader creates a Loader returning a copy of shops on every Load.
func NewLoader(shops ...domain.Shop) *Loader {
	return &Loader{shops: shops}
}

// Load returns the records in the order they were given.
func (l *Loader) Load(ctx context.Context) ([]domain.Shop, error) {
	out := make([]domain.Shop, len(l.shops))
	for i, s := range l.shops {
		out[i] = s.Clone()
	}
	if err := domain.ValidateCatalog(out); err != nil {
		return nil, err
	}
	return out, nil
}
