// Package catalog holds the compiled-in rental shop dataset.
package catalog

import (
	"context"
	_ "embed"

	"github.com/aretw0/rentals/pkg/adapters/file"
	"github.com/aretw0/rentals/pkg/domain"
)

//go:embed shops.yaml
var shopsYAML []byte

// Default returns a fresh copy of the built-in records, in catalog order.
// It panics if the embedded document is invalid, which a unit test guards.
func Default() []domain.Shop {
	shops, err := file.Parse(shopsYAML, file.FormatYAML)
	if err != nil {
		panic("catalog: invalid embedded dataset: " + err.Error())
	}
	return shops
}

// Loader implements ports.CatalogLoader for the built-in dataset.
type Loader struct{}

// NewLoader returns the built-in dataset loader.
func NewLoader() Loader {
	return Loader{}
}

// Load parses the embedded dataset.
func (Loader) Load(ctx context.Context) ([]domain.Shop, error) {
	return file.Parse(shopsYAML, file.FormatYAML)
}
