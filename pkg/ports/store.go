package ports

import "github.com/aretw0/rentals/pkg/domain"

// CatalogStore defines read-only access to the loaded catalog.
// Implementations must be safe for concurrent readers; there are no writers.
type CatalogStore interface {
	// GetAll returns every record in load order.
	GetAll() []domain.Shop

	// GetByID returns the record with the exact (case-sensitive) id.
	// Returns domain.ErrRecordNotFound if no record matches.
	GetByID(id string) (domain.Shop, error)

	// Search returns the records whose name, location, description or any
	// service/equipment tag contains query, ignoring case. Store order is kept.
	// An empty query matches every record.
	Search(query string) []domain.Shop
}
