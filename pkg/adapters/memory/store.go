package memory

import (
	"strings"

	"github.com/aretw0/rentals/pkg/domain"
)

// Store implements ports.CatalogStore over a frozen slice of records.
// It is never written after NewStore returns, so concurrent reads need no locking.
type Store struct {
	shops []domain.Shop
	index map[string]int
	// search holds the lower-cased haystack of each record, aligned with shops.
	search [][]string
}

// NewStore freezes shops into a read-only store.
// The input is deep-copied; later changes to it do not leak into the store.
func NewStore(shops []domain.Shop) (*Store, error) {
	if err := domain.ValidateCatalog(shops); err != nil {
		return nil, err
	}

	s := &Store{
		shops:  make([]domain.Shop, len(shops)),
		index:  make(map[string]int, len(shops)),
		search: make([][]string, len(shops)),
	}
	for i, shop := range shops {
		s.shops[i] = shop.Clone()
		s.index[shop.ID] = i
		s.search[i] = haystack(shop)
	}
	return s, nil
}

// MustNewStore is like NewStore but panics on an invalid catalog.
// Intended for compiled-in datasets and tests.
func MustNewStore(shops []domain.Shop) *Store {
	s, err := NewStore(shops)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.shops)
}

// GetAll returns a copy of every record in load order.
func (s *Store) GetAll() []domain.Shop {
	out := make([]domain.Shop, len(s.shops))
	for i, shop := range s.shops {
		out[i] = shop.Clone()
	}
	return out
}

// GetByID returns the record with exactly this id.
func (s *Store) GetByID(id string) (domain.Shop, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Shop{}, &domain.NotFoundError{ID: id}
	}
	return s.shops[i].Clone(), nil
}

// Search returns every record with a field or tag containing query, ignoring case.
func (s *Store) Search(query string) []domain.Shop {
	q := strings.ToLower(query)
	out := make([]domain.Shop, 0)
	for i, fields := range s.search {
		for _, f := range fields {
			if strings.Contains(f, q) {
				out = append(out, s.shops[i].Clone())
				break
			}
		}
	}
	return out
}

func haystack(shop domain.Shop) []string {
	fields := make([]string, 0, 3+len(shop.Services)+len(shop.Equipment))
	fields = append(fields,
		strings.ToLower(shop.Name),
		strings.ToLower(shop.Location),
		strings.ToLower(shop.Description),
	)
	for _, t := range shop.Services {
		fields = append(fields, strings.ToLower(t))
	}
	for _, t := range shop.Equipment {
		fields = append(fields, strings.ToLower(t))
	}
	return fields
}
