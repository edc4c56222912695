package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/rentals/pkg/domain"
)

// Loader adapts a Loam repository of shop documents (one markdown file per shop)
// to the CatalogLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[ShopMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[ShopMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at path and wraps it.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric frontmatter as json.Number; read-only because the
	// catalog is never written by the server.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[ShopMetadata](repo)), nil
}

type ordered struct {
	order int
	shop  domain.Shop
}

// Load lists every document and converts it to a Shop.
// Records are ordered by their "order" key, then by id.
func (l *Loader) Load(ctx context.Context) ([]domain.Shop, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	items := make([]ordered, 0, len(docs))

	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: id '%s' is defined in both '%s' and '%s'", domain.ErrInvalidCatalog, id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		// List only carries frontmatter; the body is fetched when it is needed
		// as the description.
		body := doc.Content
		if doc.Data.Description == "" && body == "" {
			full, err := l.Repo.Get(ctx, doc.ID)
			if err != nil {
				return nil, fmt.Errorf("loam get failed for %s: %w", doc.ID, err)
			}
			body = full.Content
		}

		items = append(items, ordered{
			order: doc.Data.Order,
			shop:  toShop(id, doc.Data, body),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].order != items[j].order {
			return items[i].order < items[j].order
		}
		return items[i].shop.ID < items[j].shop.ID
	})

	shops := make([]domain.Shop, len(items))
	for i, it := range items {
		shops[i] = it.shop
	}
	if err := domain.ValidateCatalog(shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func toShop(id string, meta ShopMetadata, body string) domain.Shop {
	description := meta.Description
	if description == "" {
		description = strings.TrimSpace(body)
	}
	return domain.Shop{
		ID:          id,
		Name:        meta.Name,
		Location:    meta.Location,
		Address:     meta.Address,
		Phone:       meta.Phone,
		Website:     meta.Website,
		Description: description,
		Services:    meta.Services,
		Equipment:   meta.Equipment,
		PriceRange:  meta.PriceRange,
		Hours:       meta.Hours,
	}
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
