package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/rentals/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list holding one JSON document per shop, encoded the
// same way the tools return it (camelCase priceRange).
const DefaultKey = "rentals:catalog"

// Catalog implements ports.CatalogLoader over a Redis list and can publish to it.
type Catalog struct {
	client *backend.Client
	key    string
}

type Option func(*Catalog)

// WithKey sets the list key.
func WithKey(key string) Option {
	return func(c *Catalog) {
		if key != "" {
			c.key = key
		}
	}
}

// New creates a catalog backed by a new client.
func New(address, password string, db int, opts ...Option) *Catalog {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a catalog from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Catalog {
	c := &Catalog{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the list key in use.
func (c *Catalog) Key() string {
	return c.key
}

// Load reads every list entry in order.
func (c *Catalog) Load(ctx context.Context) ([]domain.Shop, error) {
	entries, err := c.client.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog from redis: %w", err)
	}

	shops := make([]domain.Shop, 0, len(entries))
	for i, entry := range entries {
		dec := json.NewDecoder(strings.NewReader(entry))
		dec.DisallowUnknownFields()
		var shop domain.Shop
		if err := dec.Decode(&shop); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", domain.ErrInvalidCatalog, c.key, i, err)
		}
		shops = append(shops, shop)
	}

	if err := domain.ValidateCatalog(shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// Publish replaces the list with shops in a single transaction.
func (c *Catalog) Publish(ctx context.Context, shops []domain.Shop) error {
	if err := domain.ValidateCatalog(shops); err != nil {
		return err
	}

	values := make([]any, 0, len(shops))
	for _, shop := range shops {
		data, err := json.Marshal(shop)
		if err != nil {
			return fmt.Errorf("failed to marshal shop %q: %w", shop.ID, err)
		}
		values = append(values, data)
	}

	_, err := c.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, c.key)
		if len(values) > 0 {
			pipe.RPush(ctx, c.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish catalog to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Catalog) Close() error {
	return c.client.Close()
}
