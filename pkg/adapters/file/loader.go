package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax of a catalog file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// catalogFile represents the structure of catalog.yaml / catalog.json.
type catalogFile struct {
	Shops []map[string]any `yaml:"shops" json:"shops"`
}

// Loader implements ports.CatalogLoader for a single YAML or JSON file.
type Loader struct {
	path string
}

// NewLoader creates a loader for path. The format is picked from the extension:
// ".json" is JSON, anything else is YAML.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the file on every call.
func (l *Loader) Load(ctx context.Context) ([]domain.Shop, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, FormatFor(l.path))
}

// FormatFor returns the format implied by the file extension.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes a catalog document. Keys are snake_case (price_range); unknown
// keys are rejected so typos do not silently drop data.
func Parse(data []byte, format Format) ([]domain.Shop, error) {
	var cfg catalogFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	}

	shops := make([]domain.Shop, 0, len(cfg.Shops))
	for i, raw := range cfg.Shops {
		shop, err := DecodeShop(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrInvalidCatalog, i, err)
		}
		shops = append(shops, shop)
	}

	if err := domain.ValidateCatalog(shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// DecodeShop converts a generic key/value record into a Shop.
func DecodeShop(raw map[string]any) (domain.Shop, error) {
	var shop domain.Shop
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &shop,
	})
	if err != nil {
		return domain.Shop{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Shop{}, err
	}
	return shop, nil
}
