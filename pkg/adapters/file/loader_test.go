package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/rentals/pkg/adapters/file"
	"github.com/aretw0/rentals/pkg/domain"
	contract "github.com/aretw0/rentals/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `shops:
  - id: alpha
    name: Alpha Rentals
    location: Mountain Village
    services: [rentals, delivery]
    equipment: [skis, beginner]
    price_range: Moderate ($45-70/day)
  - id: bravo
    name: Bravo Backcountry
    location: Town of Telluride
    services: [guiding]
    equipment: [touring, backcountry]
    price_range: Premium ($60-100/day)
    hours: 7am-6pm
`

const jsonCatalog = `{"shops": [
  {"id": "alpha", "name": "Alpha Rentals", "services": ["rentals", "delivery"], "equipment": ["skis", "beginner"]},
  {"id": "bravo", "name": "Bravo Backcountry", "services": ["guiding"], "equipment": ["touring", "backcountry"]}
]}`

var expected = []domain.Shop{
	{ID: "alpha", Name: "Alpha Rentals", Services: []string{"rentals", "delivery"}, Equipment: []string{"skis", "beginner"}},
	{ID: "bravo", Name: "Bravo Backcountry", Services: []string{"guiding"}, Equipment: []string{"touring", "backcountry"}},
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader_YAML_Contract(t *testing.T) {
	loader := file.NewLoader(writeFile(t, "catalog.yaml", yamlCatalog))
	contract.CatalogLoaderContractTest(t, loader, expected)
}

func TestFileLoader_JSON_Contract(t *testing.T) {
	loader := file.NewLoader(writeFile(t, "catalog.json", jsonCatalog))
	contract.CatalogLoaderContractTest(t, loader, expected)
}

func TestFileLoader_DecodesAllFields(t *testing.T) {
	shops, err := file.NewLoader(writeFile(t, "catalog.yml", yamlCatalog)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 2)

	assert.Equal(t, "Mountain Village", shops[0].Location)
	assert.Equal(t, "Moderate ($45-70/day)", shops[0].PriceRange)
	assert.Equal(t, "7am-6pm", shops[1].Hours)
	assert.Empty(t, shops[0].Hours)
}

func TestFileLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := file.NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := file.Parse([]byte("shops:\n  - id: a\n    colour: red\n"), file.FormatYAML)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := file.Parse([]byte(`{"shops":[{"id":"a"},{"id":"a"}]}`), file.FormatJSON)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := file.Parse([]byte("shops: [\n"), file.FormatYAML)
		assert.Error(t, err)
	})
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, file.FormatJSON, file.FormatFor("a/b/catalog.JSON"))
	assert.Equal(t, file.FormatYAML, file.FormatFor("catalog.yaml"))
	assert.Equal(t, file.FormatYAML, file.FormatFor("catalog"))
}
