package tools_test

import (
	"testing"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgs(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		args, err := tools.DecodeArgs[tools.GetDetailsArgs](tools.GetDetails, map[string]any{"id": "boot-doctors"})
		require.NoError(t, err)
		assert.Equal(t, "boot-doctors", args.ID)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := tools.DecodeArgs[tools.SearchArgs](tools.Search, map[string]any{})
		require.ErrorIs(t, err, domain.ErrInvalidArguments)
		assert.Contains(t, err.Error(), `missing required argument "query" for tool "search"`)
	})

	t.Run("nil value counts as missing", func(t *testing.T) {
		_, err := tools.DecodeArgs[tools.RecommendArgs](tools.Recommend, map[string]any{"need": nil})
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := tools.DecodeArgs[tools.GetDetailsArgs](tools.GetDetails, map[string]any{"id": 42.0})
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := tools.DecodeArgs[tools.SearchArgs](tools.Search, map[string]any{"query": "x", "limit": 3})
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("no arguments accepted by list_all", func(t *testing.T) {
		_, err := tools.DecodeArgs[tools.ListAllArgs](tools.ListAll, nil)
		assert.NoError(t, err)

		_, err = tools.DecodeArgs[tools.ListAllArgs](tools.ListAll, map[string]any{"x": 1})
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("empty string is present", func(t *testing.T) {
		args, err := tools.DecodeArgs[tools.SearchArgs](tools.Search, map[string]any{"query": ""})
		require.NoError(t, err)
		assert.Equal(t, "", args.Query)
	})
}
