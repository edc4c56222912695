package tools

import (
	"fmt"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// ListAllArgs is the (empty) argument set of list_all.
type ListAllArgs struct{}

// GetDetailsArgs is the argument set of get_details.
type GetDetailsArgs struct {
	ID string `mapstructure:"id"`
}

// SearchArgs is the argument set of search.
type SearchArgs struct {
	Query string `mapstructure:"query"`
}

// RecommendArgs is the argument set of recommend.
type RecommendArgs struct {
	Need string `mapstructure:"need"`
}

// DecodeArgs validates raw call arguments against desc and decodes them into T.
// Missing required fields, unknown fields and mistyped values are rejected with
// domain.ErrInvalidArguments before any handler runs.
func DecodeArgs[T any](desc domain.ToolDescriptor, raw map[string]any) (T, error) {
	var out T

	for _, name := range desc.RequiredFields() {
		if v, ok := raw[name]; !ok || v == nil {
			return out, fmt.Errorf("%w: missing required argument %q for tool %q", domain.ErrInvalidArguments, name, desc.Name)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &out,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(raw); err != nil {
		return out, fmt.Errorf("%w: tool %q: %v", domain.ErrInvalidArguments, desc.Name, err)
	}
	return out, nil
}
