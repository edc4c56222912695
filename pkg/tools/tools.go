// Package tools declares the catalog tool surface: descriptors, typed argument
// decoding and the handlers that run against a ports.CatalogStore.
package tools

import (
	"context"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/ports"
	"github.com/aretw0/rentals/pkg/recommend"
	"github.com/aretw0/rentals/pkg/registry"
)

// Tool names.
const (
	NameListAll    = "list_all"
	NameGetDetails = "get_details"
	NameSearch     = "search"
	NameRecommend  = "recommend"
)

var (
	ListAll = domain.ToolDescriptor{
		Name:        NameListAll,
		Description: "List every rental shop in the catalog.",
	}

	GetDetails = domain.ToolDescriptor{
		Name:        NameGetDetails,
		Description: "Get the full details of a rental shop by its id.",
		InputSchema: []domain.InputField{
			{Name: "id", Type: domain.ArgTypeString, Required: true, Description: "The shop id (e.g. boot-doctors)"},
		},
	}

	Search = domain.ToolDescriptor{
		Name:        NameSearch,
		Description: "Search rental shops by name, location, description, services or equipment.",
		InputSchema: []domain.InputField{
			{Name: "query", Type: domain.ArgTypeString, Required: true, Description: "Free-text search term (case-insensitive)"},
		},
	}

	Recommend = domain.ToolDescriptor{
		Name:        NameRecommend,
		Description: "Recommend rental shops for a need such as beginner, expert, backcountry, delivery, budget, premium or family.",
		InputSchema: []domain.InputField{
			{Name: "need", Type: domain.ArgTypeString, Required: true, Description: "What the skier is looking for"},
		},
	}
)

// Handlers binds the tool surface to a store and a recommendation policy.
type Handlers struct {
	store  ports.CatalogStore
	policy recommend.Policy
}

// NewHandlers creates the handler set.
func NewHandlers(store ports.CatalogStore, policy recommend.Policy) *Handlers {
	return &Handlers{store: store, policy: policy}
}

// Register adds the four catalog tools to reg in their canonical order.
func (h *Handlers) Register(reg *registry.Registry) error {
	for _, t := range []struct {
		desc domain.ToolDescriptor
		fn   registry.ToolFunction
	}{
		{ListAll, h.ListAll},
		{GetDetails, h.GetDetails},
		{Search, h.Search},
		{Recommend, h.Recommend},
	} {
		if err := reg.Register(t.desc, t.fn); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns every shop in store order.
func (h *Handlers) ListAll(ctx context.Context, raw map[string]any) (any, error) {
	if _, err := DecodeArgs[ListAllArgs](ListAll, raw); err != nil {
		return nil, err
	}
	return h.store.GetAll(), nil
}

// GetDetails returns one shop or a *domain.NotFoundError.
func (h *Handlers) GetDetails(ctx context.Context, raw map[string]any) (any, error) {
	args, err := DecodeArgs[GetDetailsArgs](GetDetails, raw)
	if err != nil {
		return nil, err
	}
	shop, err := h.store.GetByID(args.ID)
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// Search returns the (possibly empty) list of matching shops.
func (h *Handlers) Search(ctx context.Context, raw map[string]any) (any, error) {
	args, err := DecodeArgs[SearchArgs](Search, raw)
	if err != nil {
		return nil, err
	}
	query, err := normalizeText(Search, "query", args.Query)
	if err != nil {
		return nil, err
	}
	return h.store.Search(query), nil
}

// Recommend classifies the need and returns {explanation, recommendations}.
func (h *Handlers) Recommend(ctx context.Context, raw map[string]any) (any, error) {
	args, err := DecodeArgs[RecommendArgs](Recommend, raw)
	if err != nil {
		return nil, err
	}
	need, err := normalizeText(Recommend, "need", args.Need)
	if err != nil {
		return nil, err
	}
	return h.policy.Recommend(need, h.store.GetAll()), nil
}
