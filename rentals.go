package rentals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/rentals/pkg/adapters/memory"
	"github.com/aretw0/rentals/pkg/catalog"
	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/ports"
	"github.com/aretw0/rentals/pkg/recommend"
	"github.com/aretw0/rentals/pkg/registry"
	"github.com/aretw0/rentals/pkg/tools"
)

// Server is the high-level entry point for the rentals library.
// It owns the read-only catalog and the tool registry, and turns every call into
// a normalized domain.Result. It holds no per-call state.
type Server struct {
	store    ports.CatalogStore
	loader   ports.CatalogLoader
	policy   *recommend.Policy
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLoader injects a custom CatalogLoader, replacing the built-in dataset.
func WithLoader(l ports.CatalogLoader) Option {
	return func(s *Server) {
		s.loader = l
	}
}

// WithStore injects an already built store. It takes precedence over WithLoader.
func WithStore(store ports.CatalogStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithPolicy replaces the default recommendation policy.
func WithPolicy(p recommend.Policy) Option {
	return func(s *Server) {
		s.policy = &p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New loads the catalog and registers the tool surface.
// Without options it serves the built-in dataset.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if s.store == nil {
		if s.loader == nil {
			s.loader = catalog.NewLoader()
		}
		shops, err := s.loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		store, err := memory.NewStore(shops)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog store: %w", err)
		}
		s.store = store
		s.logger.Info("Catalog loaded", "records", len(shops))
	}

	policy := recommend.DefaultPolicy()
	if s.policy != nil {
		policy = *s.policy
	}

	s.registry = registry.NewRegistry()
	if err := tools.NewHandlers(s.store, policy).Register(s.registry); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Tools describes the registered tools in registration order.
func (s *Server) Tools() []domain.ToolDescriptor {
	return s.registry.Describe()
}

// Store returns the catalog the server answers from.
func (s *Server) Store() ports.CatalogStore {
	return s.store
}

// CallTool is shorthand for Call with a name and arguments.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) domain.Result {
	return s.Call(ctx, domain.Call{Name: name, Arguments: args})
}

// Call dispatches one call. Every failure (unknown tool, bad arguments, lookup
// miss, handler panic) is returned as an error-flagged result; Call never fails.
func (s *Server) Call(ctx context.Context, call domain.Call) domain.Result {
	start := time.Now()
	_, known := s.registry.Lookup(call.Name)
	if s.hooks.OnToolCall != nil {
		s.hooks.OnToolCall(ctx, &domain.ToolEvent{
			Timestamp: start,
			Type:      domain.EventToolCall,
			ToolName:  call.Name,
			Known:     known,
			Input:     call.Arguments,
		})
	}

	result := s.dispatch(ctx, call)

	event := &domain.ToolEvent{
		Timestamp: time.Now(),
		Type:      domain.EventToolReturn,
		ToolName:  call.Name,
		Known:     known,
		IsError:   result.IsError,
		Duration:  time.Since(start),
	}
	if result.IsError {
		event.Error = result.Text()
		s.logger.Warn("Tool call failed", "tool", call.Name, "error", event.Error)
	}
	if s.hooks.OnToolReturn != nil {
		s.hooks.OnToolReturn(ctx, event)
	}

	return result
}

func (s *Server) dispatch(ctx context.Context, call domain.Call) domain.Result {
	payload, err := s.registry.Execute(ctx, call.Name, call.Arguments)
	if err != nil {
		return domain.ErrorResult(err.Error())
	}

	text, err := Encode(payload)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("failed to encode result: %v", err))
	}
	return domain.TextResult(text)
}

// Encode serializes a tool payload the way it is sent to callers:
// JSON indented with two spaces.
func Encode(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
