package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/rentals"
	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds POST /tools/{name} bodies.
const maxBodySize = 64 << 10

// Engine defines what the HTTP adapter needs from the rentals core.
type Engine interface {
	Tools() []domain.ToolDescriptor
	Call(ctx context.Context, call domain.Call) domain.Result
	Store() ports.CatalogStore
}

// Server serves the tool surface as a small JSON API.
type Server struct {
	Engine Engine
}

// Option configures the handler.
type Option func(chi.Router)

// WithMetrics mounts GET /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(r chi.Router) {
		r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}

	r := chi.NewRouter()
	r.Get("/healthz", server.GetHealth)
	r.Get("/tools", server.ListTools)
	r.With(validateRequest("/tools/{name}", http.MethodPost)).Post("/tools/{name}", server.CallTool)
	r.Get("/shops", server.ListShops)
	r.Get("/shops/{id}", server.GetShop)
	r.Get("/openapi.yaml", server.GetSpec)
	for _, opt := range opts {
		opt(r)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(rentals.Version),
	})
}

// ListTools handles the GET /tools request.
func (s *Server) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Tools())
}

// CallTool handles the POST /tools/{name} request.
// The body is the argument object; an empty body means no arguments.
// Tool-level failures are reported in the result envelope with 200 OK, like MCP.
func (s *Server) CallTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	args, err := decodeArgs(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Invalid request body: expected a JSON object", http.StatusBadRequest)
		slog.Warn("CallTool: Invalid request body", "tool", name, "error", err)
		return
	}

	res := s.Engine.Call(r.Context(), domain.Call{Name: name, Arguments: args})
	writeJSON(w, http.StatusOK, res)
}

// ListShops handles the GET /shops request.
func (s *Server) ListShops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Store().GetAll())
}

// GetShop handles the GET /shops/{id} request.
func (s *Server) GetShop(w http.ResponseWriter, r *http.Request) {
	shop, err := s.Engine.Store().GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("GetShop failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func decodeArgs(body io.Reader) (map[string]any, error) {
	var args map[string]any
	err := json.NewDecoder(body).Decode(&args)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return args, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
