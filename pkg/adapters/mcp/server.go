package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/rentals"
	"github.com/aretw0/rentals/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the whole catalog as JSON.
const CatalogURI = "rentals://catalog"

// Dispatcher defines what the MCP server needs from the rentals core.
type Dispatcher interface {
	Tools() []domain.ToolDescriptor
	Call(ctx context.Context, call domain.Call) domain.Result
}

// Server wraps a Dispatcher and exposes it as an MCP Server.
type Server struct {
	dispatcher Dispatcher
	catalog    func() ([]domain.Shop, error)
	mcpServer  *server.MCPServer
}

// Option configures the MCP Server.
type Option func(*Server)

// WithCatalogResource publishes the records returned by fn as the rentals://catalog resource.
func WithCatalogResource(fn func() ([]domain.Shop, error)) Option {
	return func(s *Server) {
		s.catalog = fn
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(dispatcher Dispatcher, opts ...Option) *Server {
	s := &Server{dispatcher: dispatcher}
	s.mcpServer = server.NewMCPServer("rentals-mcp", strings.TrimSpace(rentals.Version),
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithToolFilter(s.registrationOrder),
	)
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	if s.catalog != nil {
		s.registerResources()
	}
	return s
}

// MCPServer exposes the underlying protocol server (for in-process clients and tests).
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, stopping MCP Server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, desc := range s.dispatcher.Tools() {
		s.mcpServer.AddTool(ToolFromDescriptor(desc), s.handleCall(desc.Name))
	}
}

// registrationOrder sorts tools/list the way the dispatcher describes them;
// the protocol server hands the filter a name-sorted list.
func (s *Server) registrationOrder(ctx context.Context, tools []mcp.Tool) []mcp.Tool {
	rank := make(map[string]int)
	for i, desc := range s.dispatcher.Tools() {
		rank[desc.Name] = i
	}
	sort.SliceStable(tools, func(i, j int) bool {
		ri, iok := rank[tools[i].Name]
		rj, jok := rank[tools[j].Name]
		if iok != jok {
			return iok
		}
		return ri < rj
	})
	return tools
}

// ToolFromDescriptor converts a registry descriptor into an MCP tool definition.
func ToolFromDescriptor(desc domain.ToolDescriptor) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(desc.Description),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	for _, field := range desc.InputSchema {
		props := []mcp.PropertyOption{mcp.Description(field.Description)}
		if field.Required {
			props = append(props, mcp.Required())
		}
		// Only string arguments exist today; anything else still gets a string slot.
		opts = append(opts, mcp.WithString(field.Name, props...))
	}
	return mcp.NewTool(desc.Name, opts...)
}

func (s *Server) handleCall(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := s.dispatcher.Call(ctx, domain.Call{
			Name:      name,
			Arguments: request.GetArguments(),
		})
		return toCallToolResult(res), nil
	}
}

func toCallToolResult(res domain.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(res.Content))
	for _, block := range res.Content {
		content = append(content, mcp.NewTextContent(block.Text))
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: res.IsError,
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Rental Shop Catalog",
		mcp.WithResourceDescription("Every rental shop in catalog order"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		shops, err := s.catalog()
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		text, err := rentals.Encode(shops)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}
