package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/rentals/internal/testutils"
	"github.com/aretw0/rentals/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	core := testutils.NewServer(t)
	return NewServer(core, WithCatalogResource(func() ([]domain.Shop, error) {
		return core.Store().GetAll(), nil
	}))
}

// rpc sends one JSON-RPC message through the protocol server and decodes the reply.
func rpc(t *testing.T, s *Server, msg string) map[string]any {
	t.Helper()
	reply := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, reply)

	raw, err := json.Marshal(reply)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func initialize(t *testing.T, s *Server) {
	t.Helper()
	out := rpc(t, s, `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`)
	require.Contains(t, out, "result")
}

func TestToolFromDescriptor(t *testing.T) {
	tool := ToolFromDescriptor(domain.ToolDescriptor{
		Name:        "get_details",
		Description: "Get one",
		InputSchema: []domain.InputField{
			{Name: "id", Type: domain.ArgTypeString, Required: true},
			{Name: "lang", Type: domain.ArgTypeString},
		},
	})

	assert.Equal(t, "get_details", tool.Name)
	assert.Equal(t, "Get one", tool.Description)
	assert.Equal(t, []string{"id"}, tool.InputSchema.Required)
	assert.Contains(t, tool.InputSchema.Properties, "id")
	assert.Contains(t, tool.InputSchema.Properties, "lang")
}

func TestServer_ListTools(t *testing.T) {
	s := newTestServer(t)
	initialize(t, s)

	out := rpc(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	result := out["result"].(map[string]any)
	tools := result["tools"].([]any)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	assert.Equal(t, []string{"list_all", "get_details", "search", "recommend"}, names)
}

func TestServer_CallTool(t *testing.T) {
	s := newTestServer(t)
	initialize(t, s)

	t.Run("success", func(t *testing.T) {
		out := rpc(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"search","arguments":{"query":"BACKCOUNTRY"}}}`)
		result := out["result"].(map[string]any)
		assert.NotEqual(t, true, result["isError"])

		content := result["content"].([]any)
		require.Len(t, content, 1)
		block := content[0].(map[string]any)
		assert.Equal(t, "text", block["type"])

		var shops []domain.Shop
		require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &shops))
		require.Len(t, shops, 1)
		assert.Equal(t, "boot-doctors", shops[0].ID)
	})

	t.Run("lookup miss is an error result", func(t *testing.T) {
		out := rpc(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_details","arguments":{"id":"does-not-exist"}}}`)
		require.NotContains(t, out, "error", "a lookup miss must not be a protocol error")

		result := out["result"].(map[string]any)
		assert.Equal(t, true, result["isError"])
		block := result["content"].([]any)[0].(map[string]any)
		assert.Equal(t, `Record with id "does-not-exist" not found.`, block["text"])
	})

	t.Run("missing argument is an error result", func(t *testing.T) {
		out := rpc(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"recommend","arguments":{}}}`)
		result := out["result"].(map[string]any)
		assert.Equal(t, true, result["isError"])
	})
}

func TestServer_CatalogResource(t *testing.T) {
	s := newTestServer(t)
	initialize(t, s)

	out := rpc(t, s, `{"jsonrpc":"2.0","id":5,"method":"resources/read","params":{"uri":"rentals://catalog"}}`)
	result := out["result"].(map[string]any)
	contents := result["contents"].([]any)
	require.Len(t, contents, 1)

	entry := contents[0].(map[string]any)
	assert.Equal(t, CatalogURI, entry["uri"])
	assert.Equal(t, "application/json", entry["mimeType"])

	var shops []domain.Shop
	require.NoError(t, json.Unmarshal([]byte(entry["text"].(string)), &shops))
	assert.Len(t, shops, 6)
}

func TestToCallToolResult(t *testing.T) {
	res := toCallToolResult(domain.ErrorResult("bad"))
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "bad", text.Text)
}

func TestServer_RegistrationOrderKeepsForeignToolsLast(t *testing.T) {
	s := newTestServer(t)

	got := s.registrationOrder(context.Background(), []mcp.Tool{
		mcp.NewTool("extra"),
		mcp.NewTool("get_details"),
		mcp.NewTool("list_all"),
		mcp.NewTool("recommend"),
		mcp.NewTool("search"),
	})

	names := make([]string, 0, len(got))
	for _, tool := range got {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"list_all", "get_details", "search", "recommend", "extra"}, names)
}
