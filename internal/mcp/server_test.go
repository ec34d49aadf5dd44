package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	"github.com/ziadkadry99/symbols-mcp/internal/search"
)

func writeSkill(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestServer(t *testing.T, dir string) *Server {
	t.Helper()
	loader := corpus.NewDirLoader(dir, corpus.Options{Include: []string{"*.md"}})
	searcher := search.NewSearcher(loader, search.DefaultOptions())
	return NewServer(loader, searcher, Rules{Primary: "AGENT_INSTRUCTIONS.md", Fallback: "CLAUDE.md"})
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func decodeEntries(t *testing.T, result *mcp.CallToolResult) []search.Entry {
	t.Helper()
	var entries []search.Entry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &entries))
	return entries
}

func TestToolDefinitions(t *testing.T) {
	searchTool := searchSymbolsDocsTool(3, 5)

	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"get_project_rules", getProjectRulesTool, "get_project_rules"},
		{"search_symbols_docs", searchTool, "search_symbols_docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.tool.Name)
			assert.NotEmpty(t, tt.tool.Description)
		})
	}

	assert.Equal(t, []string{"query"}, searchTool.InputSchema.Required)
	assert.Contains(t, searchTool.InputSchema.Properties, "max_results")
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	require.NotNil(t, srv)
	require.NotNil(t, srv.mcp)
	assert.Equal(t, "CLAUDE.md", srv.rules.Fallback)
}

func TestHandleGetProjectRules(t *testing.T) {
	ctx := context.Background()

	t.Run("primary present", func(t *testing.T) {
		dir := t.TempDir()
		writeSkill(t, dir, "AGENT_INSTRUCTIONS.md", "X")
		writeSkill(t, dir, "CLAUDE.md", "Y")

		result, err := newTestServer(t, dir).handleGetProjectRules(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.Equal(t, "X", resultText(t, result))
	})

	t.Run("fallback", func(t *testing.T) {
		dir := t.TempDir()
		writeSkill(t, dir, "CLAUDE.md", "Y")

		result, err := newTestServer(t, dir).handleGetProjectRules(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Y", resultText(t, result))
	})

	t.Run("both missing", func(t *testing.T) {
		dir := t.TempDir()

		result, err := newTestServer(t, dir).handleGetProjectRules(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.False(t, result.IsError, "missing rules should not be a tool error")
		assert.Equal(t, "Skill file 'CLAUDE.md' not found at "+filepath.Join(dir, "CLAUDE.md"), resultText(t, result))
	})
}

func TestHandleSearchSymbolsDocs(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "a.md", "intro\nUse the Button atom\nmore")
	writeSkill(t, dir, "b.md", "the button again")
	srv := newTestServer(t, dir)
	ctx := context.Background()

	t.Run("basic search", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "button"}

		result, err := srv.handleSearchSymbolsDocs(ctx, req)
		require.NoError(t, err)
		require.False(t, result.IsError)

		entries := decodeEntries(t, result)
		require.Len(t, entries, 2)
		assert.Equal(t, search.Entry{File: "a.md", Snippet: "intro\nUse the Button atom\nmore"}, entries[0])
	})

	t.Run("max_results limits output", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "button", "max_results": float64(1)}

		result, err := srv.handleSearchSymbolsDocs(ctx, req)
		require.NoError(t, err)

		entries := decodeEntries(t, result)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.md", entries[0].File)
	})

	t.Run("empty query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": ""}

		result, err := srv.handleSearchSymbolsDocs(ctx, req)
		require.NoError(t, err)
		assert.Len(t, decodeEntries(t, result), 2)
	})

	t.Run("no results", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "zzzqqq"}

		result, err := srv.handleSearchSymbolsDocs(ctx, req)
		require.NoError(t, err)
		assert.False(t, result.IsError, "empty results should not be an error")
		assert.Equal(t, "No results found for 'zzzqqq'. Try a different search term.", resultText(t, result))
	})

	t.Run("missing query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSearchSymbolsDocs(ctx, req)
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestCatalog(t *testing.T) {
	srv := newTestServer(t, t.TempDir())
	caps := srv.Catalog()

	counts := map[Kind]int{}
	for _, c := range caps {
		counts[c.Kind]++
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description, c.Name)
	}
	assert.Equal(t, map[Kind]int{KindTool: 2, KindResource: 9, KindPrompt: 4}, counts)

	require.Equal(t, "search_symbols_docs", caps[1].Name)
	assert.Equal(t, []string{"query", "max_results"}, caps[1].Inputs)
}

// call sends a JSON-RPC request through the full protocol stack.
func call(t *testing.T, srv *Server, method string, params any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := srv.MCPServer().HandleMessage(context.Background(), raw)
	out, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.NotContains(t, decoded, "error", "%s returned an error", method)

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok, "%s: missing result in %s", method, out)
	return result
}

func firstContent(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	contents, _ := result["contents"].([]any)
	require.Len(t, contents, 1)
	c, ok := contents[0].(map[string]any)
	require.True(t, ok)
	return c
}

func TestProtocolRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "CLAUDE.md", "# DOMQL v3\nuse extends")
	srv := newTestServer(t, dir)

	t.Run("initialize", func(t *testing.T) {
		result := call(t, srv, "initialize", map[string]any{
			"protocolVersion": "2025-03-26",
			"clientInfo":      map[string]any{"name": "test", "version": "0"},
			"capabilities":    map[string]any{},
		})
		assert.Equal(t, Instructions, result["instructions"])
	})

	t.Run("tools/list", func(t *testing.T) {
		result := call(t, srv, "tools/list", map[string]any{})
		tools, _ := result["tools"].([]any)
		assert.Len(t, tools, 2)
	})

	t.Run("resources/read file-backed", func(t *testing.T) {
		c := firstContent(t, call(t, srv, "resources/read", map[string]any{"uri": "symbols://skills/domql-v3-reference"}))
		assert.Equal(t, "# DOMQL v3\nuse extends", c["text"])
		assert.Equal(t, "text/markdown", c["mimeType"])
	})

	t.Run("resources/read missing file", func(t *testing.T) {
		c := firstContent(t, call(t, srv, "resources/read", map[string]any{"uri": "symbols://skills/quickstart"}))
		text, _ := c["text"].(string)
		assert.True(t, strings.HasPrefix(text, "Skill file 'QUICKSTART.md' not found at "), text)
	})

	t.Run("resources/read inline", func(t *testing.T) {
		c := firstContent(t, call(t, srv, "resources/read", map[string]any{"uri": "symbols://reference/spacing-tokens"}))
		text, _ := c["text"].(string)
		assert.True(t, strings.HasPrefix(text, "# Symbols Spacing Tokens"), text)
	})

	t.Run("prompts/get", func(t *testing.T) {
		result := call(t, srv, "prompts/get", map[string]any{
			"name":      "symbols_component_prompt",
			"arguments": map[string]any{"description": "a pricing card"},
		})
		messages, _ := result["messages"].([]any)
		require.Len(t, messages, 1)

		content, _ := messages[0].(map[string]any)["content"].(map[string]any)
		text, _ := content["text"].(string)
		assert.Contains(t, text, "a pricing card")
		assert.Contains(t, text, "MyComponent")
	})
}
