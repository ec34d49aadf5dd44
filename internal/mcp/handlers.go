package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleGetProjectRules returns the agent instructions, falling back to the
// DOMQL reference when they are missing.
func (s *Server) handleGetProjectRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := s.loader.FetchPrimaryOrFallback(s.rules.Primary, s.rules.Fallback)
	return mcp.NewToolResultText(rules.String()), nil
}

// handleSearchSymbolsDocs runs a keyword search over the skills corpus.
func (s *Server) handleSearchSymbolsDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("max_results", s.searcher.DefaultResults())

	return mcp.NewToolResultText(s.searcher.Search(query, limit).String()), nil
}
