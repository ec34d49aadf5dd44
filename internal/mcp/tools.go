package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getProjectRulesTool defines the get_project_rules MCP tool.
var getProjectRulesTool = mcp.NewTool("get_project_rules",
	mcp.WithDescription(`ALWAYS call this first before any generate_* tool.

Returns the mandatory Symbols/DOMQL v3 rules that MUST be followed.
Violations cause silent failures — black page, nothing renders.

Call this before: generate_project, generate_component, generate_page,
convert_to_symbols, or any code generation task.`),
	mcp.WithReadOnlyHintAnnotation(true),
)

// searchSymbolsDocsTool defines the search_symbols_docs MCP tool.
func searchSymbolsDocsTool(defaultResults, maxResults int) mcp.Tool {
	return mcp.NewTool("search_symbols_docs",
		mcp.WithDescription("Search the Symbols documentation knowledge base for relevant information."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language search query about Symbols/DOMQL."),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (1-5)."),
			mcp.DefaultNumber(float64(defaultResults)),
			mcp.Min(1),
			mcp.Max(float64(maxResults)),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
