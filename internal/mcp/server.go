// Package mcp exposes the Symbols reference corpus over the Model Context
// Protocol: two tools, the resource catalog and the prompt templates.
package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	"github.com/ziadkadry99/symbols-mcp/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Instructions is sent to clients during initialization.
const Instructions = "Reference assistant for the Symbols/DOMQL v3 design-system framework. " +
	"Searches Symbols documentation, exposes framework rules, and provides " +
	"comprehensive syntax and API reference."

// Rules names the documents returned by get_project_rules.
type Rules struct {
	Primary  string
	Fallback string
}

// Server wraps an MCP server backed by the skills corpus.
type Server struct {
	loader   *corpus.Loader
	searcher *search.Searcher
	rules    Rules
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(loader *corpus.Loader, searcher *search.Searcher, rules Rules) *Server {
	s := &Server{
		loader:   loader,
		searcher: searcher,
		rules:    rules,
	}

	s.mcp = server.NewMCPServer(
		"Symbols",
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithInstructions(Instructions),
		server.WithRecovery(),
	)

	s.register()

	return s
}

// register adds every entry of the capability table to the MCP server.
func (s *Server) register() {
	s.mcp.AddTools(s.tools()...)
	s.mcp.AddResources(s.resources()...)
	s.mcp.AddPrompts(s.prompts()...)
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns a streamable HTTP handler for the server, to be
// mounted at endpoint.
func (s *Server) HTTPHandler(endpoint string) http.Handler {
	return server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath(endpoint),
		server.WithStateLess(true),
	)
}
