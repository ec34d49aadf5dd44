package mcp

import (
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/symbols-mcp/internal/prompts"
	"github.com/ziadkadry99/symbols-mcp/internal/reference"
)

// Kind classifies a capability.
type Kind string

const (
	KindTool     Kind = "tool"
	KindResource Kind = "resource"
	KindPrompt   Kind = "prompt"
)

// Capability is one row of the server's capability table.
type Capability struct {
	Kind        Kind
	Name        string
	Description string
	Inputs      []string
}

// tools is the tool half of the capability table.
func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: getProjectRulesTool, Handler: s.handleGetProjectRules},
		{
			Tool:    searchSymbolsDocsTool(s.searcher.DefaultResults(), s.searcher.MaxResults()),
			Handler: s.handleSearchSymbolsDocs,
		},
	}
}

// resources maps every reference document to a read handler.
func (s *Server) resources() []server.ServerResource {
	out := make([]server.ServerResource, 0, len(reference.Catalog))
	for _, r := range reference.Catalog {
		out = append(out, server.ServerResource{
			Resource: newResource(r),
			Handler:  s.resourceHandler(r),
		})
	}
	return out
}

// prompts maps every prompt template to a render handler.
func (s *Server) prompts() []server.ServerPrompt {
	out := make([]server.ServerPrompt, 0, len(prompts.Templates))
	for _, t := range prompts.Templates {
		out = append(out, server.ServerPrompt{
			Prompt:  newPrompt(t),
			Handler: s.promptHandler(t),
		})
	}
	return out
}

// Catalog describes every registered capability in registration order.
func (s *Server) Catalog() []Capability {
	var caps []Capability
	for _, t := range s.tools() {
		caps = append(caps, Capability{
			Kind:        KindTool,
			Name:        t.Tool.Name,
			Description: firstLine(t.Tool.Description),
			Inputs:      toolInputs(t.Tool),
		})
	}
	for _, r := range reference.Catalog {
		caps = append(caps, Capability{Kind: KindResource, Name: r.URI, Description: r.Description})
	}
	for _, p := range prompts.Templates {
		var inputs []string
		for _, a := range p.Arguments {
			inputs = append(inputs, a.Name)
		}
		caps = append(caps, Capability{Kind: KindPrompt, Name: p.Name, Description: p.Description, Inputs: inputs})
	}
	return caps
}

// toolInputs lists a tool's parameters, required ones first.
func toolInputs(t mcp.Tool) []string {
	var required, optional []string
	for name := range t.InputSchema.Properties {
		if slices.Contains(t.InputSchema.Required, name) {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}
	slices.Sort(required)
	slices.Sort(optional)
	return append(required, optional...)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
