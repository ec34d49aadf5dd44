package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/symbols-mcp/internal/reference"
)

func newResource(r reference.Resource) mcp.Resource {
	return mcp.NewResource(r.URI, r.Name,
		mcp.WithResourceDescription(r.Description),
		mcp.WithMIMEType(reference.MIMEType),
	)
}

// resourceHandler reads r on every request; nothing is cached.
func (s *Server) resourceHandler(r reference.Resource) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      r.URI,
				MIMEType: reference.MIMEType,
				Text:     r.Content(s.loader),
			},
		}, nil
	}
}
