package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/symbols-mcp/internal/prompts"
)

func newPrompt(t prompts.Template) mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(t.Description)}
	for _, a := range t.Arguments {
		argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(argumentDescription(a))}
		if a.Required {
			argOpts = append(argOpts, mcp.RequiredArgument())
		}
		opts = append(opts, mcp.WithArgument(a.Name, argOpts...))
	}
	return mcp.NewPrompt(t.Name, opts...)
}

func argumentDescription(a prompts.Argument) string {
	if a.Default == "" {
		return a.Description
	}
	return a.Description + " (default " + a.Default + ")"
}

func (s *Server) promptHandler(t prompts.Template) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := t.Render(request.Params.Arguments)
		return mcp.NewGetPromptResult(t.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	}
}
