package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/api"
	"github.com/ziadkadry99/symbols-mcp/internal/config"
	mcpserver "github.com/ziadkadry99/symbols-mcp/internal/mcp"
	"github.com/ziadkadry99/symbols-mcp/internal/server"
	"github.com/ziadkadry99/symbols-mcp/internal/site"
)

const mcpEndpoint = "/mcp"

var (
	serveHTTP bool
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server exposing the Symbols
documentation tools, resources and prompts. By default the server speaks
MCP on stdio; with --http it serves streamable HTTP on /mcp plus a small
JSON API under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loader, searcher, err := services()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		srv := mcpserver.NewServer(loader, searcher, rulesFor(cfg))

		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		if serveHTTP || cfg.Server.Transport == config.TransportHTTP {
			return serveOverHTTP(cfg, srv, api.Deps{
				Loader:        loader,
				Searcher:      searcher,
				PrimaryRules:  cfg.Instructions.Primary,
				FallbackRules: cfg.Instructions.Fallback,
			})
		}

		fmt.Fprintf(os.Stderr, "symbols-mcp server started on stdio (skills=%s, documents=%d)\n",
			loader.Root(), len(loader.Names()))
		return srv.Serve()
	},
}

func serveOverHTTP(cfg *config.Config, srv *mcpserver.Server, deps api.Deps) error {
	httpSrv := server.New(server.Config{
		Addr:     cfg.Server.Addr,
		AllowAll: cfg.Server.AllowAllOrigins,
	})

	renderer, err := site.NewRenderer()
	if err != nil {
		return fmt.Errorf("creating page renderer: %w", err)
	}

	r := httpSrv.Router()
	r.Handle(mcpEndpoint, srv.HTTPHandler(mcpEndpoint))
	api.RegisterRoutes(r, deps)
	site.RegisterRoutes(r, renderer, deps.Loader)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "symbols-mcp v%s starting on %s\n", Version, httpSrv.Addr())
	fmt.Fprintf(os.Stderr, "  MCP endpoint: %s\n", mcpEndpoint)
	fmt.Fprintf(os.Stderr, "  Reference pages: /docs/\n")
	fmt.Fprintf(os.Stderr, "  Skills: %s\n", deps.Loader.Root())

	if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().BoolVar(&serveHTTP, "http", false, "serve streamable HTTP instead of stdio")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address for --http (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
