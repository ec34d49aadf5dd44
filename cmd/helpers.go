package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/symbols-mcp/internal/config"
	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	mcpserver "github.com/ziadkadry99/symbols-mcp/internal/mcp"
	"github.com/ziadkadry99/symbols-mcp/internal/search"
	"github.com/ziadkadry99/symbols-mcp/skills"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `symbols-mcp init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLoader opens the configured skills directory, or the corpus compiled
// into the binary when none is set.
func newLoader(cfg *config.Config) *corpus.Loader {
	opts := corpus.Options{
		Include: cfg.Include,
		Exclude: cfg.Exclude,
		Logger:  slog.Default(),
	}
	if cfg.UsesBundledSkills() {
		return corpus.NewLoader(skills.FS, skills.Root, opts)
	}
	return corpus.NewDirLoader(cfg.SkillsDir, opts)
}

func newSearcher(cfg *config.Config, loader *corpus.Loader) *search.Searcher {
	return search.NewSearcher(loader, search.Options{
		DefaultResults: cfg.Search.DefaultResults,
		MaxResults:     cfg.Search.MaxResults,
		Window: search.Window{
			Before: cfg.Search.ContextBefore,
			After:  cfg.Search.ContextAfter,
		},
		Logger: slog.Default(),
	})
}

func rulesFor(cfg *config.Config) mcpserver.Rules {
	return mcpserver.Rules{
		Primary:  cfg.Instructions.Primary,
		Fallback: cfg.Instructions.Fallback,
	}
}

// services loads config and builds the corpus loader and searcher.
func services() (*config.Config, *corpus.Loader, *search.Searcher, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	loader := newLoader(cfg)
	return cfg, loader, newSearcher(cfg, loader), nil
}
