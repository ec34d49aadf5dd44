package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: SYMBOLS_SEARCH__MAX_RESULTS -> search.max_results.
const EnvPrefix = "SYMBOLS_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SYMBOLS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: SYMBOLS_SKILLS_DIR -> skills_dir, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validTransports is the set of recognized transport values.
var validTransports = map[Transport]bool{
	TransportStdio: true,
	TransportHTTP:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("include must list at least one pattern")
	}
	for _, p := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}

	if c.Instructions.Primary == "" {
		return fmt.Errorf("instructions.primary is required")
	}
	if c.Instructions.Fallback == "" {
		return fmt.Errorf("instructions.fallback is required")
	}

	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be at least 1")
	}
	if c.Search.DefaultResults < 1 {
		return fmt.Errorf("search.default_results must be at least 1")
	}
	if c.Search.DefaultResults > c.Search.MaxResults {
		return fmt.Errorf("search.default_results (%d) exceeds search.max_results (%d)",
			c.Search.DefaultResults, c.Search.MaxResults)
	}
	if c.Search.ContextBefore < 0 {
		return fmt.Errorf("search.context_before must be non-negative")
	}
	if c.Search.ContextAfter < 1 {
		return fmt.Errorf("search.context_after must be at least 1 (it includes the matched line)")
	}

	if c.Server.Transport != "" && !validTransports[c.Server.Transport] {
		return fmt.Errorf("invalid server.transport %q: must be one of stdio, http", c.Server.Transport)
	}
	if c.Server.Transport == TransportHTTP && c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required for the http transport")
	}

	return nil
}

// UsesBundledSkills reports whether the embedded corpus should be served.
func (c *Config) UsesBundledSkills() bool {
	return strings.TrimSpace(c.SkillsDir) == ""
}
