package config

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Config is the top-level symbols-mcp configuration, corresponding to .symbols.yml.
type Config struct {
	// SkillsDir is the corpus root. Empty means the bundled skills corpus.
	SkillsDir    string             `yaml:"skills_dir" koanf:"skills_dir"`
	Include      []string           `yaml:"include" koanf:"include"`
	Exclude      []string           `yaml:"exclude" koanf:"exclude"`
	Instructions InstructionsConfig `yaml:"instructions" koanf:"instructions"`
	Search       SearchConfig       `yaml:"search" koanf:"search"`
	Server       ServerConfig       `yaml:"server" koanf:"server"`
}

// InstructionsConfig names the documents served by get_project_rules.
type InstructionsConfig struct {
	Primary  string `yaml:"primary" koanf:"primary"`
	Fallback string `yaml:"fallback" koanf:"fallback"`
}

// SearchConfig controls result limits and snippet windows.
type SearchConfig struct {
	DefaultResults int `yaml:"default_results" koanf:"default_results"`
	MaxResults     int `yaml:"max_results" koanf:"max_results"`
	ContextBefore  int `yaml:"context_before" koanf:"context_before"`
	ContextAfter   int `yaml:"context_after" koanf:"context_after"` // includes the matched line; at least 1
}

// ServerConfig holds transport settings for `symbols-mcp serve`.
type ServerConfig struct {
	Transport       Transport `yaml:"transport" koanf:"transport"`
	Addr            string    `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool      `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
