package config

// Canonical instruction documents. The agent instructions are preferred;
// the DOMQL reference doubles as the fallback rule set.
const (
	DefaultPrimaryInstructions  = "AGENT_INSTRUCTIONS.md"
	DefaultFallbackInstructions = "CLAUDE.md"
)

// DefaultInclude matches the reference documents at the top of the corpus root.
var DefaultInclude = []string{"*.md"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SkillsDir: "",
		Include:   append([]string(nil), DefaultInclude...),
		Exclude:   nil,
		Instructions: InstructionsConfig{
			Primary:  DefaultPrimaryInstructions,
			Fallback: DefaultFallbackInstructions,
		},
		Search: SearchConfig{
			DefaultResults: 3,
			MaxResults:     5,
			ContextBefore:  2,
			ContextAfter:   20,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Addr:      ":8090",
		},
	}
}
