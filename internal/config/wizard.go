package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the handful of settings worth changing and saves the
// result to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to symbols-mcp! Let's configure the documentation server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Corpus location.
	skillsPrompt := promptui.Prompt{
		Label:    "Skills directory (leave blank for the bundled corpus)",
		Default:  "",
		Validate: validateSkillsDir,
	}
	skillsDir, err := skillsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("skills dir: %w", err)
	}
	cfg.SkillsDir = strings.TrimSpace(skillsDir)

	// 2. Include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Document patterns (comma-separated globs)",
		Default: strings.Join(DefaultInclude, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	if include := splitAndTrim(includeStr); len(include) > 0 {
		cfg.Include = include
	}

	// 3. Result cap.
	maxPrompt := promptui.Prompt{
		Label:    "Maximum search results per query",
		Default:  strconv.Itoa(cfg.Search.MaxResults),
		Validate: validatePositiveInt,
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max results: %w", err)
	}
	cfg.Search.MaxResults, _ = strconv.Atoi(strings.TrimSpace(maxStr))
	if cfg.Search.DefaultResults > cfg.Search.MaxResults {
		cfg.Search.DefaultResults = cfg.Search.MaxResults
	}

	// 4. Transport.
	transportPrompt := promptui.Select{
		Label: "Select transport",
		Items: []string{
			"stdio — launched by an MCP client",
			"http  — streamable HTTP on " + cfg.Server.Addr,
		},
	}
	transportIdx, _, err := transportPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("transport selection: %w", err)
	}
	cfg.Server.Transport = []Transport{TransportStdio, TransportHTTP}[transportIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateSkillsDir(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot access %s", s)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
