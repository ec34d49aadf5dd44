package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/prompts"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [name]",
	Short: "Render a prompt template",
	Long: `Renders one of the prompt templates with the given arguments, e.g.

  symbols-mcp prompt symbols_component_prompt --arg description="pricing card"

Optional arguments that are omitted take their defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, ok := prompts.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown prompt %q", args[0])
		}

		pairs, _ := cmd.Flags().GetStringArray("arg")
		values, err := parsePromptArgs(pairs)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tmpl.Render(values))
		return nil
	},
}

// parsePromptArgs turns key=value pairs into a map. Later keys win.
func parsePromptArgs(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", p)
		}
		values[key] = value
	}
	return values, nil
}

func init() {
	promptCmd.Flags().StringArray("arg", nil, "template argument as key=value (repeatable)")
	rootCmd.AddCommand(promptCmd)
}
