package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/ui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the mandatory Symbols/DOMQL v3 rules",
	Long:  `Prints the agent instructions, falling back to the DOMQL reference when they are missing.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loader, _, err := services()
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")

		rules := loader.FetchPrimaryOrFallback(cfg.Instructions.Primary, cfg.Instructions.Fallback)
		return ui.WriteMarkdown(cmd.OutOrStdout(), rules.String(), raw)
	},
}

func init() {
	rulesCmd.Flags().Bool("raw", false, "print markdown without terminal styling")
	rootCmd.AddCommand(rulesCmd)
}
