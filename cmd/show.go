package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/reference"
	"github.com/ziadkadry99/symbols-mcp/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [resource]",
	Short: "Print a reference resource",
	Long: `Prints a reference resource by URI (symbols://reference/spacing-tokens)
or by its last path segment (spacing-tokens). Run "symbols-mcp catalog" to
list the available resources.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := reference.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown resource %q", args[0])
		}

		var text string
		if res.Inline() {
			text = res.Text
		} else {
			_, loader, _, err := services()
			if err != nil {
				return err
			}
			text = res.Content(loader)
		}

		raw, _ := cmd.Flags().GetBool("raw")
		return ui.WriteMarkdown(cmd.OutOrStdout(), text, raw)
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print markdown without terminal styling")
	rootCmd.AddCommand(showCmd)
}
