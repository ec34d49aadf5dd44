package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/symbols-mcp/internal/mcp"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the MCP tools, resources and prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loader, searcher, err := services()
		if err != nil {
			return err
		}
		srv := mcpserver.NewServer(loader, searcher, rulesFor(cfg))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tNAME\tINPUTS\tDESCRIPTION")
		for _, c := range srv.Catalog() {
			inputs := strings.Join(c.Inputs, ", ")
			if inputs == "" {
				inputs = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Kind, c.Name, inputs, c.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
