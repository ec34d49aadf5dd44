package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List the documents in the skills corpus",
	Long:  `Lists every searchable document in traversal order with its title and line count.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, loader, _, err := services()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Skills: %s\n\n", loader.Root())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tLINES\tTITLE")
		n := 0
		for doc := range loader.Enumerate() {
			fmt.Fprintf(w, "%s\t%d\t%s\n", doc.Name, len(doc.Lines), corpus.Title(doc))
			n++
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(os.Stderr, "No documents found.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
