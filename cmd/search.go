package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the Symbols documentation",
	Long: `Runs the same keyword search as the search_symbols_docs tool. Documents
are scanned in name order and the first matching line of each produces a
snippet; at most --max-results documents are returned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default from config)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	limit, _ := cmd.Flags().GetInt("max-results")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	_, _, searcher, err := services()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max-results") {
		limit = searcher.DefaultResults()
	}

	res := searcher.Search(query, limit)
	out := cmd.OutOrStdout()

	if jsonOutput || res.Empty() {
		fmt.Fprintln(out, res.String())
		return nil
	}

	fmt.Fprintf(out, "Found %d results:\n\n", len(res.Entries))
	for i, e := range res.Entries {
		fmt.Fprintf(out, "  %d. %s\n", i+1, e.File)
		for _, line := range strings.Split(e.Snippet, "\n") {
			fmt.Fprintf(out, "     %s\n", line)
		}
		fmt.Fprintln(out)
	}
	return nil
}
