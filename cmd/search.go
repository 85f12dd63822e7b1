package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/registry"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by substring",
	Long: `Case-insensitively match a query against skill names, descriptions, and
categories, then against aliases. Alias hits are appended after the direct
matches with the matching alias noted.

An empty query lists the whole catalog — every string contains the empty
substring.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	results := registry.Default().Search(query)

	fmt.Printf("\nskilldex search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		name := r.Skill.Name
		if r.Alias != "" {
			name = fmt.Sprintf("%s (alias: %s)", r.Skill.Name, r.Alias)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, r.Skill.Category, r.Skill.Description)
	}
	return w.Flush()
}
