package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skilldex/skilldex-cli/internal/registry"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skill catalog by category",
	Long: `Show every skill the catalog can install, grouped by category in
declaration order. --category narrows the listing to one category;
an unknown category yields an empty listing, not an error.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "Only show skills in this category")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	reg := registry.Default()
	groups := reg.ByCategory(flagListCategory)
	if len(groups) == 0 {
		printMiss("", fmt.Sprintf("no skills in category %q", flagListCategory))
		return nil
	}

	total := 0
	for _, g := range groups {
		total += len(g.Skills)
	}
	printCatalog(reg, flagListCategory)
	fmt.Printf("\n  %d skill(s) available. Install with 'skilldex add <name>'.\n", total)
	return nil
}

var categoryTitle = cases.Title(language.English)

// printCatalog renders the catalog (or one category of it) as grouped,
// aligned listings. Shared by list and by the not-found guidance printed
// when add, update, or info is given an unknown name.
func printCatalog(reg *registry.Registry, category string) {
	for _, g := range reg.ByCategory(category) {
		printSection(categoryTitle.String(g.Category))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, d := range g.Skills {
			fmt.Fprintf(w, "  %s\t%s\n", d.Name, d.Description)
		}
		w.Flush()
	}
}
