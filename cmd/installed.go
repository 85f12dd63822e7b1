package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var flagInstalledGlobal bool

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "Show skills installed in a scope",
	Long: `Scan a skills root for installed skills: immediate subdirectories that
carry a SKILL.md marker. Nothing else tracks installs, so this is the
authoritative view. Directories without a catalog entry are listed as
unrecognized, described by their own frontmatter when it parses.`,
	RunE: runInstalled,
}

func init() {
	installedCmd.Flags().BoolVar(&flagInstalledGlobal, "global", false, "Scan ~/.claude/skills instead of ./.claude/skills")
	rootCmd.AddCommand(installedCmd)
}

func runInstalled(_ *cobra.Command, _ []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	scope := scopeOf(flagInstalledGlobal)
	root := m.Paths().TargetRoot(scope)
	list, err := m.Installed(scope)
	if err != nil {
		return err
	}

	printSection(fmt.Sprintf("Installed Skills (%s)", scope))
	if len(list) == 0 {
		printMiss("", fmt.Sprintf("nothing installed under %s", root))
		return nil
	}

	// Plain icon runes inside the table; styled ones would skew the columns.
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	known := 0
	for _, s := range list {
		switch {
		case s.Known:
			known++
			fmt.Fprintf(w, "  ✓  %s\t%s\n", s.Name, s.Description)
		case s.Description != "":
			fmt.Fprintf(w, "  ~  %s\t%s (not in catalog)\n", s.Name, s.Description)
		default:
			fmt.Fprintf(w, "  ~  %s\t(not in catalog)\n", s.Name)
		}
	}
	w.Flush()

	fmt.Printf("\n  %d from catalog / %d unrecognized  (root: %s)\n", known, len(list)-known, root)
	return nil
}
