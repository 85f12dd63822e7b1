package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/skills"
)

var (
	flagAddGlobal bool
	flagAddYes    bool
)

var addCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Install a skill from the catalog",
	Long: `Copy a skill bundle from the content checkout into the skills directory
where host agents discover it.

By default the skill lands in ./.claude/skills inside the current project;
--global targets ~/.claude/skills instead. Installing over an existing
directory replaces it wholesale after a confirmation prompt (default: no).

Example:
  skilldex add pptx
  skilldex add powerpoint --global --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&flagAddGlobal, "global", false, "Install into ~/.claude/skills instead of ./.claude/skills")
	addCmd.Flags().BoolVarP(&flagAddYes, "yes", "y", false, "Overwrite an existing install without asking")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	scope := scopeOf(flagAddGlobal)
	outcome, err := m.Install(args[0], skills.Options{Scope: scope, SkipConfirm: flagAddYes})
	if errors.Is(err, skills.ErrNotFound) {
		// Show what the catalog does know before the error surfaces.
		printCatalog(m.Registry(), "")
		fmt.Println()
		return err
	}
	if err != nil {
		return err
	}

	name := m.Registry().Resolve(args[0])
	switch outcome {
	case skills.OutcomeCancelled:
		printSkip(name, "kept the existing install")
	case skills.OutcomeReplaced:
		printOK(name, fmt.Sprintf("reinstalled to %s", m.Paths().TargetPath(name, scope)))
	default:
		printOK(name, fmt.Sprintf("installed to %s", m.Paths().TargetPath(name, scope)))
	}
	return nil
}
