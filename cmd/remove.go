package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/skills"
)

var (
	flagRemoveGlobal bool
	flagRemoveYes    bool
)

var removeCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove an installed skill",
	Long: `Delete a skill's directory from the skills root. The name does not have
to be in the catalog: any installed directory can be removed by its literal
name. Removing a skill that is not installed is a warning, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&flagRemoveGlobal, "global", false, "Remove from ~/.claude/skills instead of ./.claude/skills")
	removeCmd.Flags().BoolVarP(&flagRemoveYes, "yes", "y", false, "Delete without asking")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	scope := scopeOf(flagRemoveGlobal)
	outcome, err := m.Remove(args[0], skills.Options{Scope: scope, SkipConfirm: flagRemoveYes})
	if err != nil {
		return err
	}

	name := m.Registry().Resolve(args[0])
	switch outcome {
	case skills.OutcomeNotInstalled:
		printWarn(name, fmt.Sprintf("not installed under %s", m.Paths().TargetRoot(scope)))
	case skills.OutcomeCancelled:
		printSkip(name, "kept in place")
	default:
		printOK(name, fmt.Sprintf("removed from %s", m.Paths().TargetRoot(scope)))
	}
	return nil
}
