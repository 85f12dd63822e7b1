package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/skills"
)

var flagUpdateGlobal bool

var updateCmd = &cobra.Command{
	Use:   "update <skill>",
	Short: "Reinstall a skill from the content checkout",
	Long: `Refresh an installed skill to whatever the content checkout currently
holds: the old directory is removed and the bundle copied again, with no
confirmation prompts.

The two phases are not atomic. If the process dies between them the skill
is left uninstalled; run 'skilldex add' again to recover.

To update the skilldex binary itself, see 'skilldex selfupdate'.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&flagUpdateGlobal, "global", false, "Update the copy under ~/.claude/skills")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	scope := scopeOf(flagUpdateGlobal)
	if _, err := m.Update(args[0], skills.Options{Scope: scope}); err != nil {
		if errors.Is(err, skills.ErrNotFound) {
			printCatalog(m.Registry(), "")
			fmt.Println()
		}
		return err
	}

	name := m.Registry().Resolve(args[0])
	printOK(name, fmt.Sprintf("updated under %s", m.Paths().TargetRoot(scope)))
	return nil
}
