package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/config"
	"github.com/skilldex/skilldex-cli/internal/confirm"
	"github.com/skilldex/skilldex-cli/internal/registry"
	"github.com/skilldex/skilldex-cli/internal/skills"
)

var rootCmd = &cobra.Command{
	Use:          "skilldex",
	Short:        "skilldex — install curated skills into your agent's skills directory",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `skilldex copies curated skill bundles from a content checkout into
./.claude/skills (project scope) or ~/.claude/skills (user scope), where
host agents discover them.

The catalog is compiled in; point SKILLDEX_ROOT (or registry_root in
~/.skilldex/config.yaml) at your checkout of the content repository.`,
}

// Execute is called by main.go.
func Execute() {
	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newManager assembles the install engine for one command invocation: the
// compiled-in catalog, the resolved path layout, and a terminal confirmer.
func newManager() (*skills.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	root, err := config.RegistryRoot(cfg)
	if err != nil {
		return nil, err
	}
	paths, err := skills.NewPaths(root)
	if err != nil {
		return nil, err
	}
	return skills.New(registry.Default(), paths, confirm.Prompt{}, cfg.Excludes), nil
}

// scopeOf maps the --global flag onto an install scope.
func scopeOf(global bool) skills.Scope {
	if global {
		return skills.ScopeGlobal
	}
	return skills.ScopeLocal
}
