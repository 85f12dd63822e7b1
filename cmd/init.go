package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/config"
)

var flagInitRoot string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration under ~/.skilldex",
	Long: `Create ~/.skilldex/config.yaml and a commented .env template.

Point registry_root (or the SKILLDEX_ROOT variable) at your checkout of the
skill content repository; until one is set, skilldex treats the current
working directory as that checkout.

Example:
  skilldex init --root ~/src/skills`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagInitRoot, "root", "", "Registry root to record in the config")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	printSection("skilldex init")

	// ── Config file ───────────────────────────────────────────────────────────
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.Default()
		if flagInitRoot != "" {
			root, err := config.ExpandPath(flagInitRoot)
			if err != nil {
				return err
			}
			cfg.RegistryRoot = root
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("config already exists: %s", cfgPath))
		if flagInitRoot != "" {
			printWarn("", "--root ignored; edit registry_root in the existing config instead")
		}
	}

	// ── Env template ──────────────────────────────────────────────────────────
	envPath, err := config.EnsureEnvTemplate()
	if err != nil {
		return err
	}
	printOK("", fmt.Sprintf("env template ready: %s", envPath))

	fmt.Println("\n✓  skilldex init complete. Run 'skilldex doctor' to verify your environment.")
	return nil
}
