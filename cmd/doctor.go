package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/skillfile"
	"github.com/skilldex/skilldex-cli/internal/skills"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the catalog and environment for defects",
	Long: `Verify that the registry root looks like a content checkout, that every
catalog entry's source bundle and marker file exist, that every alias points
at a real skill, and that the scope roots hold only recognizable installs.

Run this after editing config.yaml or moving the content checkout, or
before filing a bug report.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	reg := m.Registry()
	paths := m.Paths()

	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("skilldex doctor")
	fmt.Println()

	// ── Check 1: registry root ────────────────────────────────────────────────
	fmt.Println("[ registry root ]")
	if info, err := os.Stat(paths.RegistryRoot); err != nil || !info.IsDir() {
		failD("registry root missing: %s — set SKILLDEX_ROOT or registry_root in config.yaml", paths.RegistryRoot)
	} else {
		printOK("", fmt.Sprintf("registry root: %s", paths.RegistryRoot))
		var found bool
		for _, cat := range reg.Categories() {
			if info, err := os.Stat(filepath.Join(paths.RegistryRoot, cat)); err == nil && info.IsDir() {
				found = true
				break
			}
		}
		if !found {
			printWarn("", "no category directories found — is this really the content checkout?")
		}
	}
	fmt.Println()

	// ── Check 2: catalog sources ──────────────────────────────────────────────
	// A missing bundle here is the defect 'add' would later report as a
	// missing source, so it is caught before install time.
	fmt.Println("[ catalog sources ]")
	var missing int
	for _, d := range reg.Descriptors() {
		src := paths.SourcePath(d)
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			failD("[%s] source directory missing: %s", d.Name, src)
			missing++
			continue
		}
		if _, err := os.Stat(filepath.Join(src, skillfile.Filename)); err != nil {
			failD("[%s] no %s in %s", d.Name, skillfile.Filename, src)
			missing++
		}
	}
	if missing == 0 {
		printOK("", fmt.Sprintf("all %d catalog sources present", reg.Len()))
	}
	fmt.Println()

	// ── Check 3: catalog integrity ────────────────────────────────────────────
	fmt.Println("[ catalog integrity ]")
	integrityOK := true
	seen := make(map[string]bool, reg.Len())
	for _, d := range reg.Descriptors() {
		if seen[d.Name] {
			failD("duplicate catalog name %q", d.Name)
			integrityOK = false
		}
		seen[d.Name] = true
	}
	if dangling := reg.DanglingAliases(); len(dangling) > 0 {
		failD("aliases point at missing skills: %s", strings.Join(dangling, ", "))
		integrityOK = false
	}
	if integrityOK {
		printOK("", "names unique, all aliases resolve")
	}
	fmt.Println()

	// ── Check 4: installed skills ─────────────────────────────────────────────
	// Unrecognized directories are worth reporting but are not defects;
	// other tools may install skills too.
	fmt.Println("[ installed skills ]")
	for _, scope := range []skills.Scope{skills.ScopeLocal, skills.ScopeGlobal} {
		list, err := m.Installed(scope)
		if err != nil {
			failD("cannot scan %s root: %v", scope, err)
			continue
		}
		var unknown int
		for _, s := range list {
			if !s.Known {
				printWarn(s.Name, fmt.Sprintf("present in %s but not in the catalog", paths.TargetRoot(scope)))
				unknown++
			}
		}
		printOK("", fmt.Sprintf("%s: %d from catalog, %d unrecognized", scope, len(list)-unknown, unknown))
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. skilldex is ready to use.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
