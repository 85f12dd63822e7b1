package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/skillfile"
	"github.com/skilldex/skilldex-cli/internal/skills"
)

var flagInfoFull bool

var infoCmd = &cobra.Command{
	Use:   "info <skill>",
	Short: "Show a skill's catalog entry, source, and install status",
	Long: `Display a formatted summary of one catalog skill: its descriptor and
aliases, the source bundle in the content checkout, and whether it is
installed in either scope.

The argument can be a canonical name or any of its aliases.

Example:
  skilldex info pptx
  skilldex info powerpoint --full`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&flagInfoFull, "full", false, "Render the full SKILL.md body")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	reg := m.Registry()

	name := reg.Resolve(args[0])
	desc, ok := reg.Lookup(name)
	if !ok {
		printCatalog(reg, "")
		fmt.Println()
		return fmt.Errorf("%w: %q", skills.ErrNotFound, args[0])
	}

	fmt.Printf("📦 Skill: %s\n", desc.Name)
	fmt.Printf("Category: %s\n", desc.Category)
	fmt.Printf("Summary:  %s\n", strings.TrimSpace(desc.Description))
	if aliases := reg.Aliases(desc.Name); len(aliases) > 0 {
		fmt.Printf("Aliases:  %s\n", strings.Join(aliases, ", "))
	}

	src := m.Paths().SourcePath(desc)
	var body string
	var haveBody bool
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		printMiss("", fmt.Sprintf("source missing: %s", src))
	} else {
		fmt.Printf("Source:   %s\n", src)
		meta, b, err := skillfile.Read(src)
		if err == nil {
			body, haveBody = b, true
			if meta.Version != "" {
				fmt.Printf("Version:  %s\n", meta.Version)
			}
			if meta.License != "" {
				fmt.Printf("License:  %s\n", meta.License)
			}
		}

		if files := listBundleFiles(src); len(files) > 0 {
			fmt.Println("\nFiles:")
			for _, f := range files {
				fmt.Printf("  - %s\n", f)
			}
		}
		if scripts := listExecutables(filepath.Join(src, "scripts")); len(scripts) > 0 {
			fmt.Println("\nScripts:")
			for _, s := range scripts {
				fmt.Printf("  - scripts/%s (executable)\n", s)
			}
		}
	}

	fmt.Println("\nInstalled:")
	for _, scope := range []skills.Scope{skills.ScopeLocal, skills.ScopeGlobal} {
		target := m.Paths().TargetPath(desc.Name, scope)
		if _, err := os.Stat(filepath.Join(target, skillfile.Filename)); err == nil {
			printOK(scope.String(), target)
		} else {
			printMiss(scope.String(), "not installed")
		}
	}

	if flagInfoFull && haveBody {
		fmt.Println()
		fmt.Println(renderMarkdown(body))
	}
	return nil
}

// renderMarkdown renders a SKILL.md body for the terminal. On any renderer
// failure the raw markdown comes back unchanged.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour pads with trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}

// listBundleFiles returns a labeled listing of a bundle's top-level entries.
func listBundleFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		label := name
		switch {
		case name == skillfile.Filename:
			label = name + " (instructions)"
		case strings.EqualFold(name, "README.md"):
			label = name + " (readme)"
		case e.IsDir():
			label = name + "/"
		}
		out = append(out, label)
	}
	return out
}

// listExecutables returns the script files in a bundle's scripts/ directory:
// anything with an execute bit or a known script extension.
func listExecutables(scriptsDir string) []string {
	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if info.Mode()&0o111 != 0 ||
			ext == ".py" || ext == ".sh" || ext == ".js" || ext == ".ts" || ext == ".rb" {
			out = append(out, e.Name())
		}
	}
	return out
}
