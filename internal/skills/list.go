package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skilldex/skilldex-cli/internal/skillfile"
)

// InstalledSkill describes one valid skill directory found under a scope
// root. Known is false for directories with no catalog entry; those still
// get a description from their own SKILL.md frontmatter when it parses.
type InstalledSkill struct {
	Name        string
	Description string
	Known       bool
	Path        string
}

// Installed scans the scope root for immediate subdirectories carrying the
// SKILL.md marker, in directory (lexical) order. A missing root is an empty
// result, not an error; nothing tracks installs besides the filesystem.
func (m *Manager) Installed(scope Scope) ([]InstalledSkill, error) {
	root := m.paths.TargetRoot(scope)
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", root, err)
	}

	var out []InstalledSkill
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if _, err := os.Stat(filepath.Join(dir, skillfile.Filename)); err != nil {
			continue
		}

		inst := InstalledSkill{Name: e.Name(), Path: dir}
		if d, ok := m.reg.Lookup(e.Name()); ok {
			inst.Known = true
			inst.Description = d.Description
		} else if meta, _, err := skillfile.Read(dir); err == nil {
			inst.Description = meta.Description
		}
		out = append(out, inst)
	}
	return out, nil
}
