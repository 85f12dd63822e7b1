package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skilldex/skilldex-cli/internal/registry"
)

// Scope selects which install root an operation targets.
type Scope int

const (
	// ScopeLocal installs under the current project.
	ScopeLocal Scope = iota
	// ScopeGlobal installs under the invoking user's home directory.
	ScopeGlobal
)

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "local"
}

// skillsDir is where host agents discover installed skills, relative to a
// scope root.
var skillsDir = filepath.Join(".claude", "skills")

// Paths does all the path math for one invocation. WorkDir and HomeDir are
// captured once so the layout is explicit and testable.
type Paths struct {
	RegistryRoot string
	WorkDir      string
	HomeDir      string
}

// NewPaths resolves the ambient directories around a registry root.
func NewPaths(registryRoot string) (Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Paths{}, fmt.Errorf("cannot determine working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return Paths{RegistryRoot: registryRoot, WorkDir: wd, HomeDir: home}, nil
}

// TargetRoot returns the skills directory for a scope.
func (p Paths) TargetRoot(scope Scope) string {
	if scope == ScopeGlobal {
		return filepath.Join(p.HomeDir, skillsDir)
	}
	return filepath.Join(p.WorkDir, skillsDir)
}

// TargetPath returns where a skill lands under a scope root.
func (p Paths) TargetPath(name string, scope Scope) string {
	return filepath.Join(p.TargetRoot(scope), name)
}

// SourcePath returns a descriptor's source directory inside the registry
// root. Catalog paths are slash-separated.
func (p Paths) SourcePath(d registry.Descriptor) string {
	return filepath.Join(p.RegistryRoot, filepath.FromSlash(d.Path))
}
