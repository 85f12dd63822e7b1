package skills

import (
	"path/filepath"
	"testing"

	"github.com/skilldex/skilldex-cli/internal/registry"
)

func TestPaths(t *testing.T) {
	p := Paths{RegistryRoot: "/srv/skills", WorkDir: "/work/project", HomeDir: "/home/dev"}

	if got, want := p.TargetRoot(ScopeLocal), filepath.Join("/work/project", ".claude", "skills"); got != want {
		t.Errorf("TargetRoot(local) = %q, want %q", got, want)
	}
	if got, want := p.TargetRoot(ScopeGlobal), filepath.Join("/home/dev", ".claude", "skills"); got != want {
		t.Errorf("TargetRoot(global) = %q, want %q", got, want)
	}
	if got, want := p.TargetPath("pptx", ScopeLocal), filepath.Join("/work/project", ".claude", "skills", "pptx"); got != want {
		t.Errorf("TargetPath = %q, want %q", got, want)
	}

	d := registry.Descriptor{Name: "pptx", Path: "general/pptx"}
	if got, want := p.SourcePath(d), filepath.Join("/srv/skills", "general", "pptx"); got != want {
		t.Errorf("SourcePath = %q, want %q", got, want)
	}
}

func TestScopeString(t *testing.T) {
	if ScopeLocal.String() != "local" || ScopeGlobal.String() != "global" {
		t.Errorf("Scope strings = %q/%q", ScopeLocal, ScopeGlobal)
	}
}
