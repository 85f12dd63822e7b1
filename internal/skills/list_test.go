package skills

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstalledEmptyWhenRootMissing(t *testing.T) {
	m, _ := newTestManager(t, &recordingConfirm{})

	installed, err := m.Installed(ScopeLocal)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if len(installed) != 0 {
		t.Errorf("Installed = %+v, want empty", installed)
	}
}

func TestInstalledFiltersMarkers(t *testing.T) {
	m, paths := newTestManager(t, &recordingConfirm{})

	root := paths.TargetRoot(ScopeLocal)
	if err := os.MkdirAll(filepath.Join(root, "no-marker"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "stray-file.md"), "not a skill\n")
	if _, err := m.Install("pptx", Options{Scope: ScopeLocal, SkipConfirm: true}); err != nil {
		t.Fatal(err)
	}

	installed, err := m.Installed(ScopeLocal)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if len(installed) != 1 || installed[0].Name != "pptx" {
		t.Errorf("Installed = %+v, want only pptx", installed)
	}
}

func TestInstalledDescriptions(t *testing.T) {
	m, paths := newTestManager(t, &recordingConfirm{})

	if _, err := m.Install("pptx", Options{Scope: ScopeLocal, SkipConfirm: true}); err != nil {
		t.Fatal(err)
	}
	// A hand-placed directory with its own frontmatter but no catalog entry.
	dir := paths.TargetPath("mystery", ScopeLocal)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "SKILL.md"), "---\nname: mystery\ndescription: Homemade skill.\n---\n")

	installed, err := m.Installed(ScopeLocal)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if len(installed) != 2 {
		t.Fatalf("Installed = %+v, want two entries", installed)
	}

	// ReadDir order is lexical: mystery > pptx.
	mystery, pptx := installed[0], installed[1]
	if mystery.Name != "mystery" || pptx.Name != "pptx" {
		t.Fatalf("order = [%s %s], want [mystery pptx]", installed[0].Name, installed[1].Name)
	}
	if !pptx.Known || pptx.Description != "Create PowerPoint decks." {
		t.Errorf("pptx = %+v, want catalog description", pptx)
	}
	if mystery.Known {
		t.Error("mystery should not be Known")
	}
	if mystery.Description != "Homemade skill." {
		t.Errorf("mystery description = %q, want its frontmatter description", mystery.Description)
	}
}

func TestInstalledScopesAreSeparate(t *testing.T) {
	m, _ := newTestManager(t, &recordingConfirm{})

	if _, err := m.Install("pptx", Options{Scope: ScopeGlobal, SkipConfirm: true}); err != nil {
		t.Fatal(err)
	}

	local, err := m.Installed(ScopeLocal)
	if err != nil {
		t.Fatal(err)
	}
	global, err := m.Installed(ScopeGlobal)
	if err != nil {
		t.Fatal(err)
	}
	if len(local) != 0 {
		t.Errorf("local = %+v, want empty", local)
	}
	if len(global) != 1 || global[0].Name != "pptx" {
		t.Errorf("global = %+v, want [pptx]", global)
	}
}
