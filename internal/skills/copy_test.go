package skills

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExcluded(t *testing.T) {
	patterns := []string{".git", "*.swp", "**/*.tmp"}

	tests := []struct {
		rel  string
		want bool
	}{
		{".git", true},
		{"sub/.git", true}, // basename match prunes nested VCS dirs too
		{"notes.swp", true},
		{"top.tmp", true},
		{"a/b/cache.tmp", true},
		{"SKILL.md", false},
		{"scripts/run.sh", false},
		{"tmp", false},
	}
	for _, tt := range tests {
		if got := excluded(tt.rel, filepath.Base(tt.rel), patterns); got != tt.want {
			t.Errorf("excluded(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestCopyTreePreservesMode(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	script := filepath.Join(src, "run.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := copyTree(src, dst, nil); err != nil {
		t.Fatalf("copyTree: %v", err)
	}
	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("copied script lost its execute bit: %v", info.Mode())
	}
}

func TestCopyTreeSkipsSymlinks(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "real.md"), "content\n")
	if err := os.Symlink(filepath.Join(src, "real.md"), filepath.Join(src, "link.md")); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	if err := copyTree(src, dst, nil); err != nil {
		t.Fatalf("copyTree: %v", err)
	}
	mustExist(t, filepath.Join(dst, "real.md"))
	mustNotExist(t, filepath.Join(dst, "link.md"))
}
