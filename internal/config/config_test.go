package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.RegistryRoot != "" {
		t.Errorf("RegistryRoot = %q, want empty default", cfg.RegistryRoot)
	}
	if len(cfg.Excludes) == 0 {
		t.Error("default excludes missing")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "registry_root: /srv/skills\nexcludes:\n  - \"*.bak\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RegistryRoot != "/srv/skills" {
		t.Errorf("RegistryRoot = %q", cfg.RegistryRoot)
	}
	if len(cfg.Excludes) != 1 || cfg.Excludes[0] != "*.bak" {
		t.Errorf("Excludes = %v", cfg.Excludes)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("registry_root: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}

func TestLoadFromExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("registry_root: ~/skills\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if want := filepath.Join(home, "skills"); cfg.RegistryRoot != want {
		t.Errorf("RegistryRoot = %q, want %q", cfg.RegistryRoot, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~", home},
		{"~/skills", filepath.Join(home, "skills")},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistryRootPrecedence(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	// Environment wins over config.
	t.Setenv(EnvRoot, "/env/skills")
	got, err := RegistryRoot(&Config{RegistryRoot: "/cfg/skills"})
	if err != nil {
		t.Fatalf("RegistryRoot: %v", err)
	}
	if got != "/env/skills" {
		t.Errorf("with env set, root = %q, want /env/skills", got)
	}

	// Config wins over the working directory.
	t.Setenv(EnvRoot, "")
	got, err = RegistryRoot(&Config{RegistryRoot: "/cfg/skills"})
	if err != nil {
		t.Fatalf("RegistryRoot: %v", err)
	}
	if got != "/cfg/skills" {
		t.Errorf("with config set, root = %q, want /cfg/skills", got)
	}

	// Neither: the working directory.
	got, err = RegistryRoot(Default())
	if err != nil {
		t.Fatalf("RegistryRoot: %v", err)
	}
	if got != wd {
		t.Errorf("fallback root = %q, want %q", got, wd)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := &Config{RegistryRoot: "/srv/skills", Excludes: []string{".git"}}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.RegistryRoot != in.RegistryRoot {
		t.Errorf("RegistryRoot = %q, want %q", out.RegistryRoot, in.RegistryRoot)
	}
	if len(out.Excludes) != 1 || out.Excludes[0] != ".git" {
		t.Errorf("Excludes = %v", out.Excludes)
	}
}
