// Package config loads the optional per-user skilldex configuration: a small
// YAML file under ~/.skilldex plus environment overrides from ~/.skilldex/.env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.skilldex/config.yaml. A
// missing file is not an error; every field has a working default.
type Config struct {
	// RegistryRoot points at a checkout of the skill content repository.
	// Empty means the current working directory.
	RegistryRoot string `yaml:"registry_root,omitempty"`

	// Excludes are glob patterns skipped when copying a skill into place.
	Excludes []string `yaml:"excludes,omitempty"`
}

// DefaultExcludes keeps VCS and editor droppings out of installed skills.
var DefaultExcludes = []string{
	".git",
	".DS_Store",
	"Thumbs.db",
	"*.swp",
	"*~",
	"__pycache__",
}

// Dir returns the absolute path to ~/.skilldex/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skilldex"), nil
}

// Path returns the absolute path to ~/.skilldex/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Excludes: append([]string(nil), DefaultExcludes...)}
}

// Load reads ~/.skilldex/config.yaml, falling back to defaults when absent.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path. Used by Load and by
// tests.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.RegistryRoot, err = ExpandPath(cfg.RegistryRoot)
	if err != nil {
		return nil, err
	}
	if len(cfg.Excludes) == 0 {
		cfg.Excludes = append([]string(nil), DefaultExcludes...)
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.skilldex/config.yaml, creating the
// directory on first use.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
