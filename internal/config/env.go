package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvRoot overrides the registry root when set in the environment.
const EnvRoot = "SKILLDEX_ROOT"

// envTemplate is written by EnsureEnvTemplate on first init.
const envTemplate = `# skilldex environment overrides.
# Values here never override variables already set in the environment.

# Absolute path to your checkout of the skill content repository.
# SKILLDEX_ROOT=/home/you/src/skills
`

// LoadEnvFile loads ~/.skilldex/.env into the process environment. Already
// set variables win; a missing file is fine.
func LoadEnvFile() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("cannot load %s: %w", path, err)
	}
	return nil
}

// EnsureEnvTemplate writes a commented .env starter unless one exists, and
// returns its path.
func EnsureEnvTemplate() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, []byte(envTemplate), 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// RegistryRoot resolves the content checkout the catalog paths are relative
// to: $SKILLDEX_ROOT first, then the config file, then the current working
// directory.
func RegistryRoot(cfg *Config) (string, error) {
	if v := os.Getenv(EnvRoot); v != "" {
		return ExpandPath(v)
	}
	if cfg != nil && cfg.RegistryRoot != "" {
		return cfg.RegistryRoot, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wd, nil
}
