// Package skillfile reads SKILL.md marker files: YAML frontmatter between
// --- fences, followed by a markdown body.
package skillfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is the marker file every valid skill directory carries.
const Filename = "SKILL.md"

// Meta is the loosely-parsed frontmatter of a SKILL.md. Unknown fields are
// ignored so skills can carry extra metadata for other tools.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	License     string `yaml:"license"`
}

// Parse splits raw SKILL.md content into frontmatter and body. Content
// without an opening fence parses to a zero Meta with the full text as body.
func Parse(raw []byte) (Meta, string, error) {
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return Meta{}, content, nil
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		// Unterminated fence: treat the whole file as body.
		return Meta{}, content, nil
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return Meta{}, "", fmt.Errorf("cannot parse frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return meta, strings.TrimLeft(body, "\n"), nil
}

// Read loads and parses <dir>/SKILL.md. A missing file surfaces as the
// os.ReadFile error so callers can distinguish absent from malformed.
func Read(dir string) (Meta, string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		return Meta{}, "", err
	}
	return Parse(raw)
}
