package skills

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// copyTree copies the src directory into dst recursively, skipping entries
// that match an exclude glob. Patterns are tried against both the path
// relative to src (slash-separated, ** supported) and the bare entry name,
// so ".git" prunes the directory wherever it sits.
func copyTree(src, dst string, excludes []string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return os.MkdirAll(dst, 0o755)
		}
		if excluded(rel, d.Name(), excludes) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			// Symlinks and other specials are not part of a skill bundle.
			return nil
		}
		return copyFile(path, target)
	})
}

// excluded reports whether rel (or its basename) matches any pattern.
func excluded(rel, base string, patterns []string) bool {
	relSlash := filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, relSlash); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// copyFile copies one regular file, preserving its permission bits so
// bundled scripts stay executable.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", src, err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("cannot copy to %s: %w", dst, err)
	}
	return out.Close()
}
