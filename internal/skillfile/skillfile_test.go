package skillfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	raw := []byte(`---
name: pptx
description: Create PowerPoint decks.
version: "1.2"
---

# pptx

Body text here.
`)
	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta.Name != "pptx" || meta.Description != "Create PowerPoint decks." || meta.Version != "1.2" {
		t.Errorf("meta = %+v", meta)
	}
	if !strings.HasPrefix(body, "# pptx") {
		t.Errorf("body = %q, want it to start at the heading", body)
	}
}

func TestParseCRLF(t *testing.T) {
	raw := []byte("---\r\nname: docx\r\n---\r\nBody.\r\n")
	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta.Name != "docx" {
		t.Errorf("meta.Name = %q, want docx", meta.Name)
	}
	if strings.TrimSpace(body) != "Body." {
		t.Errorf("body = %q", body)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	meta, body, err := Parse([]byte("# Just markdown\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta != (Meta{}) {
		t.Errorf("meta = %+v, want zero", meta)
	}
	if body != "# Just markdown\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	raw := "---\nname: broken\nno closing fence\n"
	meta, body, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta != (Meta{}) || body != raw {
		t.Errorf("meta = %+v body = %q, want whole file as body", meta, body)
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, _, err := Parse([]byte("---\n\t: [\n---\n")); err == nil {
		t.Fatal("expected an error for malformed frontmatter")
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	content := "---\nname: xlsx\ndescription: Spreadsheets.\n---\nBody.\n"
	if err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, _, err := Read(dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if meta.Name != "xlsx" {
		t.Errorf("meta.Name = %q, want xlsx", meta.Name)
	}

	if _, _, err := Read(t.TempDir()); !os.IsNotExist(err) {
		t.Errorf("Read(empty dir) err = %v, want not-exist", err)
	}
}
