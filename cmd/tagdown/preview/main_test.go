package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPreviewRequiresDocument(t *testing.T) {
	if err := runPreview([]string{}); err == nil {
		t.Fatal("expected error when document missing")
	}
}

func TestRunPreviewWritesSessionFile(t *testing.T) {
	contentDir := t.TempDir()
	outDir := t.TempDir()
	doc := filepath.Join(contentDir, "guide.md")
	if err := os.WriteFile(doc, []byte("<task>\nbody\n</task>"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	err := runPreview([]string{
		"-content-dir", contentDir,
		"-document", "guide.md",
		"-out-dir", outDir,
	})
	if err != nil {
		t.Fatalf("runPreview returned error: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one preview file, got %d", len(entries))
	}

	html, err := os.ReadFile(filepath.Join(outDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read preview file: %v", err)
	}
	if !strings.Contains(string(html), "<h2") {
		t.Fatalf("expected heading markup, got %q", string(html))
	}
}
