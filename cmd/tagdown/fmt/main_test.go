package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunFmtRequiresSource(t *testing.T) {
	if err := runFmt([]string{}); err == nil {
		t.Fatal("expected error when source missing")
	}
}

func TestRunFmtRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "doc.tag.md")
	if err := os.WriteFile(source, []byte("<task>\nbody\n</task>"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := runFmt([]string{"-source", source}); err != nil {
		t.Fatalf("runFmt returned error: %v", err)
	}

	got, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if string(got) != "<task>\n  body\n</task>" {
		t.Fatalf("unexpected output: %q", string(got))
	}
}

func TestRunFmtHonoursIndentUnit(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "doc.tag.md")
	output := filepath.Join(dir, "doc.pretty.md")
	if err := os.WriteFile(source, []byte("<task>\nbody\n</task>"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := runFmt([]string{"-source", source, "-output", output, "-indent-unit", "\t"}); err != nil {
		t.Fatalf("runFmt returned error: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "<task>\n\tbody\n</task>" {
		t.Fatalf("unexpected output: %q", string(got))
	}
}
