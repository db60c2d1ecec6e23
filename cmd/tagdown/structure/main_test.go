package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRunStructureRequiresSource(t *testing.T) {
	var out bytes.Buffer
	if err := runStructure([]string{}, &out); err == nil {
		t.Fatal("expected error when source missing")
	}
}

func TestRunStructureEmitsReport(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "doc.tag.md")
	content := "# Title\n<task priority=\"high\">\nDo the thing.\n</task>"
	if err := os.WriteFile(source, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	var out bytes.Buffer
	if err := runStructure([]string{"-source", source}, &out); err != nil {
		t.Fatalf("runStructure returned error: %v", err)
	}

	var doc report
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if doc.LineCount != 4 {
		t.Fatalf("unexpected line count: %d", doc.LineCount)
	}
	if len(doc.Headers) != 1 || doc.Headers[0].Text != "Title" {
		t.Fatalf("unexpected headers: %+v", doc.Headers)
	}
	if len(doc.Tags) != 2 {
		t.Fatalf("unexpected tags: %+v", doc.Tags)
	}
	if len(doc.FoldingRanges) == 0 {
		t.Fatal("expected folding ranges")
	}
}
