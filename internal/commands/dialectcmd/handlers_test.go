package dialectcmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-tagdown/internal/dialect"
	goerrors "github.com/goliatone/go-errors"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestConvertDocumentHandlerWritesMarkdown(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "doc.tag.md", "<task priority=\"high\">\nDo the thing.\n</task>")
	output := filepath.Join(dir, "doc.md")

	h := NewConvertDocumentHandler(dialect.NewEngine(), nil, FeatureGates{})
	err := h.Execute(context.Background(), ConvertDocumentCommand{
		SourcePath: source,
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "## task (priority=\"high\")\n\nDo the thing.\n"
	if string(got) != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", string(got), want)
	}
}

func TestConvertDocumentHandlerMissingSource(t *testing.T) {
	dir := t.TempDir()

	h := NewConvertDocumentHandler(dialect.NewEngine(), nil, FeatureGates{})
	err := h.Execute(context.Background(), ConvertDocumentCommand{
		SourcePath: filepath.Join(dir, "missing.md"),
		OutputPath: filepath.Join(dir, "out.md"),
	})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestConvertDocumentHandlerHonoursFeatureGate(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "doc.tag.md", "<task>\nbody\n</task>")

	h := NewConvertDocumentHandler(dialect.NewEngine(), nil, FeatureGates{
		CommandsEnabled: func() bool { return false },
	})
	err := h.Execute(context.Background(), ConvertDocumentCommand{
		SourcePath: source,
		OutputPath: filepath.Join(dir, "out.md"),
	})
	if err == nil {
		t.Fatal("expected feature gate error")
	}
	if !errors.Is(err, ErrCommandsFeatureDisabled) {
		t.Fatalf("expected ErrCommandsFeatureDisabled, got %v", err)
	}
}

func TestBeautifyDocumentHandlerInPlace(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "doc.tag.md", "<task>\nbody\n</task>")

	h := NewBeautifyDocumentHandler(dialect.NewEngine(), nil, FeatureGates{})
	err := h.Execute(context.Background(), BeautifyDocumentCommand{
		SourcePath: source,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	got, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	want := "<task>\n  body\n</task>"
	if string(got) != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", string(got), want)
	}
}

func TestBeautifyDocumentHandlerSeparateOutput(t *testing.T) {
	dir := t.TempDir()
	original := "<task>\nbody\n</task>"
	source := writeSource(t, dir, "doc.tag.md", original)
	output := filepath.Join(dir, "doc.pretty.md")

	h := NewBeautifyDocumentHandler(dialect.NewEngine(), nil, FeatureGates{})
	err := h.Execute(context.Background(), BeautifyDocumentCommand{
		SourcePath: source,
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	kept, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if string(kept) != original {
		t.Fatalf("source changed: %q", string(kept))
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "<task>\n  body\n</task>" {
		t.Fatalf("unexpected output: %q", string(got))
	}
}
