package tagdown_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tagdown "github.com/goliatone/go-tagdown"
	"github.com/goliatone/go-tagdown/internal/commands/dialectcmd"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
}

func newModule(t *testing.T, mutate func(*tagdown.Config)) (*tagdown.Module, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := tagdown.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = dir
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := tagdown.New(cfg)
	if err != nil {
		t.Fatalf("tagdown.New returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := module.Close(); err != nil {
			t.Fatalf("close module: %v", err)
		}
	})
	return module, dir
}

func TestModuleConvertsDialectDocument(t *testing.T) {
	module, _ := newModule(t, nil)

	got, err := module.Markdown().Convert(context.Background(), []byte("<task priority=\"high\">\nDo the thing.\n</task>"))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := "## task (priority=\"high\")\n\nDo the thing.\n"
	if string(got) != want {
		t.Fatalf("unexpected markdown:\n got %q\nwant %q", string(got), want)
	}
}

func TestModuleStructureAndFolding(t *testing.T) {
	module, _ := newModule(t, nil)

	source := "<checklist owner=\"ana\">\n<step id=\"s1\"/>\nDone.\n</checklist>"
	structure := module.Dialect().Structure(source)
	if len(structure.Tags) != 3 {
		t.Fatalf("expected three tags, got %d", len(structure.Tags))
	}

	ranges := module.Dialect().FoldingRanges(source)
	if len(ranges) != 1 {
		t.Fatalf("expected one folding range, got %d", len(ranges))
	}
	if ranges[0].Start != 0 || ranges[0].End != 3 {
		t.Fatalf("unexpected range: %+v", ranges[0])
	}
}

func TestModuleBeautifyIsIdempotent(t *testing.T) {
	module, _ := newModule(t, nil)

	source := "<task>\n<step>\ndeep\n</step>\n</task>"
	once := module.Dialect().Beautify(source)
	twice := module.Dialect().Beautify(once)
	if once != twice {
		t.Fatalf("beautify not idempotent:\n once %q\ntwice %q", once, twice)
	}
	if !strings.Contains(once, "\n  <step>") {
		t.Fatalf("expected nested indentation, got %q", once)
	}
}

func TestModuleLoadsAndPreviewsDocuments(t *testing.T) {
	module, dir := newModule(t, func(cfg *tagdown.Config) {
		cfg.Features.Preview = true
		cfg.Preview.Enabled = true
	})
	writeDoc(t, dir, "guide.md", "---\ntitle: Release Guide\n---\n<checklist owner=\"ana\">\nShip it.\n</checklist>")

	doc, err := module.Markdown().Load(context.Background(), "guide.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.FrontMatter.Title != "Release Guide" {
		t.Fatalf("unexpected title: %q", doc.FrontMatter.Title)
	}
	if !strings.Contains(string(doc.BodyMarkdown), "## checklist (owner=\"ana\")") {
		t.Fatalf("unexpected markdown body: %q", string(doc.BodyMarkdown))
	}

	preview, err := module.Preview().Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	if !strings.Contains(preview.HTML, "<h2") {
		t.Fatalf("expected heading in preview HTML, got %q", preview.HTML)
	}

	stored, err := module.Preview().Get(context.Background(), doc.FilePath)
	if err != nil {
		t.Fatalf("get preview: %v", err)
	}
	if stored.ID != preview.ID {
		t.Fatalf("expected stable preview identity, got %s and %s", stored.ID, preview.ID)
	}
}

func TestModuleCommandsConvertFiles(t *testing.T) {
	module, dir := newModule(t, func(cfg *tagdown.Config) {
		cfg.Features.Commands = true
		cfg.Commands.Enabled = true
	})
	writeDoc(t, dir, "task.tag.md", "<task>\nbody\n</task>")

	cmds := module.Commands()
	if cmds == nil {
		t.Fatal("expected command handlers")
	}

	output := filepath.Join(dir, "task.md")
	err := cmds.Convert.Execute(context.Background(), dialectcmd.ConvertDocumentCommand{
		SourcePath: filepath.Join(dir, "task.tag.md"),
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("convert command: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "## task\n\nbody\n" {
		t.Fatalf("unexpected converted output: %q", string(got))
	}
}
