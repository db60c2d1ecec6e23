package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-tagdown/cmd/tagdown/internal/bootstrap"
	"github.com/goliatone/go-tagdown/internal/preview"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("tagdown preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("tagdown-preview", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the dialect content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering documents")
	document := fs.String("document", "", "Document to preview, relative to the content root")
	driver := fs.String("driver", "memory", "Preview store driver: memory or sqlite")
	dsn := fs.String("dsn", "", "Preview store DSN when the sqlite driver is selected")
	outDir := fs.String("out-dir", "", "Directory for the preview HTML file (defaults to the system temp directory)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *document == "" {
		return fmt.Errorf("document is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		EnablePreview: true,
		PreviewDriver: *driver,
		PreviewDSN:    *dsn,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	doc, err := module.Markdown.Load(ctx, *document, interfaces.LoadOptions{})
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	rendered, err := module.Preview.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	session := preview.NewSession(doc.FilePath,
		preview.WithSessionDir(*outDir),
		preview.WithSessionLogger(module.Logger),
	)
	if err := session.Write([]byte(rendered.HTML)); err != nil {
		return fmt.Errorf("write preview file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "preview for %s written to %s\n", doc.FilePath, session.Path())

	return nil
}
