package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-tagdown/cmd/tagdown/internal/bootstrap"
	"github.com/goliatone/go-tagdown/internal/commands/dialectcmd"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runFmt(os.Args[1:]); err != nil {
		log.Fatalf("tagdown fmt: %v", err)
	}
}

func runFmt(args []string) error {
	fs := flag.NewFlagSet("tagdown-fmt", flag.ExitOnError)
	source := fs.String("source", "", "Path to the dialect document to re-indent")
	output := fs.String("output", "", "Optional output path; empty rewrites the source in place")
	indentUnit := fs.String("indent-unit", "", "Indentation unit repeated once per nesting level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" {
		return fmt.Errorf("source is required")
	}

	module, err := moduleBuilder(bootstrap.Options{IndentUnit: *indentUnit})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := dialectcmd.NewBeautifyDocumentHandler(module.Dialect, module.Logger, dialectcmd.FeatureGates{})
	cmd := dialectcmd.BeautifyDocumentCommand{
		SourcePath: *source,
		OutputPath: *output,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute beautify command: %w", err)
	}

	target := *output
	if target == "" {
		target = *source
	}
	fmt.Fprintf(os.Stdout, "formatted %s\n", target)

	return nil
}
