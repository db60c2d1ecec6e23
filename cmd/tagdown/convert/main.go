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
	if err := runConvert(os.Args[1:]); err != nil {
		log.Fatalf("tagdown convert: %v", err)
	}
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("tagdown-convert", flag.ExitOnError)
	source := fs.String("source", "", "Path to the dialect document to convert")
	output := fs.String("output", "", "Path that receives the converted Markdown")
	indentUnit := fs.String("indent-unit", "", "Indentation unit used by the structure parser")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" {
		return fmt.Errorf("source is required")
	}
	if *output == "" {
		return fmt.Errorf("output is required")
	}

	module, err := moduleBuilder(bootstrap.Options{IndentUnit: *indentUnit})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := dialectcmd.NewConvertDocumentHandler(module.Dialect, module.Logger, dialectcmd.FeatureGates{})
	cmd := dialectcmd.ConvertDocumentCommand{
		SourcePath: *source,
		OutputPath: *output,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute convert command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "converted %s into %s\n", *source, *output)

	return nil
}
