package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-tagdown/cmd/tagdown/internal/bootstrap"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

// report is the JSON document emitted for editor tooling.
type report struct {
	LineCount       int                    `json:"line_count"`
	Tags            []interfaces.Tag       `json:"tags"`
	Headers         []interfaces.Header    `json:"headers"`
	HorizontalRules []int                  `json:"horizontal_rules"`
	FoldingRanges   []interfaces.FoldRange `json:"folding_ranges"`
}

func main() {
	if err := runStructure(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("tagdown structure: %v", err)
	}
}

func runStructure(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tagdown-structure", flag.ExitOnError)
	source := fs.String("source", "", "Path to the dialect document to analyse")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" {
		return fmt.Errorf("source is required")
	}

	module, err := moduleBuilder(bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	raw, err := os.ReadFile(*source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	text := string(raw)
	structure := module.Dialect.Structure(text)

	doc := report{
		LineCount:       structure.LineCount,
		Tags:            structure.Tags,
		Headers:         structure.Headers,
		HorizontalRules: structure.HorizontalRules,
		FoldingRanges:   module.Dialect.FoldingRanges(text),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
