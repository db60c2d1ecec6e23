package dialect

import (
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Engine implements interfaces.DialectService. It carries no per-document
// state; every method parses the supplied text from scratch, so concurrent
// calls are safe.
type Engine struct {
	logger     interfaces.Logger
	indentUnit string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for structural debug output.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIndentUnit overrides the per-level indentation unit used by Beautify.
func WithIndentUnit(unit string) Option {
	return func(e *Engine) {
		if unit != "" {
			e.indentUnit = unit
		}
	}
}

// NewEngine creates a dialect engine with defaults suitable for library use.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		logger:     logging.NoOp(),
		indentUnit: DefaultIndentUnit,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Structure runs the single-pass extractor over the document text.
func (e *Engine) Structure(text string) *interfaces.Structure {
	structure := Extract(text)
	e.logger.Debug("document structure extracted",
		"lines", structure.LineCount,
		"tags", len(structure.Tags),
		"headers", len(structure.Headers),
		"rules", len(structure.HorizontalRules),
		"fences", len(structure.Fences),
	)
	return structure
}

// ToMarkdown converts dialect text into standard Markdown.
func (e *Engine) ToMarkdown(text string) string {
	return Transform(text)
}

// FoldingRanges returns tag, header outline, and code block ranges.
func (e *Engine) FoldingRanges(text string) []interfaces.FoldRange {
	ranges := FoldRanges(Extract(text))
	e.logger.Debug("folding ranges derived", "count", len(ranges))
	return ranges
}

// Beautify re-indents the document by nesting depth.
func (e *Engine) Beautify(text string) string {
	return Beautify(text, e.indentUnit)
}

// TOC returns the document outline. Not part of interfaces.DialectService;
// the markdown service uses it to build anchored tables of contents.
func (e *Engine) TOC(text string) []interfaces.TOCEntry {
	return TOC(Extract(text))
}

var _ interfaces.DialectService = (*Engine)(nil)
