package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how standard Markdown bytes are converted into HTML
// for preview rendering. Implementations must be reusable across calls
// without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown-to-HTML rendering, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file-centric workflows: loading dialect
// documents from disk, converting them into standard Markdown, rendering
// preview HTML, and deriving outlines.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Convert(ctx context.Context, source []byte) ([]byte, error)
	Render(ctx context.Context, source []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	TOC(ctx context.Context, source []byte) ([]TOCEntry, error)
}

// Document represents a dialect file with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath    string
	FrontMatter FrontMatter
	// Body is the raw dialect source with front matter stripped.
	Body []byte
	// BodyMarkdown is the converted standard Markdown; populated by Convert.
	BodyMarkdown []byte
	// BodyHTML is the rendered preview HTML; populated lazily by Render.
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so
	// preview storage can detect changes without re-rendering.
	Checksum []byte
}

// FrontMatter models metadata extracted from document front matter. The
// Custom map keeps domain-specific values without losing type flexibility.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}
