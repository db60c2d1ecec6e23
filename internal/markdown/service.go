package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Config controls how the service discovers, converts, and renders files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    interfaces.ParseOptions
}

// Service implements interfaces.MarkdownService for filesystem-backed
// documents. The dialect engine supplies structure-aware conversion, the
// parser turns the resulting Markdown into preview HTML.
type Service struct {
	cfg     Config
	dialect interfaces.DialectService
	parser  interfaces.MarkdownParser
	loader  *Loader
	logger  interfaces.Logger
}

// NewService constructs a service over the configured base path. When parser
// is nil a goldmark parser with the configured defaults is created; when
// logger is nil logging is disabled.
func NewService(cfg Config, dialectSvc interfaces.DialectService, parser interfaces.MarkdownParser, logger interfaces.Logger) (*Service, error) {
	if dialectSvc == nil {
		return nil, errors.New("markdown service: dialect service is required")
	}

	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:     cfg,
		dialect: dialectSvc,
		parser:  parser,
		loader:  loader,
		logger:  logger,
	}, nil
}

// NewServiceWithFS behaves like NewService but reads from the supplied
// filesystem, which keeps tests and embedded content off the host disk.
func NewServiceWithFS(cfg Config, filesystem fs.FS, dialectSvc interfaces.DialectService, parser interfaces.MarkdownParser, logger interfaces.Logger) (*Service, error) {
	if dialectSvc == nil {
		return nil, errors.New("markdown service: dialect service is required")
	}
	if filesystem == nil {
		return nil, errors.New("markdown service: filesystem is required")
	}
	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:     cfg,
		dialect: dialectSvc,
		parser:  parser,
		loader:  loader,
		logger:  logger,
	}, nil
}

// Load reads a single document relative to the configured base path,
// converting its body and rendering preview HTML.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}
	if err := s.convertAndRender(ctx, result.Document, opts.Parser); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// LoadDirectory reads every document within the supplied directory.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	results, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		if err := s.convertAndRender(ctx, result.Document, opts.Parser); err != nil {
			return nil, err
		}
		docs = append(docs, result.Document)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})
	s.logger.Debug("directory loaded", "dir", dir, "documents", len(docs))
	return docs, nil
}

// Convert rewrites dialect source into standard Markdown.
func (s *Service) Convert(ctx context.Context, source []byte) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return []byte(s.dialect.ToMarkdown(string(source))), nil
}

// Render converts dialect source into Markdown and then into HTML using the
// configured parser.
func (s *Service) Render(ctx context.Context, source []byte, opts interfaces.ParseOptions) ([]byte, error) {
	converted, err := s.Convert(ctx, source)
	if err != nil {
		return nil, err
	}
	return s.parser.ParseWithOptions(converted, mergeParseOptions(s.cfg.Parser, opts))
}

// RenderDocument converts and renders the document body, caching both the
// Markdown and HTML on the document.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown service: document is nil")
	}
	if err := s.convertAndRender(ctx, doc, opts); err != nil {
		return nil, err
	}
	return doc.BodyHTML, nil
}

// TOC derives the anchored outline of the dialect source: native Markdown
// headers merged with headers synthesised from tags.
func (s *Service) TOC(ctx context.Context, source []byte) ([]interfaces.TOCEntry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	entries := deriveTOC(s.dialect.Structure(string(source)))
	return entries, nil
}

func (s *Service) convertAndRender(ctx context.Context, doc *interfaces.Document, overrides interfaces.ParseOptions) error {
	converted, err := s.Convert(ctx, doc.Body)
	if err != nil {
		return fmt.Errorf("convert document %s: %w", doc.FilePath, err)
	}
	doc.BodyMarkdown = converted

	html, err := s.parser.ParseWithOptions(converted, mergeParseOptions(s.cfg.Parser, overrides))
	if err != nil {
		return fmt.Errorf("render document %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return nil
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

func toLoaderParams(opts interfaces.LoadOptions) LoadParams {
	return LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	}
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}

var _ interfaces.MarkdownService = (*Service)(nil)
