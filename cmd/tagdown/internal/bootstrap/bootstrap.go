package bootstrap

import (
	"fmt"
	"strings"

	tagdown "github.com/goliatone/go-tagdown"
	"github.com/goliatone/go-tagdown/internal/di"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Options captures configuration for tagdown CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	IndentUnit     string
	EnableMarkdown bool
	EnablePreview  bool
	PreviewDriver  string
	PreviewDSN     string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the tagdown module and the services CLI entry points consume.
type Module struct {
	Module   *tagdown.Module
	Dialect  interfaces.DialectService
	Markdown interfaces.MarkdownService
	Preview  interfaces.PreviewService
	Logger   interfaces.Logger
}

// BuildModule constructs a tagdown module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := tagdown.DefaultConfig()

	if unit := opts.IndentUnit; unit != "" {
		cfg.Dialect.IndentUnit = unit
	}

	if opts.EnableMarkdown || opts.EnablePreview {
		cfg.Features.Markdown = true
		cfg.Markdown.Enabled = true
		cfg.Markdown.ContentDir = strings.TrimSpace(opts.ContentDir)
		if cfg.Markdown.ContentDir == "" {
			cfg.Markdown.ContentDir = "content"
		}
		if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
			cfg.Markdown.Pattern = trimmed
		}
		cfg.Markdown.Recursive = opts.Recursive
	}

	if opts.EnablePreview {
		cfg.Features.Preview = true
		cfg.Preview.Enabled = true
		if driver := strings.TrimSpace(opts.PreviewDriver); driver != "" {
			cfg.Preview.Driver = driver
		}
		if dsn := strings.TrimSpace(opts.PreviewDSN); dsn != "" {
			cfg.Preview.DSN = dsn
		}
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := tagdown.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise tagdown module: %w", err)
	}

	if opts.EnableMarkdown && module.Markdown() == nil {
		return nil, fmt.Errorf("markdown service not configured; ensure Features.Markdown is enabled")
	}
	if opts.EnablePreview && module.Preview() == nil {
		return nil, fmt.Errorf("preview service not configured; ensure Features.Preview is enabled")
	}

	logger := logging.DialectLogger(module.Container().LoggerProvider())

	return &Module{
		Module:   module,
		Dialect:  module.Dialect(),
		Markdown: module.Markdown(),
		Preview:  module.Preview(),
		Logger:   logger,
	}, nil
}
