package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-tagdown/internal/commands"
	"github.com/goliatone/go-tagdown/internal/commands/dialectcmd"
	"github.com/goliatone/go-tagdown/internal/commands/previewcmd"
	"github.com/goliatone/go-tagdown/internal/dialect"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/internal/logging/console"
	"github.com/goliatone/go-tagdown/internal/logging/gologger"
	"github.com/goliatone/go-tagdown/internal/markdown"
	"github.com/goliatone/go-tagdown/internal/preview"
	"github.com/goliatone/go-tagdown/internal/runtimeconfig"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// ErrPreviewRequiresMarkdown indicates preview wiring without a markdown service to feed it.
var ErrPreviewRequiresMarkdown = errors.New("di: preview feature requires the markdown feature")

// Container wires module dependencies from configuration, preferring
// injected implementations over built-in defaults.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB     *bun.DB
	ownsBunDB bool

	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	parser      interfaces.MarkdownParser
	dialectSvc  interfaces.DialectService
	markdownSvc interfaces.MarkdownService

	previewRepo preview.Repository
	previewSvc  interfaces.PreviewService

	dialectCommands *dialectcmd.HandlerSet
	previewCommands *previewcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB injects an existing database handle for preview persistence.
// The container will not close injected handles.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache enables read caching for persisted preview repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithMarkdownParser overrides the default goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithDialectService overrides the default dialect engine binding.
func WithDialectService(svc interfaces.DialectService) Option {
	return func(c *Container) {
		c.dialectSvc = svc
	}
}

// WithMarkdownService overrides the default markdown service binding.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		c.markdownSvc = svc
	}
}

// WithPreviewRepository overrides the store selected by Config.Preview.Driver.
func WithPreviewRepository(repo preview.Repository) Option {
	return func(c *Container) {
		c.previewRepo = repo
	}
}

// WithPreviewService overrides the default preview service binding.
func WithPreviewService(svc interfaces.PreviewService) Option {
	return func(c *Container) {
		c.previewSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureDialect()
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}
	if err := c.configurePreview(); err != nil {
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoggerProvider returns the configured provider, which may be nil when the
// logging feature is disabled and no provider was injected.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DialectService returns the structural parser and transformer.
func (c *Container) DialectService() interfaces.DialectService {
	return c.dialectSvc
}

// MarkdownService returns the document workflow service; nil when the
// markdown feature is disabled.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	return c.markdownSvc
}

// PreviewService returns the preview renderer; nil when the preview feature
// is disabled.
func (c *Container) PreviewService() interfaces.PreviewService {
	return c.previewSvc
}

// PreviewRepository returns the configured preview store; nil when the
// preview feature is disabled.
func (c *Container) PreviewRepository() preview.Repository {
	return c.previewRepo
}

// DB returns the database handle backing persisted previews, if any.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// DialectCommands returns the command handlers for conversion and
// beautification; nil when the commands feature is disabled.
func (c *Container) DialectCommands() *dialectcmd.HandlerSet {
	return c.dialectCommands
}

// PreviewCommands returns the preview rendering command handlers; nil when
// the commands or preview feature is disabled.
func (c *Container) PreviewCommands() *previewcmd.HandlerSet {
	return c.previewCommands
}

// Close releases resources owned by the container, such as database handles
// it opened itself. Injected handles are left untouched.
func (c *Container) Close() error {
	if c.bunDB != nil && c.ownsBunDB {
		err := c.bunDB.Close()
		c.bunDB = nil
		c.ownsBunDB = false
		return err
	}
	return nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	case "", "console":
		c.loggerProvider = console.NewProvider(console.Options{})
	default:
		return fmt.Errorf("di: unsupported logging provider %q", c.Config.Logging.Provider)
	}
	return nil
}

func (c *Container) configureDialect() {
	if c.dialectSvc != nil {
		return
	}

	engineOpts := []dialect.Option{
		dialect.WithLogger(logging.DialectLogger(c.loggerProvider)),
	}
	if unit := c.Config.Dialect.IndentUnit; unit != "" {
		engineOpts = append(engineOpts, dialect.WithIndentUnit(unit))
	}
	c.dialectSvc = dialect.NewEngine(engineOpts...)
}

func (c *Container) configureMarkdown() error {
	if c.markdownSvc != nil {
		return nil
	}
	if !c.Config.Features.Markdown || !c.Config.Markdown.Enabled {
		return nil
	}

	parseOpts := interfaces.ParseOptions{
		Extensions: c.Config.Markdown.Parser.Extensions,
		Sanitize:   c.Config.Markdown.Parser.Sanitize,
		HardWraps:  c.Config.Markdown.Parser.HardWraps,
		SafeMode:   c.Config.Markdown.Parser.SafeMode,
	}

	parser := c.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(parseOpts)
		c.parser = parser
	}

	svc, err := markdown.NewService(markdown.Config{
		BasePath:  c.Config.Markdown.ContentDir,
		Pattern:   c.Config.Markdown.Pattern,
		Recursive: c.Config.Markdown.Recursive,
		Parser:    parseOpts,
	}, c.dialectSvc, parser, logging.MarkdownLogger(c.loggerProvider))
	if err != nil {
		return err
	}
	c.markdownSvc = svc
	return nil
}

func (c *Container) configurePreview() error {
	if c.previewSvc != nil {
		return nil
	}
	if !c.Config.Features.Preview || !c.Config.Preview.Enabled {
		return nil
	}
	if c.markdownSvc == nil {
		return ErrPreviewRequiresMarkdown
	}

	if c.previewRepo == nil {
		switch strings.ToLower(strings.TrimSpace(c.Config.Preview.Driver)) {
		case "", "memory":
			c.previewRepo = preview.NewMemoryPreviewRepository()
		case "sqlite":
			if err := c.openPreviewDB(); err != nil {
				return err
			}
			c.previewRepo = preview.NewBunPreviewRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		default:
			return fmt.Errorf("di: unsupported preview driver %q", c.Config.Preview.Driver)
		}
	}

	svc, err := preview.NewService(c.markdownSvc, c.previewRepo,
		preview.WithLogger(logging.PreviewLogger(c.loggerProvider)))
	if err != nil {
		return err
	}
	c.previewSvc = svc
	return nil
}

func (c *Container) openPreviewDB() error {
	if c.bunDB != nil {
		return c.ensurePreviewSchema()
	}

	sqldb, err := sql.Open("sqlite3", c.Config.Preview.DSN)
	if err != nil {
		return fmt.Errorf("di: open preview store: %w", err)
	}
	c.bunDB = bun.NewDB(sqldb, sqlitedialect.New())
	c.ownsBunDB = true
	return c.ensurePreviewSchema()
}

func (c *Container) ensurePreviewSchema() error {
	_, err := c.bunDB.NewCreateTable().
		Model((*preview.Record)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		return fmt.Errorf("di: ensure preview schema: %w", err)
	}
	return nil
}

func (c *Container) configureCommands() error {
	if !c.Config.Features.Commands || !c.Config.Commands.Enabled {
		return nil
	}

	gateCommands := func() bool { return c.Config.Features.Commands }

	var dialectOpts []dialectcmd.Option
	if timeout := c.Config.Commands.Timeout; timeout > 0 {
		dialectOpts = append(dialectOpts,
			dialectcmd.WithConvertHandlerOptions(commands.WithTimeout[dialectcmd.ConvertDocumentCommand](timeout)),
			dialectcmd.WithBeautifyHandlerOptions(commands.WithTimeout[dialectcmd.BeautifyDocumentCommand](timeout)),
		)
	}

	dialectSet, err := dialectcmd.RegisterDialectCommands(nil, c.dialectSvc, c.loggerProvider, dialectcmd.FeatureGates{
		CommandsEnabled: gateCommands,
	}, dialectOpts...)
	if err != nil {
		return err
	}
	c.dialectCommands = dialectSet

	if c.previewSvc != nil && c.markdownSvc != nil {
		var previewOpts []previewcmd.Option
		if timeout := c.Config.Commands.Timeout; timeout > 0 {
			previewOpts = append(previewOpts,
				previewcmd.WithRenderHandlerOptions(commands.WithTimeout[previewcmd.RenderPreviewCommand](timeout)),
			)
		}

		previewSet, err := previewcmd.RegisterPreviewCommands(nil, c.markdownSvc, c.previewSvc, c.loggerProvider, previewcmd.FeatureGates{
			PreviewEnabled: func() bool { return c.Config.Features.Preview },
		}, previewOpts...)
		if err != nil {
			return err
		}
		c.previewCommands = previewSet
	}

	return nil
}
