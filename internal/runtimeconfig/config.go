package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMarkdownFeatureRequired indicates markdown configuration without the feature flag.
var ErrMarkdownFeatureRequired = errors.New("tagdown config: markdown feature must be enabled to configure markdown")

// ErrMarkdownContentDirRequired indicates a missing content directory.
var ErrMarkdownContentDirRequired = errors.New("tagdown config: markdown content directory is required when markdown is enabled")

// ErrPreviewFeatureRequired indicates preview configuration without the feature flag.
var ErrPreviewFeatureRequired = errors.New("tagdown config: preview feature must be enabled to configure preview storage")

// ErrPreviewDSNRequired indicates a persistent preview store without a DSN.
var ErrPreviewDSNRequired = errors.New("tagdown config: preview store DSN is required when the sqlite driver is selected")

// ErrPreviewDriverUnknown indicates an unsupported preview store driver.
var ErrPreviewDriverUnknown = errors.New("tagdown config: preview store driver is invalid")

// ErrDialectIndentUnitInvalid indicates an indent unit containing non-space characters.
var ErrDialectIndentUnitInvalid = errors.New("tagdown config: dialect indent unit must be whitespace only")

var ErrLoggingProviderRequired = errors.New("tagdown config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("tagdown config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("tagdown config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("tagdown config: logging format is invalid")

// Config aggregates feature flags and component bindings for the tagdown module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Dialect  DialectConfig
	Markdown MarkdownConfig
	Preview  PreviewConfig
	Commands CommandsConfig
	Logging  LoggingConfig
	Features Features
}

// DialectConfig captures behaviour of the structure parser and beautifier.
type DialectConfig struct {
	// IndentUnit is the whitespace repeated once per nesting level by the
	// beautifier. Defaults to two spaces.
	IndentUnit string
}

// MarkdownConfig captures filesystem and renderer behaviour for document loading.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// PreviewConfig captures preview persistence and temp-file behaviour.
type PreviewConfig struct {
	Enabled bool
	// Driver selects the preview store backend: "memory" or "sqlite".
	Driver string
	// DSN is the sqlite data source when Driver is "sqlite".
	DSN string
	// Dir is where preview sessions place temporary files. Empty selects
	// the system temp directory.
	Dir string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Markdown bool
	Preview  bool
	Commands bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Dialect: DialectConfig{
			IndentUnit: "  ",
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Preview: PreviewConfig{
			Driver: "memory",
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if unit := cfg.Dialect.IndentUnit; unit != "" && strings.TrimSpace(unit) != "" {
		return ErrDialectIndentUnitInvalid
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Preview.Enabled {
		if !cfg.Features.Preview {
			return ErrPreviewFeatureRequired
		}
		driver := normalizeDriver(cfg.Preview.Driver)
		switch driver {
		case "", "memory":
		case "sqlite":
			if strings.TrimSpace(cfg.Preview.DSN) == "" {
				return ErrPreviewDSNRequired
			}
		default:
			return fmt.Errorf("%w: %s", ErrPreviewDriverUnknown, driver)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
