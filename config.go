package tagdown

import "github.com/goliatone/go-tagdown/internal/runtimeconfig"

var (
	ErrMarkdownFeatureRequired    = runtimeconfig.ErrMarkdownFeatureRequired
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrPreviewFeatureRequired     = runtimeconfig.ErrPreviewFeatureRequired
	ErrPreviewDSNRequired         = runtimeconfig.ErrPreviewDSNRequired
	ErrPreviewDriverUnknown       = runtimeconfig.ErrPreviewDriverUnknown
	ErrDialectIndentUnitInvalid   = runtimeconfig.ErrDialectIndentUnitInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	DialectConfig        = runtimeconfig.DialectConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	PreviewConfig        = runtimeconfig.PreviewConfig
	CommandsConfig       = runtimeconfig.CommandsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
