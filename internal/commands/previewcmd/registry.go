package previewcmd

import (
	"errors"

	"github.com/goliatone/go-tagdown/internal/commands"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the preview command handlers produced by RegisterPreviewCommands.
type HandlerSet struct {
	Render *RenderPreviewHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	renderHandlerOpts []commands.HandlerOption[RenderPreviewCommand]
}

// WithRenderHandlerOptions forwards options to the RenderPreviewHandler constructor.
func WithRenderHandlerOptions(opts ...commands.HandlerOption[RenderPreviewCommand]) Option {
	return func(cfg *options) {
		cfg.renderHandlerOpts = append(cfg.renderHandlerOpts, opts...)
	}
}

// RegisterPreviewCommands builds preview command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations as needed.
func RegisterPreviewCommands(reg CommandRegistry, markdownSvc interfaces.MarkdownService, previewSvc interfaces.PreviewService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if markdownSvc == nil {
		return nil, errors.New("preview command registration: markdown service is nil")
	}
	if previewSvc == nil {
		return nil, errors.New("preview command registration: preview service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "preview")

	renderHandler := NewRenderPreviewHandler(markdownSvc, previewSvc, logger, gates, cfg.renderHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(renderHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Render: renderHandler,
	}, nil
}
