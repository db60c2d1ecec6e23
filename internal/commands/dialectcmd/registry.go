package dialectcmd

import (
	"errors"

	"github.com/goliatone/go-tagdown/internal/commands"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the dialect command handlers produced by RegisterDialectCommands.
type HandlerSet struct {
	Convert  *ConvertDocumentHandler
	Beautify *BeautifyDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	convertHandlerOpts  []commands.HandlerOption[ConvertDocumentCommand]
	beautifyHandlerOpts []commands.HandlerOption[BeautifyDocumentCommand]
}

// WithConvertHandlerOptions forwards options to the ConvertDocumentHandler constructor.
func WithConvertHandlerOptions(opts ...commands.HandlerOption[ConvertDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.convertHandlerOpts = append(cfg.convertHandlerOpts, opts...)
	}
}

// WithBeautifyHandlerOptions forwards options to the BeautifyDocumentHandler constructor.
func WithBeautifyHandlerOptions(opts ...commands.HandlerOption[BeautifyDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.beautifyHandlerOpts = append(cfg.beautifyHandlerOpts, opts...)
	}
}

// RegisterDialectCommands builds dialect command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations as needed.
func RegisterDialectCommands(reg CommandRegistry, service interfaces.DialectService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("dialect command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "dialect")

	convertHandler := NewConvertDocumentHandler(service, logger, gates, cfg.convertHandlerOpts...)
	beautifyHandler := NewBeautifyDocumentHandler(service, logger, gates, cfg.beautifyHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(convertHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(beautifyHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Convert:  convertHandler,
		Beautify: beautifyHandler,
	}, nil
}
