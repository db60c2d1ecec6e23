package dialectcmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/goliatone/go-tagdown/internal/commands"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	convertOperation  = "dialect.convert_document"
	beautifyOperation = "dialect.beautify_document"

	outputFileMode = 0o644
)

// ErrCommandsFeatureDisabled is returned when the commands feature flag is disabled at runtime.
var ErrCommandsFeatureDisabled = errors.New("dialect command: feature disabled")

var (
	_ command.Commander[ConvertDocumentCommand]  = (*ConvertDocumentHandler)(nil)
	_ command.Commander[BeautifyDocumentCommand] = (*BeautifyDocumentHandler)(nil)
)

// ConvertDocumentHandler turns dialect documents into standard Markdown via the shared handler foundation.
type ConvertDocumentHandler struct {
	inner *commands.Handler[ConvertDocumentCommand]
}

// NewConvertDocumentHandler creates a handler bound to the supplied dialect service.
func NewConvertDocumentHandler(service interfaces.DialectService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertDocumentCommand]) *ConvertDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ConvertDocumentCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		source, err := os.ReadFile(msg.SourcePath)
		if err != nil {
			return err
		}

		markdown := service.ToMarkdown(string(source))
		if err := os.WriteFile(msg.OutputPath, []byte(markdown), outputFileMode); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"bytes_in":  len(source),
			"bytes_out": len(markdown),
		}).Info("dialect.command.convert_document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDocumentCommand]{
		commands.WithLogger[ConvertDocumentCommand](baseLogger),
		commands.WithOperation[ConvertDocumentCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertDocumentCommand) map[string]any {
			return map[string]any{
				"source_path": msg.SourcePath,
				"output_path": msg.OutputPath,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertDocumentCommand].
func (h *ConvertDocumentHandler) Execute(ctx context.Context, msg ConvertDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BeautifyDocumentHandler re-indents dialect documents via the shared handler foundation.
type BeautifyDocumentHandler struct {
	inner *commands.Handler[BeautifyDocumentCommand]
}

// NewBeautifyDocumentHandler creates a handler bound to the supplied dialect service.
func NewBeautifyDocumentHandler(service interfaces.DialectService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[BeautifyDocumentCommand]) *BeautifyDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BeautifyDocumentCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		source, err := os.ReadFile(msg.SourcePath)
		if err != nil {
			return err
		}

		target := strings.TrimSpace(msg.OutputPath)
		if target == "" {
			target = msg.SourcePath
		}

		beautified := service.Beautify(string(source))
		if err := os.WriteFile(target, []byte(beautified), outputFileMode); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"changed": beautified != string(source),
		}).Info("dialect.command.beautify_document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BeautifyDocumentCommand]{
		commands.WithLogger[BeautifyDocumentCommand](baseLogger),
		commands.WithOperation[BeautifyDocumentCommand](beautifyOperation),
		commands.WithMessageFields(func(msg BeautifyDocumentCommand) map[string]any {
			fields := map[string]any{
				"source_path": msg.SourcePath,
			}
			if strings.TrimSpace(msg.OutputPath) != "" {
				fields["output_path"] = msg.OutputPath
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BeautifyDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BeautifyDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BeautifyDocumentCommand].
func (h *BeautifyDocumentHandler) Execute(ctx context.Context, msg BeautifyDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
