package previewcmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-tagdown/internal/commands"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const renderOperation = "preview.render_document"

// ErrPreviewFeatureDisabled is returned when the preview feature flag is disabled at runtime.
var ErrPreviewFeatureDisabled = errors.New("preview command: feature disabled")

var _ command.Commander[RenderPreviewCommand] = (*RenderPreviewHandler)(nil)

// RenderPreviewHandler loads a document and persists a rendered preview via the shared handler foundation.
type RenderPreviewHandler struct {
	inner *commands.Handler[RenderPreviewCommand]
}

// NewRenderPreviewHandler creates a handler bound to the supplied markdown and preview services.
func NewRenderPreviewHandler(markdownSvc interfaces.MarkdownService, previewSvc interfaces.PreviewService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RenderPreviewCommand]) *RenderPreviewHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderPreviewCommand) error {
		if !gates.previewEnabled() {
			return ErrPreviewFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		doc, err := markdownSvc.Load(ctx, msg.DocumentPath, interfaces.LoadOptions{})
		if err != nil {
			return err
		}

		preview, err := previewSvc.Render(ctx, doc)
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"preview_id": preview.ID,
			"html_bytes": len(preview.HTML),
		}).Info("preview.command.render_document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderPreviewCommand]{
		commands.WithLogger[RenderPreviewCommand](baseLogger),
		commands.WithOperation[RenderPreviewCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderPreviewCommand) map[string]any {
			return map[string]any{
				"document_path": msg.DocumentPath,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderPreviewCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderPreviewHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderPreviewCommand].
func (h *RenderPreviewHandler) Execute(ctx context.Context, msg RenderPreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}
