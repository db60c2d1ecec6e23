package previewcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const renderPreviewMessageType = "tagdown.preview.render_document"

// RenderPreviewCommand loads a dialect document and renders a persisted
// preview for it. DocumentPath is resolved against the markdown service's
// configured content directory.
type RenderPreviewCommand struct {
	// DocumentPath selects the document to render, relative to the content directory.
	DocumentPath string `json:"document_path"`
}

// Type implements command.Message.
func (RenderPreviewCommand) Type() string { return renderPreviewMessageType }

// Validate ensures the document path is present before handlers execute.
func (cmd RenderPreviewCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.DocumentPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("tagdown.preview.render_document.path_required", "document path is required")
			}
			return nil
		})),
	)
}
