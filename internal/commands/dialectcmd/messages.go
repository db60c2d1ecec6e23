package dialectcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	convertDocumentMessageType  = "tagdown.dialect.convert_document"
	beautifyDocumentMessageType = "tagdown.dialect.beautify_document"
)

// ConvertDocumentCommand converts a dialect document on disk into standard
// Markdown, writing the result to OutputPath. Source and output must differ
// so a conversion never destroys the dialect original.
type ConvertDocumentCommand struct {
	// SourcePath selects the dialect document to convert.
	SourcePath string `json:"source_path"`
	// OutputPath receives the converted Markdown.
	OutputPath string `json:"output_path"`
}

// Type implements command.Message.
func (ConvertDocumentCommand) Type() string { return convertDocumentMessageType }

// Validate ensures both paths are present and distinct before handlers execute.
func (cmd ConvertDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourcePath, validation.Required, validation.By(nonBlank("tagdown.dialect.convert_document.source_required", "source path is required"))),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(nonBlank("tagdown.dialect.convert_document.output_required", "output path is required")), validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == strings.TrimSpace(cmd.SourcePath) {
				return validation.NewError("tagdown.dialect.convert_document.output_distinct", "output path must differ from source path")
			}
			return nil
		})),
	)
}

// BeautifyDocumentCommand re-indents a dialect document by tag nesting depth.
// When OutputPath is empty the document is rewritten in place.
type BeautifyDocumentCommand struct {
	// SourcePath selects the dialect document to re-indent.
	SourcePath string `json:"source_path"`
	// OutputPath receives the beautified text; empty rewrites SourcePath.
	OutputPath string `json:"output_path,omitempty"`
}

// Type implements command.Message.
func (BeautifyDocumentCommand) Type() string { return beautifyDocumentMessageType }

// Validate ensures the source path is present before handlers execute.
func (cmd BeautifyDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourcePath, validation.Required, validation.By(nonBlank("tagdown.dialect.beautify_document.source_required", "source path is required"))),
	)
}

func nonBlank(code, message string) func(value any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
