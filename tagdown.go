package tagdown

import (
	"github.com/goliatone/go-tagdown/internal/commands/dialectcmd"
	"github.com/goliatone/go-tagdown/internal/commands/previewcmd"
	"github.com/goliatone/go-tagdown/internal/di"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// DialectService exports the structural parser contract for consumers of the tagdown package.
type DialectService = interfaces.DialectService

// MarkdownService exports the document workflow contract.
type MarkdownService = interfaces.MarkdownService

// PreviewService exports the preview rendering contract.
type PreviewService = interfaces.PreviewService

// Document exports the loaded document DTO.
type Document = interfaces.Document

// FrontMatter exports document metadata.
type FrontMatter = interfaces.FrontMatter

// Structure exports the extracted document structure.
type Structure = interfaces.Structure

// FoldRange exports an editor folding range.
type FoldRange = interfaces.FoldRange

// TOCEntry exports a table-of-contents entry.
type TOCEntry = interfaces.TOCEntry

// Preview exports the persisted preview DTO.
type Preview = interfaces.Preview

// DialectCommands exports the conversion and beautification command handlers.
type DialectCommands = dialectcmd.HandlerSet

// PreviewCommands exports the preview rendering command handlers.
type PreviewCommands = previewcmd.HandlerSet

// Module represents the top level tagdown runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a tagdown module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Dialect returns the configured structural parser and transformer.
func (m *Module) Dialect() DialectService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.DialectService()
}

// Markdown returns the configured document workflow service; nil when the
// markdown feature is disabled.
func (m *Module) Markdown() MarkdownService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownService()
}

// Preview returns the configured preview service; nil when the preview
// feature is disabled.
func (m *Module) Preview() PreviewService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PreviewService()
}

// Commands returns the dialect command handlers; nil when the commands
// feature is disabled.
func (m *Module) Commands() *DialectCommands {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.DialectCommands()
}

// PreviewCommandHandlers returns the preview command handlers; nil when the
// commands or preview feature is disabled.
func (m *Module) PreviewCommandHandlers() *PreviewCommands {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PreviewCommands()
}

// Close releases resources owned by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
