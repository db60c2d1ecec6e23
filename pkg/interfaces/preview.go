package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Preview is the persisted result of rendering one document. IDs are
// deterministic per document path so repeated renders upsert the same row.
type Preview struct {
	ID           uuid.UUID `json:"id"`
	DocumentPath string    `json:"document_path"`
	Checksum     []byte    `json:"checksum"`
	Markdown     string    `json:"markdown"`
	HTML         string    `json:"html"`
	RenderedAt   time.Time `json:"rendered_at"`
}

// PreviewService renders documents for display and keeps the preview store
// in sync with the latest render.
type PreviewService interface {
	// Render converts and renders the document, persisting the result.
	Render(ctx context.Context, doc *Document) (*Preview, error)
	// Get returns the most recent persisted preview for the document path.
	Get(ctx context.Context, documentPath string) (*Preview, error)
}
