package preview

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Record is the persisted preview row. One row per document path; the ID is
// deterministic so repeated renders update in place.
type Record struct {
	bun.BaseModel `bun:"table:previews,alias:pv"`

	ID           uuid.UUID `bun:",pk,type:uuid"                 json:"id"`
	DocumentPath string    `bun:"document_path,notnull,unique"  json:"document_path"`
	Checksum     []byte    `bun:"checksum"                      json:"checksum,omitempty"`
	Markdown     string    `bun:"markdown,notnull"              json:"markdown"`
	HTML         string    `bun:"html,notnull"                  json:"html"`
	RenderedAt   time.Time `bun:"rendered_at,nullzero"          json:"rendered_at"`
}

// ToPreview converts the stored row into the public shape.
func (r *Record) ToPreview() *interfaces.Preview {
	if r == nil {
		return nil
	}
	return &interfaces.Preview{
		ID:           r.ID,
		DocumentPath: r.DocumentPath,
		Checksum:     append([]byte(nil), r.Checksum...),
		Markdown:     r.Markdown,
		HTML:         r.HTML,
		RenderedAt:   r.RenderedAt,
	}
}

func cloneRecord(src *Record) *Record {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Checksum = append([]byte(nil), src.Checksum...)
	return &copied
}
