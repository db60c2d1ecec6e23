package preview

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository stores rendered previews keyed by document path.
type Repository interface {
	Upsert(ctx context.Context, record *Record) (*Record, error)
	GetByPath(ctx context.Context, documentPath string) (*Record, error)
	DeleteByPath(ctx context.Context, documentPath string) error
	List(ctx context.Context) ([]*Record, error)
}

// NewRecordRepository builds the generic Bun repository for preview rows.
// The document path is the natural identifier.
func NewRecordRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord: func() *Record { return &Record{} },
		GetID: func(r *Record) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Record, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "document_path"
		},
		GetIdentifierValue: func(r *Record) string {
			return r.DocumentPath
		},
	})
}
