package preview

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunPreviewRepository persists previews through go-repository-bun, with
// optional read caching.
type BunPreviewRepository struct {
	repo repository.Repository[*Record]
}

// NewBunPreviewRepository constructs an uncached Bun-backed repository.
func NewBunPreviewRepository(db *bun.DB) *BunPreviewRepository {
	return NewBunPreviewRepositoryWithCache(db, nil, nil)
}

// NewBunPreviewRepositoryWithCache constructs a repository with optional
// caching; passing nil for either cache collaborator disables it.
func NewBunPreviewRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPreviewRepository {
	base := NewRecordRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunPreviewRepository{repo: wrapped}
}

// Upsert creates the row on first render and updates it afterwards.
func (r *BunPreviewRepository) Upsert(ctx context.Context, record *Record) (*Record, error) {
	existing, err := r.repo.GetByIdentifier(ctx, record.DocumentPath)
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, mapRepositoryError(err, record.DocumentPath)
		}
		created, err := r.repo.Create(ctx, record)
		if err != nil {
			return nil, mapRepositoryError(err, record.DocumentPath)
		}
		return created, nil
	}

	record.ID = existing.ID
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.DocumentPath)
	}
	return updated, nil
}

// GetByPath returns the stored preview for the document path.
func (r *BunPreviewRepository) GetByPath(ctx context.Context, documentPath string) (*Record, error) {
	result, err := r.repo.GetByIdentifier(ctx, documentPath)
	if err != nil {
		return nil, mapRepositoryError(err, documentPath)
	}
	return result, nil
}

// DeleteByPath removes the stored preview for the document path. Deleting a
// missing row is not an error.
func (r *BunPreviewRepository) DeleteByPath(ctx context.Context, documentPath string) error {
	existing, err := r.repo.GetByIdentifier(ctx, documentPath)
	if err != nil {
		mapped := mapRepositoryError(err, documentPath)
		var notFound *NotFoundError
		if errors.As(mapped, &notFound) {
			return nil
		}
		return mapped
	}
	if err := r.repo.Delete(ctx, existing); err != nil {
		return mapRepositoryError(err, documentPath)
	}
	return nil
}

// List returns every stored preview.
func (r *BunPreviewRepository) List(ctx context.Context) ([]*Record, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: "preview",
			Key:      key,
		}
	}
	return fmt.Errorf("preview repository error: %w", err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

var _ Repository = (*BunPreviewRepository)(nil)
