package preview

import (
	"context"
	"sort"
	"sync"
)

// MemoryPreviewRepository is an in-memory implementation for tests and
// ephemeral previews.
type MemoryPreviewRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryPreviewRepository creates an empty in-memory repository.
func NewMemoryPreviewRepository() *MemoryPreviewRepository {
	return &MemoryPreviewRepository{
		records: make(map[string]*Record),
	}
}

// Upsert stores the record, replacing any previous render of the same path.
func (m *MemoryPreviewRepository) Upsert(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	m.records[copied.DocumentPath] = copied
	return cloneRecord(copied), nil
}

// GetByPath retrieves a preview, returning NotFoundError when absent.
func (m *MemoryPreviewRepository) GetByPath(_ context.Context, documentPath string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[documentPath]
	if !ok {
		return nil, &NotFoundError{Resource: "preview", Key: documentPath}
	}
	return cloneRecord(rec), nil
}

// DeleteByPath removes the stored preview; missing rows are ignored.
func (m *MemoryPreviewRepository) DeleteByPath(_ context.Context, documentPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, documentPath)
	return nil
}

// List returns all stored previews ordered by document path.
func (m *MemoryPreviewRepository) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DocumentPath < out[j].DocumentPath
	})
	return out, nil
}

var _ Repository = (*MemoryPreviewRepository)(nil)
