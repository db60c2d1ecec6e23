package preview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-tagdown/internal/identity"
)

func TestMemoryRepositoryUpsertAndGet(t *testing.T) {
	repo := NewMemoryPreviewRepository()
	ctx := context.Background()

	record := &Record{
		ID:           identity.PreviewUUID("docs/guide.md"),
		DocumentPath: "docs/guide.md",
		Markdown:     "## guide\n",
		HTML:         "<h2>guide</h2>",
		RenderedAt:   time.Now().UTC(),
	}

	if _, err := repo.Upsert(ctx, record); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	fetched, err := repo.GetByPath(ctx, "docs/guide.md")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if fetched.HTML != record.HTML {
		t.Fatalf("unexpected content: %q", fetched.HTML)
	}

	// Mutating the returned copy must not touch the stored record.
	fetched.HTML = "tampered"
	again, err := repo.GetByPath(ctx, "docs/guide.md")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if again.HTML != record.HTML {
		t.Fatalf("repository leaked internal state: %q", again.HTML)
	}
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryPreviewRepository()

	var notFound *NotFoundError
	if _, err := repo.GetByPath(context.Background(), "missing.md"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestMemoryRepositoryListSorted(t *testing.T) {
	repo := NewMemoryPreviewRepository()
	ctx := context.Background()

	for _, path := range []string{"b.md", "a.md", "c.md"} {
		record := &Record{
			ID:           identity.PreviewUUID(path),
			DocumentPath: path,
			Markdown:     "m",
			HTML:         "h",
		}
		if _, err := repo.Upsert(ctx, record); err != nil {
			t.Fatalf("Upsert %s: %v", path, err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 || records[0].DocumentPath != "a.md" || records[2].DocumentPath != "c.md" {
		t.Fatalf("expected sorted list, got %+v", records)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryPreviewRepository()
	ctx := context.Background()

	record := &Record{ID: identity.PreviewUUID("a.md"), DocumentPath: "a.md"}
	if _, err := repo.Upsert(ctx, record); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.DeleteByPath(ctx, "a.md"); err != nil {
		t.Fatalf("DeleteByPath: %v", err)
	}
	if err := repo.DeleteByPath(ctx, "a.md"); err != nil {
		t.Fatalf("deleting a missing row must not error: %v", err)
	}
}
