package preview

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-tagdown/internal/identity"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Service renders documents and keeps the preview store in sync with the
// latest render.
type Service struct {
	markdown interfaces.MarkdownService
	repo     Repository
	logger   interfaces.Logger
	now      func() time.Time
}

// ServiceOption configures the preview service.
type ServiceOption func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the render timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the preview workflow: convert and render through the
// markdown service, persist through the repository.
func NewService(markdownSvc interfaces.MarkdownService, repo Repository, opts ...ServiceOption) (*Service, error) {
	if markdownSvc == nil {
		return nil, errors.New("preview service: markdown service is required")
	}
	if repo == nil {
		return nil, errors.New("preview service: repository is required")
	}
	svc := &Service{
		markdown: markdownSvc,
		repo:     repo,
		logger:   logging.NoOp(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Render converts and renders the document body, then upserts the preview
// row under the document's deterministic identity.
func (s *Service) Render(ctx context.Context, doc *interfaces.Document) (*interfaces.Preview, error) {
	if doc == nil {
		return nil, errors.New("preview service: document is nil")
	}

	markdown, err := s.markdown.Convert(ctx, doc.Body)
	if err != nil {
		return nil, err
	}
	html, err := s.markdown.Render(ctx, doc.Body, interfaces.ParseOptions{})
	if err != nil {
		return nil, err
	}

	record := &Record{
		ID:           identity.PreviewUUID(doc.FilePath),
		DocumentPath: doc.FilePath,
		Checksum:     append([]byte(nil), doc.Checksum...),
		Markdown:     string(markdown),
		HTML:         string(html),
		RenderedAt:   s.now(),
	}

	stored, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("preview rendered",
		"document_path", doc.FilePath,
		"bytes", len(stored.HTML),
	)
	return stored.ToPreview(), nil
}

// Get returns the most recent persisted preview for the document path.
func (s *Service) Get(ctx context.Context, documentPath string) (*interfaces.Preview, error) {
	record, err := s.repo.GetByPath(ctx, documentPath)
	if err != nil {
		return nil, err
	}
	return record.ToPreview(), nil
}

var _ interfaces.PreviewService = (*Service)(nil)
