package previewcmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-tagdown/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

type stubMarkdownService struct {
	loadCalls []string
	loadDoc   *interfaces.Document
	loadErr   error
}

func (s *stubMarkdownService) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	s.loadCalls = append(s.loadCalls, path)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.loadDoc, nil
}

func (s *stubMarkdownService) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) Convert(ctx context.Context, source []byte) ([]byte, error) {
	return source, nil
}

func (s *stubMarkdownService) Render(ctx context.Context, source []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return source, nil
}

func (s *stubMarkdownService) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) TOC(context.Context, []byte) ([]interfaces.TOCEntry, error) {
	return nil, nil
}

type stubPreviewService struct {
	renderCalls int
	preview     *interfaces.Preview
	renderErr   error
}

func (s *stubPreviewService) Render(ctx context.Context, doc *interfaces.Document) (*interfaces.Preview, error) {
	s.renderCalls++
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	return s.preview, nil
}

func (s *stubPreviewService) Get(ctx context.Context, documentPath string) (*interfaces.Preview, error) {
	return s.preview, nil
}

func newStubs() (*stubMarkdownService, *stubPreviewService) {
	doc := &interfaces.Document{FilePath: "guide.md", Body: []byte("<task>\nbody\n</task>")}
	preview := &interfaces.Preview{
		ID:           uuid.New(),
		DocumentPath: "guide.md",
		HTML:         "<h2>task</h2>",
		RenderedAt:   time.Now(),
	}
	return &stubMarkdownService{loadDoc: doc}, &stubPreviewService{preview: preview}
}

func TestRenderPreviewHandlerLoadsAndRenders(t *testing.T) {
	markdownSvc, previewSvc := newStubs()

	h := NewRenderPreviewHandler(markdownSvc, previewSvc, nil, FeatureGates{})
	err := h.Execute(context.Background(), RenderPreviewCommand{DocumentPath: "guide.md"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(markdownSvc.loadCalls) != 1 || markdownSvc.loadCalls[0] != "guide.md" {
		t.Fatalf("unexpected load calls: %v", markdownSvc.loadCalls)
	}
	if previewSvc.renderCalls != 1 {
		t.Fatalf("expected one render call, got %d", previewSvc.renderCalls)
	}
}

func TestRenderPreviewHandlerValidatesPath(t *testing.T) {
	markdownSvc, previewSvc := newStubs()

	h := NewRenderPreviewHandler(markdownSvc, previewSvc, nil, FeatureGates{})
	err := h.Execute(context.Background(), RenderPreviewCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(markdownSvc.loadCalls) != 0 {
		t.Fatal("expected no load when validation fails")
	}
}

func TestRenderPreviewHandlerHonoursFeatureGate(t *testing.T) {
	markdownSvc, previewSvc := newStubs()

	h := NewRenderPreviewHandler(markdownSvc, previewSvc, nil, FeatureGates{
		PreviewEnabled: func() bool { return false },
	})
	err := h.Execute(context.Background(), RenderPreviewCommand{DocumentPath: "guide.md"})
	if err == nil {
		t.Fatal("expected feature gate error")
	}
	if !errors.Is(err, ErrPreviewFeatureDisabled) {
		t.Fatalf("expected ErrPreviewFeatureDisabled, got %v", err)
	}
	if previewSvc.renderCalls != 0 {
		t.Fatal("expected no render when feature disabled")
	}
}

func TestRenderPreviewHandlerPropagatesRenderError(t *testing.T) {
	markdownSvc, previewSvc := newStubs()
	previewSvc.renderErr = errors.New("render boom")

	h := NewRenderPreviewHandler(markdownSvc, previewSvc, nil, FeatureGates{})
	err := h.Execute(context.Background(), RenderPreviewCommand{DocumentPath: "guide.md"})
	if err == nil {
		t.Fatal("expected render error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
