package console

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
}

func newTestLogger(buf *strings.Builder, min Level) interfaces.Logger {
	provider := NewProvider(Options{
		Writer:   buf,
		TimeFunc: fixedClock,
		MinLevel: &min,
	})
	return provider.GetLogger("tagdown.test")
}

func TestLoggerWritesStructuredEntry(t *testing.T) {
	var buf strings.Builder
	logger := newTestLogger(&buf, LevelDebug)

	logger.Info("document converted", "document_path", "notes/today.md", "tags", 3)

	entry := buf.String()
	if !strings.Contains(entry, "INFO document converted") {
		t.Fatalf("missing level/message: %q", entry)
	}
	if !strings.Contains(entry, "document_path=notes/today.md") {
		t.Fatalf("missing document_path field: %q", entry)
	}
	if !strings.Contains(entry, "logger=tagdown.test") {
		t.Fatalf("missing logger field: %q", entry)
	}
	if !strings.Contains(entry, "tags=3") {
		t.Fatalf("missing numeric field: %q", entry)
	}
}

func TestLoggerHonoursMinLevel(t *testing.T) {
	var buf strings.Builder
	logger := newTestLogger(&buf, LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	entries := strings.TrimSpace(buf.String())
	if strings.Count(entries, "\n") != 0 || !strings.Contains(entries, "WARN kept") {
		t.Fatalf("expected a single WARN entry, got %q", entries)
	}
}

func TestLoggerMergesContextFields(t *testing.T) {
	var buf strings.Builder
	logger := newTestLogger(&buf, LevelDebug)

	ctx := logging.ContextWithFields(context.Background(), map[string]any{"session_id": "abc"})
	logger.WithContext(ctx).Info("preview refreshed")

	if !strings.Contains(buf.String(), "session_id=abc") {
		t.Fatalf("context fields missing: %q", buf.String())
	}
}

func TestLoggerQuotesValuesWithSpaces(t *testing.T) {
	var buf strings.Builder
	logger := newTestLogger(&buf, LevelDebug)

	logger.Error("convert failed", "reason", "bad input")

	if !strings.Contains(buf.String(), `reason="bad input"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}
