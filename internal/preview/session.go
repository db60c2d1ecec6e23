package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-tagdown/internal/identity"
	"github.com/goliatone/go-tagdown/internal/logging"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// Session owns the temp file a host editor displays for one live preview.
// The file is created lazily on the first Write and removed by Close; state
// is held by the session value itself, never in package globals, so multiple
// previews can coexist and teardown is explicit.
type Session struct {
	id     uuid.UUID
	dir    string
	logger interfaces.Logger

	mu     sync.Mutex
	path   string
	closed bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionDir places the preview file under dir instead of the system
// temp directory.
func WithSessionDir(dir string) SessionOption {
	return func(s *Session) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithSessionLogger attaches a logger.
func WithSessionLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a preview session for the given document path. The
// session ID is deterministic per document so a re-opened preview reuses the
// same file name.
func NewSession(documentPath string, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.New(),
		dir:    os.TempDir(),
		logger: logging.NoOp(),
	}
	if documentPath != "" {
		s.id = identityForSession(documentPath)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Write replaces the preview file content, creating the file on first use.
func (s *Session) Write(html []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("preview session: closed")
	}
	if s.path == "" {
		s.path = filepath.Join(s.dir, fmt.Sprintf("tagdown-preview-%s.html", s.id))
	}
	if err := os.WriteFile(s.path, html, 0o644); err != nil {
		return fmt.Errorf("preview session write: %w", err)
	}
	s.logger.Debug("preview session updated", "path", s.path, "bytes", len(html))
	return nil
}

// Path returns the preview file location, or empty before the first Write.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Close removes the preview file. Further writes fail; Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("preview session close: %w", err)
	}
	s.logger.Debug("preview session closed", "path", s.path)
	return nil
}

func identityForSession(documentPath string) uuid.UUID {
	return identity.UUID("go-tagdown:session:" + documentPath)
}
