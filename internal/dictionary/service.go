package dictionary

import (
	"context"
	"os"

	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dict"
)

// Journal receives a record of every successful write. Implementations
// are best-effort: they must never fail or block the write they
// describe.
type Journal interface {
	Record(file, key, oldValue string, hadOld bool, newValue string)
}

// Service fronts one Backend for all dictionary work. The backend is
// fixed at construction; there is no per-call fallback.
type Service struct {
	backend Backend
	journal Journal
}

// Option configures a Service.
type Option func(*Service)

// WithJournal attaches an edit journal to the write path.
func WithJournal(j Journal) Option {
	return func(s *Service) {
		s.journal = j
	}
}

// NewService wires a facade around the given backend.
func NewService(backend Backend, opts ...Option) *Service {
	s := &Service{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BackendName identifies the active backend.
func (s *Service) BackendName() string {
	return s.backend.Name()
}

// ListKeywords returns the top-level keywords of file in source order.
func (s *Service) ListKeywords(ctx context.Context, file string) []string {
	return s.backend.ListKeywords(ctx, file)
}

// ListSubkeys returns the keywords nested under path.
func (s *Service) ListSubkeys(ctx context.Context, file string, path string) []string {
	return s.backend.ListSubkeys(ctx, file, path)
}

// ReadEntry renders the value at path. The error wraps ErrNotFound
// when the entry does not resolve.
func (s *Service) ReadEntry(ctx context.Context, file string, path string) (string, error) {
	return s.backend.ReadEntry(ctx, file, path)
}

// WriteEntry patches value into file at path and journals the edit on
// success.
func (s *Service) WriteEntry(ctx context.Context, file string, path string, value string) bool {
	var oldValue string
	hadOld := false
	if s.journal != nil {
		if v, err := s.backend.ReadEntry(ctx, file, path); err == nil {
			oldValue = v
			hadOld = true
		}
	}

	ok := s.backend.WriteEntry(ctx, file, path, value)
	if !ok {
		ctxlog.FromContext(ctx).Debug("write entry failed",
			"file", file, "key", path)
		return false
	}
	if s.journal != nil {
		s.journal.Record(file, path, oldValue, hadOld, value)
	}
	return true
}

// EntryComments returns the comment lines sitting directly above the
// first mention of key in file. This is a raw-text heuristic shared by
// every backend; a missing file yields nil.
func (s *Service) EntryComments(ctx context.Context, file string, key string) []string {
	data, err := os.ReadFile(file)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("read failed", "file", file, "error", err)
		return nil
	}
	return dict.EntryComments(string(data), key)
}

// ParseBoundaryFile reads a polyMesh boundary file.
func (s *Service) ParseBoundaryFile(ctx context.Context, path string) ([]string, map[string]string) {
	return s.backend.ParseBoundaryFile(ctx, path)
}

// RenameBoundaryPatch renames a patch declaration in a boundary file.
func (s *Service) RenameBoundaryPatch(ctx context.Context, path string, old, new string) bool {
	return s.backend.RenameBoundaryPatch(ctx, path, old, new)
}

// ChangeBoundaryPatchType rewrites the type entry of one patch block.
func (s *Service) ChangeBoundaryPatchType(ctx context.Context, path string, patchName, newType string) bool {
	return s.backend.ChangeBoundaryPatchType(ctx, path, patchName, newType)
}

// RenameBoundaryFieldPatch renames a patch block inside a field file's
// boundaryField.
func (s *Service) RenameBoundaryFieldPatch(ctx context.Context, file string, old, new string) bool {
	return s.backend.RenameBoundaryFieldPatch(ctx, file, old, new)
}
