package quill

import (
	"context"
	"log/slog"

	"github.com/quillkit/quill/internal/platform"
	"github.com/quillkit/quill/pkg/core"
)

// --- Types ---

// Note is the persisted entity: a title/content pair with an identity and
// last-modified timestamp.
type Note = core.Note

// Event represents a change to a note.
type Event = core.Event

// Controller mediates all reads and mutations of the note collection.
type Controller = core.Controller

// Session carries the save-or-discard decision of one editing interaction.
type Session = core.Session

// --- Configuration ---

// Option defines a functional option for configuring quill.
type Option = platform.Option

// WithBackend allows injecting a custom storage backend.
func WithBackend(backend core.Backend) Option {
	return platform.WithBackend(backend)
}

// WithAdapter selects the storage backend by name ("file", "memory", "sqlite").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithLogger sets the logger for the controller and backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithEventBuffer sets the per-subscriber event buffer size.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New opens the collection stored at uri and returns an initialized
// Controller ready for reads and mutations.
func New(ctx context.Context, uri string, opts ...Option) (*core.Controller, error) {
	return platform.New(ctx, uri, opts...)
}

// OpenBackend resolves just the storage backend, for callers that want to
// watch or inspect storage directly.
func OpenBackend(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	return platform.OpenBackend(ctx, uri, opts...)
}

// --- Editing sessions ---

// NewSession starts an editing session. original is nil when creating a new
// note.
func NewSession(original *Note, opts ...core.SessionOption) *Session {
	return core.NewSession(original, opts...)
}

// --- Utils ---

// DefaultDataDir resolves where notes live when no location is configured.
func DefaultDataDir() (string, error) {
	return platform.DefaultDataDir()
}
