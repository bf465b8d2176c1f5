package platform

import (
	"log/slog"

	"github.com/quillkit/quill/pkg/core"
)

// options holds the internal configuration for the quill service.
type options struct {
	backend     core.Backend
	adapter     string
	logger      *slog.Logger
	eventBuffer int
}

// Option defines a functional option for configuring quill.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend: nil,
		adapter: "file",
	}
}

// WithBackend allows injecting a custom storage backend (e.g. mock, sqlite).
// If provided, the adapter name is ignored.
func WithBackend(backend core.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithAdapter selects the storage backend by name ("file", "memory",
// "sqlite"). Defaults to "file".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithLogger sets the logger for the controller and backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventBuffer sets the per-subscriber event buffer size.
// Zero means default (core.DefaultEventBuffer).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
