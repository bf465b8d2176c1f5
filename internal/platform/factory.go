package platform

import (
	"context"
	"fmt"

	"github.com/quillkit/quill/pkg/adapters/file"
	"github.com/quillkit/quill/pkg/adapters/memory"
	"github.com/quillkit/quill/pkg/adapters/sqlite"
	"github.com/quillkit/quill/pkg/core"
)

// New wires a backend, store, and controller for the given storage URI and
// loads the persisted collection. The URI is adapter-specific: a directory
// for "file", a database path for "sqlite", ignored for "memory".
func New(ctx context.Context, uri string, opts ...Option) (*core.Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	backend, err := openBackend(uri, o)
	if err != nil {
		return nil, err
	}
	if err := backend.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize backend: %w", err)
	}

	store := core.NewStore(backend, o.logger)
	controller := core.NewController(store, o.logger, o.eventBuffer)
	if err := controller.Initialize(ctx); err != nil {
		return nil, err
	}
	return controller, nil
}

// OpenBackend resolves a backend without wiring a controller, for callers
// that want to watch or inspect storage directly.
func OpenBackend(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	backend, err := openBackend(uri, o)
	if err != nil {
		return nil, err
	}
	if err := backend.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize backend: %w", err)
	}
	return backend, nil
}

func openBackend(uri string, o *options) (core.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	switch o.adapter {
	case "file":
		return file.NewBackend(file.Config{Dir: uri, Logger: o.logger}), nil
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(uri)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}
