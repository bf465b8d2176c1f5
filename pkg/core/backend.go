package core

import "context"

// Backend defines the contract for the key-value persistence layer.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, SQLite, in-memory).
type Backend interface {
	// GetString returns the value stored under key.
	// ok is false when the key is absent; absence is not an error.
	GetString(ctx context.Context, key string) (value string, ok bool, err error)

	// SetString overwrites the value stored under key.
	SetString(ctx context.Context, key, value string) error

	// Initialize ensures the underlying storage is ready (e.g. create
	// directories, schema migration).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by backends that can report external changes to
// their keys, e.g. another process rewriting the backing file.
type Watchable interface {
	// Watch emits one Event per changed key until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
