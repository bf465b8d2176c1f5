// Package memory implements core.Backend with a plain map.
// It backs tests and throwaway sessions where nothing should touch disk.
package memory

import (
	"context"
	"sync"

	"github.com/quillkit/quill/pkg/core"
)

// Backend is a map-backed key-value store.
type Backend struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{
		values: make(map[string]string),
	}
}

// Initialize is a no-op.
func (b *Backend) Initialize(ctx context.Context) error {
	return nil
}

// GetString returns the value stored under key, ok=false when absent.
func (b *Backend) GetString(ctx context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	return v, ok, nil
}

// SetString overwrites the value stored under key.
func (b *Backend) SetString(ctx context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}

var _ core.Backend = (*Backend)(nil)
