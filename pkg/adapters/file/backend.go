// Package file implements core.Backend on top of a plain directory:
// one file per key, written atomically via temp file + rename.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/quillkit/quill/pkg/core"
)

// Config holds the configuration for the file backend.
type Config struct {
	Dir    string
	Logger *slog.Logger
}

// Backend stores each key as a file inside Dir.
type Backend struct {
	Dir    string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

// NewBackend creates a file-backed key-value backend rooted at cfg.Dir.
func NewBackend(cfg Config) *Backend {
	return &Backend{
		Dir:    cfg.Dir,
		logger: cfg.Logger,
	}
}

// Initialize ensures the storage directory exists.
func (b *Backend) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (b *Backend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(b.Dir, key+".json"), nil
}

// GetString reads the value file for key. An absent file means the key was
// never written: ok is false, err is nil.
func (b *Backend) GetString(ctx context.Context, key string) (string, bool, error) {
	path, err := b.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}

// SetString overwrites the value file for key atomically.
func (b *Backend) SetString(ctx context.Context, key, value string) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}

	if b.logger != nil {
		b.logger.Debug("writing value", "key", key, "path", path, "bytes", len(value))
	}
	if err := writeFileAtomic(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var _ core.Backend = (*Backend)(nil)
var _ core.Watchable = (*Backend)(nil)
