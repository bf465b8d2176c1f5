package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/quillkit/quill/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

// Watch emits an event per key whose value file changes outside this
// process. Events are debounced per key. The returned channel closes when
// ctx is cancelled.
func (b *Backend) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(b.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", b.Dir, err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(debounceWindow)
	b.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer deb.stop()
		defer b.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				key, keyOK := b.resolveKey(ev.Name)
				if !keyOK {
					continue
				}
				eType := mapEventType(ev)
				if eType == "" {
					continue
				}
				deb.add(core.Event{Type: eType, ID: key, Timestamp: time.Now().Unix()}, func(e core.Event) {
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if b.logger != nil {
					b.logger.Error("fsnotify error", "error", werr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if b.logger != nil {
			b.logger.Error("watcher stopped", "error", err)
		}
	}))

	return events, nil
}

// resolveKey maps a changed path back to its storage key. Temp files from
// atomic writes and foreign files are ignored.
func (b *Backend) resolveKey(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, TempFilePrefix) {
		return "", false
	}
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}

func mapEventType(ev fsnotify.Event) core.EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return core.EventCreate
	case ev.Has(fsnotify.Write):
		return core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (b *Backend) setWatcherActive(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watcherActive = active
}
