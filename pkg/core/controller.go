package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultEventBuffer is the per-subscriber event channel capacity used when
// no explicit size is configured.
const DefaultEventBuffer = 100

// Controller is the single in-memory authority over the note collection
// during a session. All mutations pass through it; reads are served from the
// snapshot it owns. After every mutation it re-sorts, persists the full
// snapshot through the Store, and notifies subscribers.
type Controller struct {
	store       *Store
	logger      *slog.Logger
	eventBuffer int

	mu          sync.RWMutex
	notes       []Note
	initialized bool

	subMu   sync.Mutex
	subs    map[int]*subscription
	nextSub int

	saveMu sync.Mutex
}

type subscription struct {
	pattern string
	ch      chan Event
}

// NewController creates a Controller over the given store.
// logger may be nil; eventBuffer <= 0 selects DefaultEventBuffer.
func NewController(store *Store, logger *slog.Logger, eventBuffer int) *Controller {
	if eventBuffer <= 0 {
		eventBuffer = DefaultEventBuffer
	}
	return &Controller{
		store:       store,
		logger:      logger,
		eventBuffer: eventBuffer,
		subs:        make(map[int]*subscription),
	}
}

// Initialize loads the persisted collection and publishes it as current
// state. It must complete before any mutation; callers observe a loading
// state until then. Calling it again reloads from storage, which is how an
// external change reported by a Watchable backend is absorbed.
func (c *Controller) Initialize(ctx context.Context) error {
	notes, err := c.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	c.mu.Lock()
	c.notes = notes
	c.initialized = true
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("collection initialized", "count", len(notes))
	}
	return nil
}

// Initialized reports whether the initial load has completed.
func (c *Controller) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Upsert merges the candidate into the collection: the entry with the same
// ID is replaced, otherwise the candidate is appended. The collection is
// re-sorted by UpdatedAt descending and the full snapshot is persisted.
//
// The in-memory state and subscribers reflect the change even when the save
// fails; the error is returned so the caller can retry or notify. The next
// successful save rewrites the full current snapshot, so a failed one never
// loses a mutation silently.
func (c *Controller) Upsert(ctx context.Context, candidate Note) error {
	if candidate.ID == "" {
		return fmt.Errorf("note has no ID")
	}

	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return ErrNotInitialized
	}

	evType := EventCreate
	next := make([]Note, len(c.notes))
	copy(next, c.notes)
	replaced := false
	for i := range next {
		if next[i].ID == candidate.ID {
			next[i] = candidate
			replaced = true
			evType = EventModify
			break
		}
	}
	if !replaced {
		next = append(next, candidate)
	}
	SortByUpdatedDesc(next)
	c.notes = next
	c.mu.Unlock()

	c.publish(Event{Type: evType, ID: candidate.ID, Timestamp: time.Now().Unix()})

	return c.persist(ctx)
}

// Delete removes the entry whose ID matches exactly and persists the
// remaining collection. Removing a non-existent ID is a no-op, not an
// error; nothing is published or persisted in that case.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return ErrNotInitialized
	}

	idx := -1
	for i := range c.notes {
		if c.notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return nil
	}

	next := make([]Note, 0, len(c.notes)-1)
	next = append(next, c.notes[:idx]...)
	next = append(next, c.notes[idx+1:]...)
	c.notes = next
	c.mu.Unlock()

	c.publish(Event{Type: EventDelete, ID: id, Timestamp: time.Now().Unix()})

	return c.persist(ctx)
}

// persist snapshots the collection as it stands at save time and writes it.
// Saves are serialized, and each one re-reads current state under the lock,
// so a save delayed behind a newer mutation rewrites the newer collection
// rather than clobbering it with the state it was queued for.
func (c *Controller) persist(ctx context.Context) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.RLock()
	snapshot := make([]Note, len(c.notes))
	copy(snapshot, c.notes)
	c.mu.RUnlock()

	if err := c.store.SaveAll(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// Search derives the subset of the collection whose titles contain the
// trimmed keyword, case-insensitively. A blank keyword yields the full
// collection. Search never mutates or persists state.
func (c *Controller) Search(keyword string) []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Note, 0, len(c.notes))
	for _, n := range c.notes {
		if n.MatchesTitle(keyword) {
			out = append(out, n)
		}
	}
	return out
}

// Notes returns a copy of the current collection, most recently touched
// first.
func (c *Controller) Notes() []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Subscribe returns a channel of change events for notes whose ID matches
// the glob pattern ("" or "*" for all). The channel is buffered so a slow
// consumer never blocks a mutation; when the buffer is full, events for that
// subscriber are dropped with a warning. The channel closes when ctx is
// cancelled.
func (c *Controller) Subscribe(ctx context.Context, pattern string) (<-chan Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid subscription pattern: %s", pattern)
	}

	sub := &subscription{
		pattern: pattern,
		ch:      make(chan Event, c.eventBuffer),
	}

	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = sub
	c.subMu.Unlock()

	go func() {
		<-ctx.Done()
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
		close(sub.ch)
	}()

	return sub.ch, nil
}

// publish fans an event out to matching subscribers without ever blocking
// the mutating caller.
func (c *Controller) publish(e Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, sub := range c.subs {
		if !e.Matches(sub.pattern) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			if c.logger != nil {
				c.logger.Warn("dropping event for slow subscriber", "event", e.String())
			}
		}
	}
}
