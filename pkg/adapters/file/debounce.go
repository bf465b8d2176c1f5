package file

import (
	"sync"
	"time"

	"github.com/quillkit/quill/pkg/core"
)

// debouncer coalesces bursts of events for the same key into one delivery.
// Editors and atomic renames produce several filesystem events per logical
// write; only the last one within the window is delivered.
type debouncer struct {
	delay  time.Duration
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[e.ID]; ok {
		t.Stop()
	}
	d.timers[e.ID] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, e.ID)
		d.mu.Unlock()
		deliver(e)
	})
}

// stop cancels all pending deliveries.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}
