// Package lifecycle bridges note change events into the generic
// lifecycle.Source contract so host programs can run the stream under
// managed goroutines.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/quillkit/quill/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a note event channel (from Controller.Subscribe or a
// Watchable backend) as a lifecycle.Source.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	// core.Event satisfies lifecycle.Event (it has String()); the bridge
	// goroutine itself runs tracked under lifecycle.Go.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
