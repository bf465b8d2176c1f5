package core

import (
	"github.com/aretw0/introspection"
)

// ControllerState exposes internal state for observability.
type ControllerState struct {
	Initialized bool `json:"initialized"`
	NoteCount   int  `json:"note_count"`
	Subscribers int  `json:"subscribers"`
	EventBuffer int  `json:"event_buffer"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	c.mu.RLock()
	initialized := c.initialized
	count := len(c.notes)
	c.mu.RUnlock()

	c.subMu.Lock()
	subs := len(c.subs)
	c.subMu.Unlock()

	return ControllerState{
		Initialized: initialized,
		NoteCount:   count,
		Subscribers: subs,
		EventBuffer: c.eventBuffer,
	}
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "controller"
}

var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
