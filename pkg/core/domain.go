package core

import "github.com/bmatcuk/doublestar/v4"

// EventType represents the type of change in the collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a single note.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and lifecycle sources.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}

// Matches reports whether the event's note ID matches the glob pattern.
// An invalid pattern matches nothing.
func (e Event) Matches(pattern string) bool {
	match, err := doublestar.Match(pattern, e.ID)
	return err == nil && match
}
