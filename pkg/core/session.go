package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session holds the boundary logic of one editing interaction: it decides,
// on exit, whether a save should happen at all and what identity and
// timestamp the result carries. The Controller's Upsert is only invoked
// when a Session produces a result.
type Session struct {
	original *Note
	done     bool
	now      func() time.Time
	newID    func() string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock overrides the clock used for the result's UpdatedAt.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithSessionIDGenerator overrides ID generation for newly created notes.
func WithSessionIDGenerator(newID func() string) SessionOption {
	return func(s *Session) { s.newID = newID }
}

// NewSession starts an editing session. original is nil when creating a new
// note, otherwise the note being edited.
func NewSession(original *Note, opts ...SessionOption) *Session {
	s := &Session{
		original: original,
		now:      time.Now,
		newID: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Editing reports whether the session edits a pre-existing note.
func (s *Session) Editing() bool {
	return s.original != nil
}

// Finish resolves the session with the fields as they stand on exit.
// ok is false when nothing should be saved:
//   - the edit left an existing note's trimmed title and content unchanged,
//   - a brand new note has both trimmed fields empty (discard),
//   - or the session was already resolved; a back-navigation firing twice
//     must not produce two results.
//
// Otherwise the result carries the original ID (or a freshly generated one)
// and an UpdatedAt stamped at the moment of exit.
func (s *Session) Finish(title, content string) (Note, bool) {
	if s.done {
		return Note{}, false
	}
	s.done = true

	if s.original != nil {
		if strings.TrimSpace(title) == strings.TrimSpace(s.original.Title) &&
			strings.TrimSpace(content) == strings.TrimSpace(s.original.Content) {
			return Note{}, false
		}
		return s.original.WithEdits(title, content, s.now()), true
	}

	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return Note{}, false
	}
	return Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		UpdatedAt: s.now(),
	}, true
}
