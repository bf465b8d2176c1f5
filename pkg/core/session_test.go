package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillkit/quill/pkg/core"
)

var sessionNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return sessionNow }

func TestSession_EditUnchangedIsNoOp(t *testing.T) {
	original := core.Note{ID: "1", Title: "Shopping", Content: "milk", UpdatedAt: sessionNow.Add(-time.Hour)}

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"identical", "Shopping", "milk"},
		{"only whitespace changed", "  Shopping  ", "milk\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewSession(&original, core.WithSessionClock(fixedClock))
			_, ok := s.Finish(tt.title, tt.content)
			assert.False(t, ok, "unchanged edit must produce no result")
		})
	}
}

func TestSession_EditChangedKeepsIdentity(t *testing.T) {
	original := core.Note{ID: "1", Title: "Shopping", Content: "milk", UpdatedAt: sessionNow.Add(-time.Hour)}
	s := core.NewSession(&original, core.WithSessionClock(fixedClock))

	note, ok := s.Finish("Shopping list", "milk")
	require.True(t, ok)
	assert.Equal(t, "1", note.ID)
	assert.Equal(t, "Shopping list", note.Title)
	assert.Equal(t, "milk", note.Content)
	assert.True(t, note.UpdatedAt.Equal(sessionNow), "timestamp refreshed to the moment of exit")
}

func TestSession_NewEmptyIsDiscarded(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"both empty", "", ""},
		{"whitespace only", "   ", "\n\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewSession(nil, core.WithSessionClock(fixedClock))
			_, ok := s.Finish(tt.title, tt.content)
			assert.False(t, ok, "empty new note must be discarded")
		})
	}
}

func TestSession_NewNoteGetsFreshIdentity(t *testing.T) {
	s := core.NewSession(nil,
		core.WithSessionClock(fixedClock),
		core.WithSessionIDGenerator(func() string { return "generated-id" }),
	)

	note, ok := s.Finish("Title", "")
	require.True(t, ok)
	assert.Equal(t, "generated-id", note.ID)
	assert.Equal(t, "Title", note.Title)
	assert.True(t, note.UpdatedAt.Equal(sessionNow))
}

func TestSession_NewNoteDefaultIDsAreUnique(t *testing.T) {
	a, ok := core.NewSession(nil).Finish("x", "")
	require.True(t, ok)
	b, ok := core.NewSession(nil).Finish("x", "")
	require.True(t, ok)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_FinishFiresExactlyOnce(t *testing.T) {
	s := core.NewSession(nil, core.WithSessionClock(fixedClock))

	_, ok := s.Finish("Title", "body")
	require.True(t, ok)

	// A second exit trigger (e.g. back navigation firing twice) must not
	// produce a second result.
	_, ok = s.Finish("Title", "body")
	assert.False(t, ok)
}

func TestSession_Editing(t *testing.T) {
	assert.False(t, core.NewSession(nil).Editing())
	n := core.Note{ID: "1"}
	assert.True(t, core.NewSession(&n).Editing())
}
