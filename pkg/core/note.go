package core

import (
	"sort"
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It is an immutable value: an edit produces a new Note carrying the same
// ID, it never mutates the stored one.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithEdits returns a copy of the note carrying the edited fields and the
// given modification time. The ID is preserved.
func (n Note) WithEdits(title, content string, at time.Time) Note {
	return Note{
		ID:        n.ID,
		Title:     title,
		Content:   content,
		UpdatedAt: at,
	}
}

// MatchesTitle reports whether the note title contains the trimmed keyword,
// case-insensitively. A blank keyword matches every note. Content is never
// consulted.
func (n Note) MatchesTitle(keyword string) bool {
	k := strings.TrimSpace(keyword)
	if k == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), strings.ToLower(k))
}

// SortByUpdatedDesc orders notes most recently touched first.
// The sort is stable: notes sharing the exact same timestamp keep their
// prior relative order.
func SortByUpdatedDesc(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
