package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// StorageKey is the single fixed key the whole collection is persisted
// under. The Store is the sole writer of this key.
const StorageKey = "notes"

// noteRecord is the wire form of a Note: a JSON object with string fields
// only, the timestamp as RFC 3339 text.
type noteRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt"`
}

// Store maps the note collection to one opaque blob under StorageKey.
// Every save rewrites the whole collection; collections are small enough
// (personal notes) that snapshotting beats per-note bookkeeping.
type Store struct {
	backend Backend
	key     string
	logger  *slog.Logger
	now     func() time.Time
}

// NewStore creates a Store over the given backend. logger may be nil.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		key:     StorageKey,
		logger:  logger,
		now:     time.Now,
	}
}

// LoadAll reads and decodes the persisted collection, sorted by UpdatedAt
// descending. An absent or empty blob is a first run, not an error: it
// yields an empty slice.
//
// Individual malformed records are healed rather than failing the load:
// missing title/content default to "", an unparsable timestamp defaults to
// the current time. Only a blob that is not a JSON array at all is an error.
func (s *Store) LoadAll(ctx context.Context) ([]Note, error) {
	raw, ok, err := s.backend.GetString(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read note blob: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []Note{}, nil
	}

	var records []noteRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode note blob: %w", err)
	}

	notes := make([]Note, 0, len(records))
	for _, rec := range records {
		notes = append(notes, s.heal(rec))
	}
	SortByUpdatedDesc(notes)
	return notes, nil
}

// heal converts a wire record to a Note, substituting defaults for fields
// that cannot be decoded.
func (s *Store) heal(rec noteRecord) Note {
	ts, err := time.Parse(time.RFC3339, rec.UpdatedAt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("recovering note with invalid timestamp", "id", rec.ID, "updatedAt", rec.UpdatedAt)
		}
		ts = s.now()
	}
	return Note{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		UpdatedAt: ts,
	}
}

// SaveAll serializes the full given collection and overwrites the stored
// blob. No partial diff is ever persisted.
func (s *Store) SaveAll(ctx context.Context, notes []Note) error {
	records := make([]noteRecord, 0, len(notes))
	for _, n := range notes {
		records = append(records, noteRecord{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			UpdatedAt: n.UpdatedAt.Format(time.RFC3339Nano),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode note blob: %w", err)
	}

	if err := s.backend.SetString(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to write note blob: %w", err)
	}
	return nil
}
