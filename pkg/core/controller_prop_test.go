package core_test

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/quillkit/quill/pkg/adapters/memory"
	"github.com/quillkit/quill/pkg/core"
)

// After any sequence of upserts and deletes, reloading the persisted blob
// yields exactly the in-memory collection.
func TestController_PersistedStateMatchesMemory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		backend := memory.New()
		ctrl := core.NewController(core.NewStore(backend, nil), nil, 0)
		if err := ctrl.Initialize(ctx); err != nil {
			t.Fatalf("initialize: %v", err)
		}

		ids := rapid.SampledFrom([]string{"a", "b", "c", "d", "e"})
		ops := rapid.IntRange(1, 40).Draw(t, "ops")

		base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < ops; i++ {
			id := ids.Draw(t, "id")
			if rapid.Bool().Draw(t, "isDelete") {
				if err := ctrl.Delete(ctx, id); err != nil {
					t.Fatalf("delete: %v", err)
				}
				continue
			}
			n := core.Note{
				ID:        id,
				Title:     rapid.StringMatching(`[a-zA-Z ]{0,12}`).Draw(t, "title"),
				Content:   rapid.StringMatching(`[a-zA-Z ]{0,20}`).Draw(t, "content"),
				UpdatedAt: base.Add(time.Duration(rapid.IntRange(0, 1000).Draw(t, "offset")) * time.Second),
			}
			if err := ctrl.Upsert(ctx, n); err != nil {
				t.Fatalf("upsert: %v", err)
			}
		}

		inMemory := ctrl.Notes()
		reloaded, err := core.NewStore(backend, nil).LoadAll(ctx)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}

		if len(reloaded) != len(inMemory) {
			t.Fatalf("size mismatch: memory %d, persisted %d", len(inMemory), len(reloaded))
		}

		// Equal as a set of id -> fields.
		byID := make(map[string]core.Note, len(inMemory))
		for _, n := range inMemory {
			byID[n.ID] = n
		}
		for _, got := range reloaded {
			want, ok := byID[got.ID]
			if !ok {
				t.Fatalf("persisted note %q missing from memory", got.ID)
			}
			if got.Title != want.Title || got.Content != want.Content || !got.UpdatedAt.Equal(want.UpdatedAt) {
				t.Fatalf("note %q differs: memory %+v, persisted %+v", got.ID, want, got)
			}
		}

		// Ordering invariant holds on both sides.
		for i := 0; i < len(reloaded)-1; i++ {
			if reloaded[i].UpdatedAt.Before(reloaded[i+1].UpdatedAt) {
				t.Fatalf("persisted collection out of order at %d", i)
			}
		}
	})
}
