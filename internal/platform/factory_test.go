package platform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillkit/quill/pkg/adapters/memory"
	"github.com/quillkit/quill/pkg/core"
)

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := New(context.Background(), "", WithAdapter("redis"))
	assert.ErrorContains(t, err, "unknown adapter: redis")
}

func TestNew_FileAdapter(t *testing.T) {
	ctx := context.Background()

	ctrl, err := New(ctx, t.TempDir())
	require.NoError(t, err)
	assert.True(t, ctrl.Initialized())
	assert.Empty(t, ctrl.Notes())
}

func TestNew_SharedBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	ctrl, err := New(ctx, "", WithBackend(backend))
	require.NoError(t, err)

	require.NoError(t, ctrl.Upsert(ctx, core.Note{ID: "n1", Title: "First", UpdatedAt: time.Now()}))

	// A second controller over the same backend sees the persisted note.
	again, err := New(ctx, "", WithBackend(backend))
	require.NoError(t, err)
	notes := again.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "First", notes[0].Title)
}

func TestOpenBackend_MemoryAdapter(t *testing.T) {
	ctx := context.Background()

	backend, err := OpenBackend(ctx, "", WithAdapter("memory"))
	require.NoError(t, err)

	require.NoError(t, backend.SetString(ctx, "k", "v"))
	got, ok, err := backend.GetString(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
