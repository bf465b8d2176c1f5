package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillkit/quill/pkg/adapters/sqlite"
)

func openTestBackend(t *testing.T) *sqlite.Backend {
	t.Helper()
	b, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	require.NoError(t, b.Initialize(context.Background()))
	return b
}

func TestBackend_GetString_Absent(t *testing.T) {
	b := openTestBackend(t)

	_, ok, err := b.GetString(context.Background(), "notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	require.NoError(t, b.SetString(ctx, "notes", `[{"id":"1"}]`))

	got, ok, err := b.GetString(ctx, "notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestBackend_SetString_Upserts(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	require.NoError(t, b.SetString(ctx, "notes", "first"))
	require.NoError(t, b.SetString(ctx, "notes", "second"))

	got, ok, err := b.GetString(ctx, "notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestBackend_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	// A second migration run must not fail or wipe data.
	require.NoError(t, b.SetString(ctx, "notes", "kept"))
	require.NoError(t, b.Initialize(ctx))

	got, ok, err := b.GetString(ctx, "notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "kept", got)
}
