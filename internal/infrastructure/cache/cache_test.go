package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gophnotes/internal/domain/note"
)

func newTestCache(t *testing.T) (*NoteListCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewNoteListCache(srv.Addr(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, srv
}

func TestNoteListCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	owner := "8f14d2c6-3a1b-4f6e-b0c5-9e7a2d4f1c38"
	notes := []note.Note{
		{ID: "n1", OwnerID: owner, Title: "First", Content: "hello", UpdatedAt: time.Now().UTC()},
		{ID: "n2", OwnerID: owner, Title: "Second", Content: "world", UpdatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	c.Set(ctx, owner, notes)

	got, ok := c.Get(ctx, owner)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "n2", got[1].ID)
}

func TestNoteListCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.Get(context.Background(), "unknown-owner")
	assert.False(t, ok)
}

func TestNoteListCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	owner := "8f14d2c6-3a1b-4f6e-b0c5-9e7a2d4f1c38"
	c.Set(ctx, owner, []note.Note{{ID: "n1", OwnerID: owner, Title: "T"}})

	c.Invalidate(ctx, owner)

	_, ok := c.Get(ctx, owner)
	assert.False(t, ok)
}

func TestNoteListCache_Expiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	owner := "8f14d2c6-3a1b-4f6e-b0c5-9e7a2d4f1c38"
	c.Set(ctx, owner, []note.Note{{ID: "n1", OwnerID: owner, Title: "T"}})

	srv.FastForward(defaultTTL + time.Second)

	_, ok := c.Get(ctx, owner)
	assert.False(t, ok)
}

func TestNoteListCache_CorruptedPayload(t *testing.T) {
	c, srv := newTestCache(t)

	owner := "8f14d2c6-3a1b-4f6e-b0c5-9e7a2d4f1c38"
	require.NoError(t, srv.Set(keyPrefix+owner, "{not json"))

	_, ok := c.Get(context.Background(), owner)
	assert.False(t, ok)
}
