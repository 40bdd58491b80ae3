package favorites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/agrolink/internal/favorites"
	"github.com/agrolink/agrolink/pkg/storage"
)

func newStore(t *testing.T, backend storage.Store) *favorites.Store {
	t.Helper()
	s, err := favorites.NewStore(context.Background(), backend)
	require.NoError(t, err)
	return s
}

func TestYieldToggleRoundTrip(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	assert.False(t, s.IsYieldFavorite("y1"))

	require.NoError(t, s.AddYield(ctx, "y1"))
	assert.True(t, s.IsYieldFavorite("y1"))

	require.NoError(t, s.RemoveYield(ctx, "y1"))
	assert.False(t, s.IsYieldFavorite("y1"))
}

func TestPostToggleRoundTrip(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.AddPost(ctx, "p1"))
	assert.True(t, s.IsPostFavorite("p1"))
	assert.False(t, s.IsYieldFavorite("p1"), "yield and post sets are independent")

	require.NoError(t, s.RemovePost(ctx, "p1"))
	assert.False(t, s.IsPostFavorite("p1"))
}

func TestDoubleAddStaysSingle(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.AddYield(ctx, "y1"))
	require.NoError(t, s.AddYield(ctx, "y1"))
	assert.Equal(t, []string{"y1"}, s.Snapshot().Yields)

	require.NoError(t, s.RemoveYield(ctx, "y1"))
	assert.False(t, s.IsYieldFavorite("y1"))
	assert.Empty(t, s.Snapshot().Yields)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.RemoveYield(ctx, "missing"))
	assert.Empty(t, s.Snapshot().Yields)
}

func TestOrderPreservedAcrossRestart(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	first := newStore(t, backend)
	require.NoError(t, first.AddYield(ctx, "y3"))
	require.NoError(t, first.AddYield(ctx, "y1"))
	require.NoError(t, first.AddPost(ctx, "p2"))

	second := newStore(t, backend)
	assert.Equal(t, []string{"y3", "y1"}, second.Snapshot().Yields)
	assert.Equal(t, []string{"p2"}, second.Snapshot().Posts)
	assert.True(t, second.IsYieldFavorite("y1"))
}

func TestRehydrationCollapsesDuplicates(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	// Older persisted blobs may carry duplicate entries
	blob := []byte(`{"yields":["y1","y2","y1"],"posts":[]}`)
	require.NoError(t, backend.Save(ctx, favorites.Namespace, blob))

	s := newStore(t, backend)
	assert.Equal(t, []string{"y1", "y2"}, s.Snapshot().Yields)
}
