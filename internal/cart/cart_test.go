package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/agrolink/internal/cart"
	"github.com/agrolink/agrolink/internal/catalog"
	"github.com/agrolink/agrolink/pkg/storage"
)

var (
	tomatoes = catalog.Yield{ID: "y1", Title: "Fresh Tomatoes", Price: 500, Unit: "kg"}
	honey    = catalog.Yield{ID: "y3", Title: "Raw Honey", Price: 1000, Unit: "jar"}
)

func newStore(t *testing.T, backend storage.Store, namespace string) *cart.Store {
	t.Helper()
	s, err := cart.NewStore(context.Background(), backend, namespace)
	require.NoError(t, err)
	return s
}

func TestAddMergesExistingLine(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 2))
	require.NoError(t, s.Add(ctx, tomatoes, 3))

	items := s.Items()
	require.Len(t, items, 1, "adding the same yield twice must not create a second line")
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "y1", items[0].YieldID)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	assert.Error(t, s.Add(ctx, tomatoes, 0))
	assert.Error(t, s.Add(ctx, tomatoes, -1))
	assert.Empty(t, s.Items())
}

func TestTotalAndItemCount(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 2))
	require.NoError(t, s.Add(ctx, honey, 1))

	assert.Equal(t, 2000.0, s.Total())
	assert.Equal(t, 3, s.ItemCount())
}

func TestLineIdentifiersAreUnique(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 1))
	require.NoError(t, s.Add(ctx, honey, 1))

	items := s.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.NotEmpty(t, items[0].ID)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 2))
	id := s.Items()[0].ID

	require.NoError(t, s.UpdateQuantity(ctx, id, 7))
	assert.Equal(t, 7, s.Items()[0].Quantity)
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 1))
	id := s.Items()[0].ID

	require.NoError(t, s.UpdateQuantity(ctx, id, 0))
	assert.Empty(t, s.Items(), "decrement to zero must remove the line, not leave a zero-quantity entry")
}

func TestRemoveByLineID(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 1))
	require.NoError(t, s.Add(ctx, honey, 2))
	id := s.Items()[0].ID

	require.NoError(t, s.Remove(ctx, id))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "y3", items[0].YieldID)

	// Absent line-item ID is a no-op
	require.NoError(t, s.Remove(ctx, "missing"))
	assert.Len(t, s.Items(), 1)
}

func TestClearEmptiesContainer(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tomatoes, 4))
	require.NoError(t, s.Add(ctx, honey, 2))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, 0, s.ItemCount())
	assert.Equal(t, 0.0, s.Total())
	assert.Empty(t, s.Items())
}

func TestSnapshotPriceDoesNotTrackCatalog(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore(), cart.CartNamespace)
	ctx := context.Background()

	y := tomatoes
	require.NoError(t, s.Add(ctx, y, 1))

	// A later catalog price change must not reach the line snapshot
	y.Price = 900
	assert.Equal(t, 500.0, s.Total())
}

func TestCartAndBasketAreIndependent(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	cartStore := newStore(t, backend, cart.CartNamespace)
	basketStore := newStore(t, backend, cart.BasketNamespace)

	require.NoError(t, cartStore.Add(ctx, tomatoes, 2))
	require.NoError(t, basketStore.Add(ctx, honey, 1))

	assert.Equal(t, 1000.0, cartStore.Total())
	assert.Equal(t, 1000.0, basketStore.Total())
	assert.Equal(t, 2, cartStore.ItemCount())
	assert.Equal(t, 1, basketStore.ItemCount())
}

func TestRehydrationRoundTrip(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	first := newStore(t, backend, cart.CartNamespace)
	require.NoError(t, first.Add(ctx, tomatoes, 2))
	require.NoError(t, first.Add(ctx, honey, 1))

	second := newStore(t, backend, cart.CartNamespace)
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, 2000.0, second.Total())
	assert.Equal(t, 3, second.ItemCount())
}
