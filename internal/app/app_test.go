package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/agrolink/internal/app"
	"github.com/agrolink/agrolink/internal/catalog"
	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/storage"
)

func TestNewStoresStartsEmpty(t *testing.T) {
	stores, err := app.NewStores(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)

	assert.False(t, stores.Session.IsAuthenticated())
	assert.Empty(t, stores.Favorites.Snapshot().Yields)
	assert.Equal(t, 0, stores.Cart.ItemCount())
	assert.Equal(t, 0, stores.Basket.ItemCount())
}

func TestNewStoresRehydratesAllContainers(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	first, err := app.NewStores(ctx, backend)
	require.NoError(t, err)

	require.NoError(t, first.Session.Login(ctx, session.User{ID: "u1", Name: "Amina"}))
	require.NoError(t, first.Favorites.AddYield(ctx, "y1"))
	require.NoError(t, first.Cart.Add(ctx, catalog.Yield{ID: "y1", Price: 500}, 2))
	require.NoError(t, first.Basket.Add(ctx, catalog.Yield{ID: "y3", Price: 1000}, 1))

	second, err := app.NewStores(ctx, backend)
	require.NoError(t, err)

	assert.True(t, second.Session.IsAuthenticated())
	assert.True(t, second.Favorites.IsYieldFavorite("y1"))
	assert.Equal(t, 1000.0, second.Cart.Total())
	assert.Equal(t, 1000.0, second.Basket.Total())
}
