// Package app assembles the state containers over a shared storage backend.
package app

import (
	"context"
	"fmt"

	"github.com/agrolink/agrolink/internal/cart"
	"github.com/agrolink/agrolink/internal/favorites"
	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/storage"
)

// Stores bundles the four state containers
type Stores struct {
	Session   *session.Store
	Favorites *favorites.Store
	Cart      *cart.Store
	Basket    *cart.Store
}

// NewStores rehydrates all four containers from the backend
func NewStores(ctx context.Context, backend storage.Store) (*Stores, error) {
	sessions, err := session.NewStore(ctx, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	favs, err := favorites.NewStore(ctx, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorites store: %w", err)
	}

	cartStore, err := cart.NewStore(ctx, backend, cart.CartNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart store: %w", err)
	}

	basketStore, err := cart.NewStore(ctx, backend, cart.BasketNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create basket store: %w", err)
	}

	return &Stores{
		Session:   sessions,
		Favorites: favs,
		Cart:      cartStore,
		Basket:    basketStore,
	}, nil
}
