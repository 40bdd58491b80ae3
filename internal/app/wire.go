//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/agrolink/agrolink/internal/auth"
	"github.com/agrolink/agrolink/internal/catalog"
	delivery "github.com/agrolink/agrolink/internal/delivery/http"
	"github.com/agrolink/agrolink/pkg/storage"
)

// AuthBaseURL is the base URL of the authentication collaborator
type AuthBaseURL string

// ProvideAuthClient provides the auth collaborator client
func ProvideAuthClient(baseURL AuthBaseURL, backend storage.Store) *auth.Client {
	return auth.NewClient(string(baseURL), backend)
}

// ProvideCatalog provides the read-only catalog repository
func ProvideCatalog() catalog.Repository {
	return catalog.NewSeededRepository()
}

// ProvideHandler provides the HTTP handler over the assembled containers
func ProvideHandler(stores *Stores, repo catalog.Repository, client *auth.Client) *delivery.Handler {
	return delivery.NewHandler(stores.Session, stores.Favorites, stores.Cart, stores.Basket, repo, client)
}

// Wire sets
var StoreSet = wire.NewSet(
	NewStores,
)

var HandlerSet = wire.NewSet(
	ProvideAuthClient,
	ProvideCatalog,
	ProvideHandler,
)

// InitializeHandler initializes the HTTP handler with all dependencies
func InitializeHandler(ctx context.Context, backend storage.Store, baseURL AuthBaseURL) (*delivery.Handler, error) {
	wire.Build(
		StoreSet,
		HandlerSet,
	)
	return nil, nil
}
