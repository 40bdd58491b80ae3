package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/agrolink/internal/app"
	"github.com/agrolink/agrolink/internal/auth"
	"github.com/agrolink/agrolink/internal/catalog"
	delivery "github.com/agrolink/agrolink/internal/delivery/http"
	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/storage"
)

// The handler registers Prometheus collectors globally, so one fixture is
// shared across tests; each test resets the state it touches through the API.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func router(t *testing.T) *mux.Router {
	t.Helper()
	setupOnce.Do(func() {
		collaborator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/login":
				var req struct {
					Email    string `json:"email"`
					Password string `json:"password"`
				}
				json.NewDecoder(r.Body).Decode(&req)
				if req.Password != "secret123" {
					w.WriteHeader(http.StatusUnauthorized)
					json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
					return
				}
				json.NewEncoder(w).Encode(auth.AuthResponse{
					Token: "login-token",
					User:  &session.User{ID: "u1", Name: "Amina", Email: req.Email},
				})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		backend := storage.NewMemoryStore()
		stores, err := app.NewStores(context.Background(), backend)
		if err != nil {
			panic(err)
		}

		handler := delivery.NewHandler(
			stores.Session,
			stores.Favorites,
			stores.Cart,
			stores.Basket,
			catalog.NewSeededRepository(),
			auth.NewClient(collaborator.URL, backend),
		)

		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router(t).ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type containerView struct {
	Items []struct {
		ID       string `json:"id"`
		YieldID  string `json:"yieldId"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

func TestCartFlow(t *testing.T) {
	require.Equal(t, http.StatusOK, do(t, "DELETE", "/cart", "").Code)

	rec := do(t, "POST", "/cart/items", `{"yieldId":"y1","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, "POST", "/cart/items", `{"yieldId":"y3","quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view containerView
	decode(t, rec, &view)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 2000.0, view.Total)
	assert.Equal(t, 3, view.ItemCount)

	// Same yield merges into the existing line
	rec = do(t, "POST", "/cart/items", `{"yieldId":"y1","quantity":1}`)
	decode(t, rec, &view)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 4, view.ItemCount)

	// Decrement to zero removes the line
	lineID := view.Items[0].ID
	rec = do(t, "PUT", "/cart/items/"+lineID, `{"quantity":0}`)
	decode(t, rec, &view)
	assert.Len(t, view.Items, 1)

	rec = do(t, "DELETE", "/cart", "")
	decode(t, rec, &view)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartRejectsUnknownYield(t *testing.T) {
	rec := do(t, "POST", "/cart/items", `{"yieldId":"nope","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartRejectsNonPositiveQuantity(t *testing.T) {
	rec := do(t, "POST", "/cart/items", `{"yieldId":"y1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBasketIsIndependentOfCart(t *testing.T) {
	require.Equal(t, http.StatusOK, do(t, "DELETE", "/cart", "").Code)
	require.Equal(t, http.StatusOK, do(t, "DELETE", "/basket", "").Code)

	require.Equal(t, http.StatusOK, do(t, "POST", "/basket/items", `{"yieldId":"y5","quantity":2}`).Code)

	var basket containerView
	decode(t, do(t, "GET", "/basket", ""), &basket)
	assert.Equal(t, 1400.0, basket.Total)

	var cartView containerView
	decode(t, do(t, "GET", "/cart", ""), &cartView)
	assert.Empty(t, cartView.Items)
}

func TestFavoritesToggle(t *testing.T) {
	do(t, "DELETE", "/favorites/yields/y2", "")

	var check map[string]bool
	decode(t, do(t, "GET", "/favorites/yields/y2", ""), &check)
	assert.False(t, check["favorite"])

	decode(t, do(t, "POST", "/favorites/yields/y2", ""), &check)
	assert.True(t, check["favorite"])

	decode(t, do(t, "GET", "/favorites/yields/y2", ""), &check)
	assert.True(t, check["favorite"])

	decode(t, do(t, "DELETE", "/favorites/yields/y2", ""), &check)
	assert.False(t, check["favorite"])
}

func TestSessionLifecycle(t *testing.T) {
	require.Equal(t, http.StatusOK, do(t, "POST", "/auth/logout", "").Code)

	var state session.State
	decode(t, do(t, "POST", "/auth/guest", ""), &state)
	assert.True(t, state.IsGuest)
	assert.False(t, state.IsAuthenticated)

	// Successful login supersedes the guest session
	rec := do(t, "POST", "/auth/login", `{"email":"amina@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	decode(t, do(t, "GET", "/session", ""), &state)
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsGuest)

	// Failed login mutates nothing
	rec = do(t, "POST", "/auth/login", `{"email":"amina@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	decode(t, do(t, "GET", "/session", ""), &state)
	assert.True(t, state.IsAuthenticated)

	decode(t, do(t, "POST", "/auth/logout", ""), &state)
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
}

func TestUpdateUserPatch(t *testing.T) {
	require.Equal(t, http.StatusOK, do(t, "POST", "/auth/login", `{"email":"amina@example.com","password":"secret123"}`).Code)

	var state session.State
	decode(t, do(t, "PUT", "/session/user", `{"isFarmer":true}`), &state)
	require.NotNil(t, state.User)
	assert.True(t, state.User.IsFarmer)
	assert.Equal(t, "Amina", state.User.Name, "unpatched fields survive")
}

func TestCatalogEndpoints(t *testing.T) {
	rec := do(t, "GET", "/yields?category=vegetables", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var yields []catalog.Yield
	decode(t, rec, &yields)
	assert.Len(t, yields, 2)

	assert.Equal(t, http.StatusNotFound, do(t, "GET", "/yields/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, "GET", "/farmers/f99", "").Code)
	assert.Equal(t, http.StatusOK, do(t, "GET", "/farmers/f1", "").Code)
	assert.Equal(t, http.StatusOK, do(t, "GET", "/posts", "").Code)
	assert.Equal(t, http.StatusOK, do(t, "GET", "/conversations", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, "GET", "/conversations/c99/messages", "").Code)
	assert.Equal(t, http.StatusOK, do(t, "GET", "/health", "").Code)
}
