package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agrolink/agrolink/internal/auth"
	"github.com/agrolink/agrolink/internal/cart"
	"github.com/agrolink/agrolink/internal/catalog"
	"github.com/agrolink/agrolink/internal/favorites"
	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/logger"
)

// Handler exposes the state containers and the read-only catalog over HTTP.
// It plays the role the screens play in the mobile client: read state,
// dispatch mutations.
type Handler struct {
	sessions  *session.Store
	favorites *favorites.Store
	cart      *cart.Store
	basket    *cart.Store
	catalog   catalog.Repository
	auth      *auth.Client

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewHandler creates the HTTP handler over the given containers
func NewHandler(
	sessions *session.Store,
	favs *favorites.Store,
	cartStore *cart.Store,
	basketStore *cart.Store,
	catalogRepo catalog.Repository,
	authClient *auth.Client,
) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrolink_requests_total",
			Help: "Total number of requests to the state service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrolink_request_duration_seconds",
			Help:    "Duration of state service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &Handler{
		sessions:       sessions,
		favorites:      favs,
		cart:           cartStore,
		basket:         basketStore,
		catalog:        catalogRepo,
		auth:           authClient,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *Handler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// --- AUTH ---

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login. On success the session store is replaced
// with the returned user; on failure no state is mutated.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if resp.User != nil {
		if err := h.sessions.Login(r.Context(), *resp.User); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// LoginAsGuest handles POST /auth/guest
func (h *Handler) LoginAsGuest(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.LoginAsGuest(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.auth.ClearToken(r.Context()); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to clear stored token")
	}
	h.respondJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// Me handles GET /auth/me against the collaborator
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// --- SESSION ---

// GetSession handles GET /session
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// UpdateUser handles PUT /session/user
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch session.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.sessions.UpdateUser(r.Context(), patch); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// --- FAVORITES ---

// GetFavorites handles GET /favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.favorites.Snapshot())
}

// AddFavoriteYield handles POST /favorites/yields/{id}
func (h *Handler) AddFavoriteYield(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.favorites.AddYield(r.Context(), id); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": true})
}

// RemoveFavoriteYield handles DELETE /favorites/yields/{id}
func (h *Handler) RemoveFavoriteYield(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.favorites.RemoveYield(r.Context(), id); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": false})
}

// CheckFavoriteYield handles GET /favorites/yields/{id}
func (h *Handler) CheckFavoriteYield(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": h.favorites.IsYieldFavorite(id)})
}

// AddFavoritePost handles POST /favorites/posts/{id}
func (h *Handler) AddFavoritePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.favorites.AddPost(r.Context(), id); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": true})
}

// RemoveFavoritePost handles DELETE /favorites/posts/{id}
func (h *Handler) RemoveFavoritePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.favorites.RemovePost(r.Context(), id); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": false})
}

// CheckFavoritePost handles GET /favorites/posts/{id}
func (h *Handler) CheckFavoritePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.respondJSON(w, http.StatusOK, map[string]bool{"favorite": h.favorites.IsPostFavorite(id)})
}

// --- CART / BASKET ---

// containerView is the read model returned for both containers
type containerView struct {
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"itemCount"`
}

func viewOf(store *cart.Store) containerView {
	items := store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return containerView{
		Items:     items,
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
}

// GetContainer handles GET /cart and GET /basket
func (h *Handler) GetContainer(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, viewOf(store))
	}
}

// AddContainerItem handles POST /cart/items and POST /basket/items. The
// yield is resolved against the catalog so the line carries a snapshot of
// it as of now.
func (h *Handler) AddContainerItem(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			YieldID  string `json:"yieldId"`
			Quantity int    `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		y, err := h.catalog.FindYieldByID(req.YieldID)
		if err != nil {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}

		if err := store.Add(r.Context(), *y, req.Quantity); err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondJSON(w, http.StatusOK, viewOf(store))
	}
}

// UpdateContainerItem handles PUT /cart/items/{id} and PUT /basket/items/{id}
func (h *Handler) UpdateContainerItem(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := store.UpdateQuantity(r.Context(), mux.Vars(r)["id"], req.Quantity); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.respondJSON(w, http.StatusOK, viewOf(store))
	}
}

// RemoveContainerItem handles DELETE /cart/items/{id} and /basket/items/{id}
func (h *Handler) RemoveContainerItem(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.respondJSON(w, http.StatusOK, viewOf(store))
	}
}

// ClearContainer handles DELETE /cart and DELETE /basket
func (h *Handler) ClearContainer(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(r.Context()); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.respondJSON(w, http.StatusOK, viewOf(store))
	}
}

// --- CATALOG (read-only) ---

// ListYields handles GET /yields with optional category and search filters
func (h *Handler) ListYields(w http.ResponseWriter, r *http.Request) {
	yields, err := h.catalog.ListYields(r.URL.Query().Get("category"), r.URL.Query().Get("search"))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if yields == nil {
		yields = []catalog.Yield{}
	}
	h.respondJSON(w, http.StatusOK, yields)
}

// GetYield handles GET /yields/{id}
func (h *Handler) GetYield(w http.ResponseWriter, r *http.Request) {
	y, err := h.catalog.FindYieldByID(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, y)
}

// ListPosts handles GET /posts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.ListPosts()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, posts)
}

// ListFarmers handles GET /farmers
func (h *Handler) ListFarmers(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.catalog.ListFarmers()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, farmers)
}

// GetFarmer handles GET /farmers/{id}
func (h *Handler) GetFarmer(w http.ResponseWriter, r *http.Request) {
	f, err := h.catalog.FindFarmerByID(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, f)
}

// ListConversations handles GET /conversations
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.catalog.ListConversations()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, conversations)
}

// GetConversation handles GET /conversations/{id}
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.FindConversationByID(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, c)
}

// ListMessages handles GET /conversations/{id}/messages
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.catalog.ListMessages(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, messages)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// respondJSON sends a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Auth
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/guest", h.metricsMiddleware("/auth/guest", h.LoginAsGuest)).Methods("POST")
	router.HandleFunc("/auth/logout", h.metricsMiddleware("/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/auth/me", h.metricsMiddleware("/auth/me", h.Me)).Methods("GET")

	// Session
	router.HandleFunc("/session", h.metricsMiddleware("/session", h.GetSession)).Methods("GET")
	router.HandleFunc("/session/user", h.metricsMiddleware("/session/user", h.UpdateUser)).Methods("PUT")

	// Favorites
	router.HandleFunc("/favorites", h.metricsMiddleware("/favorites", h.GetFavorites)).Methods("GET")
	router.HandleFunc("/favorites/yields/{id}", h.metricsMiddleware("/favorites/yields/{id}", h.CheckFavoriteYield)).Methods("GET")
	router.HandleFunc("/favorites/yields/{id}", h.metricsMiddleware("/favorites/yields/{id}", h.AddFavoriteYield)).Methods("POST")
	router.HandleFunc("/favorites/yields/{id}", h.metricsMiddleware("/favorites/yields/{id}", h.RemoveFavoriteYield)).Methods("DELETE")
	router.HandleFunc("/favorites/posts/{id}", h.metricsMiddleware("/favorites/posts/{id}", h.CheckFavoritePost)).Methods("GET")
	router.HandleFunc("/favorites/posts/{id}", h.metricsMiddleware("/favorites/posts/{id}", h.AddFavoritePost)).Methods("POST")
	router.HandleFunc("/favorites/posts/{id}", h.metricsMiddleware("/favorites/posts/{id}", h.RemoveFavoritePost)).Methods("DELETE")

	// Cart and basket share one implementation under separate prefixes
	h.registerContainerRoutes(router, "/cart", h.cart)
	h.registerContainerRoutes(router, "/basket", h.basket)

	// Catalog (read-only)
	router.HandleFunc("/yields", h.metricsMiddleware("/yields", h.ListYields)).Methods("GET")
	router.HandleFunc("/yields/{id}", h.metricsMiddleware("/yields/{id}", h.GetYield)).Methods("GET")
	router.HandleFunc("/posts", h.metricsMiddleware("/posts", h.ListPosts)).Methods("GET")
	router.HandleFunc("/farmers", h.metricsMiddleware("/farmers", h.ListFarmers)).Methods("GET")
	router.HandleFunc("/farmers/{id}", h.metricsMiddleware("/farmers/{id}", h.GetFarmer)).Methods("GET")
	router.HandleFunc("/conversations", h.metricsMiddleware("/conversations", h.ListConversations)).Methods("GET")
	router.HandleFunc("/conversations/{id}", h.metricsMiddleware("/conversations/{id}", h.GetConversation)).Methods("GET")
	router.HandleFunc("/conversations/{id}/messages", h.metricsMiddleware("/conversations/{id}/messages", h.ListMessages)).Methods("GET")

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}

func (h *Handler) registerContainerRoutes(router *mux.Router, prefix string, store *cart.Store) {
	router.HandleFunc(prefix, h.metricsMiddleware(prefix, h.GetContainer(store))).Methods("GET")
	router.HandleFunc(prefix, h.metricsMiddleware(prefix, h.ClearContainer(store))).Methods("DELETE")
	router.HandleFunc(prefix+"/items", h.metricsMiddleware(prefix+"/items", h.AddContainerItem(store))).Methods("POST")
	router.HandleFunc(prefix+"/items/{id}", h.metricsMiddleware(prefix+"/items/{id}", h.UpdateContainerItem(store))).Methods("PUT")
	router.HandleFunc(prefix+"/items/{id}", h.metricsMiddleware(prefix+"/items/{id}", h.RemoveContainerItem(store))).Methods("DELETE")
}
