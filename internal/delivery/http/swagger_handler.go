package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary Log in via the auth collaborator
// @Description Exchange credentials for a token; replaces the session on success
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *Handler) LoginDoc() {}

// Register godoc
// @Summary Register a new account
// @Description Create an account with the auth collaborator
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,phone=string,password=string} true "Registration data"
// @Success 201 {object} object{token=string,user=object}
// @Failure 400 {object} object{error=string}
// @Router /auth/register [post]
func (h *Handler) RegisterDoc() {}

// GetSession godoc
// @Summary Current session state
// @Tags Session
// @Produce json
// @Success 200 {object} object{user=object,isAuthenticated=bool,isGuest=bool}
// @Router /session [get]
func (h *Handler) GetSessionDoc() {}

// GetContainer godoc
// @Summary Cart contents with running total
// @Tags Cart
// @Produce json
// @Success 200 {object} object{items=array,total=number,itemCount=int}
// @Router /cart [get]
func (h *Handler) GetContainerDoc() {}

// AddContainerItem godoc
// @Summary Add a yield to the cart
// @Description Merges into an existing line for the same yield
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{yieldId=string,quantity=int} true "Yield and quantity"
// @Success 200 {object} object{items=array,total=number,itemCount=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /cart/items [post]
func (h *Handler) AddContainerItemDoc() {}

// GetFavorites godoc
// @Summary Favorited yield and post IDs
// @Tags Favorites
// @Produce json
// @Success 200 {object} object{yields=array,posts=array}
// @Router /favorites [get]
func (h *Handler) GetFavoritesDoc() {}

// ListYields godoc
// @Summary List catalog yields
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Search term"
// @Success 200 {array} catalog.Yield
// @Router /yields [get]
func (h *Handler) ListYieldsDoc() {}
