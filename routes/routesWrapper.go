package routes

import (
	"fmt"
	"net/http"

	"cookbook/ingredients"
	"cookbook/live"
	"cookbook/ratelim"
	"cookbook/recipes"
	"cookbook/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Handlers bundles everything the router dispatches to.
type Handlers struct {
	Recipes     *recipes.Handler
	Ingredients *ingredients.Handler
	Hub         *live.Hub
	Log         *zap.Logger
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// RoutesWrapper builds the router with every route registered.
func RoutesWrapper(h Handlers, rateLimiter *ratelim.RateLimiter, auth Auth) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	AddRecipeRoutes(router, h.Recipes, rateLimiter, auth)
	AddIngredientRoutes(router, h.Ingredients, rateLimiter)
	AddLiveRoutes(router, h.Hub, h.Log)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
	})
	return router
}
