package routes

import (
	"cookbook/ingredients"
	"cookbook/live"
	"cookbook/ratelim"
	"cookbook/recipes"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Auth wraps a handle with request identity resolution.
type Auth func(httprouter.Handle) httprouter.Handle

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rateLimiter *ratelim.RateLimiter, auth Auth) {
	router.GET("/recipes", rateLimiter.Limit(h.GetRecipes))
	router.GET("/recipes/:id", rateLimiter.Limit(h.GetRecipe))
	router.GET("/recipes/:id/card", rateLimiter.Limit(h.GetRecipeCard))
	router.POST("/recipes", rateLimiter.Limit(auth(h.CreateRecipe)))
	router.PUT("/recipes/:id", rateLimiter.Limit(auth(h.UpdateRecipe)))
	router.PATCH("/recipes/:id", rateLimiter.Limit(auth(h.PatchRecipe)))
	router.DELETE("/recipes/:id", rateLimiter.Limit(auth(h.DeleteRecipe)))
	router.POST("/recipes/:id/publish", rateLimiter.Limit(auth(h.PublishRecipe)))
	router.POST("/recipes/:id/unpublish", rateLimiter.Limit(auth(h.UnpublishRecipe)))
}

func AddIngredientRoutes(router *httprouter.Router, h *ingredients.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/ingredients", rateLimiter.Limit(h.GetIngredients))
	router.GET("/ingredients/:id", rateLimiter.Limit(h.GetIngredient))
	router.POST("/ingredients", rateLimiter.Limit(h.CreateIngredient))
	router.PUT("/ingredients/:id", rateLimiter.Limit(h.UpdateIngredient))
	router.PATCH("/ingredients/:id", rateLimiter.Limit(h.PatchIngredient))
	router.DELETE("/ingredients/:id", rateLimiter.Limit(h.DeleteIngredient))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub, log *zap.Logger) {
	router.GET("/live", live.ServeWS(hub, log))
}
