package api

import (
	"log/slog"
	"net/http"

	"grocery-app/internal/config"
	"grocery-app/internal/handlers"
	"grocery-app/internal/realtime"
	"grocery-app/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP surface. hub may be nil, in which case the
// websocket endpoints are not registered and no change events are published.
func SetupRouter(s store.Storage, hub *realtime.Hub, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(logger))
	router.Use(recovery(logger))
	router.Use(cors(cfg.CORS.AllowedOrigins))

	var events handlers.Publisher
	if hub != nil {
		events = hub
	}

	groceryHandler := handlers.NewGroceryHandler(s, events, logger)
	recipeHandler := handlers.NewRecipeHandler(s, logger)
	shoppingHandler := handlers.NewShoppingHandler(s, events, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		grocery := api.Group("/grocery-items")
		{
			grocery.GET("", groceryHandler.GetItems)
			grocery.POST("", groceryHandler.CreateItem)
			grocery.GET("/:id", groceryHandler.GetItem)
			grocery.PATCH("/:id", groceryHandler.UpdateItem)
			grocery.DELETE("/:id", groceryHandler.DeleteItem)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeHandler.GetRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
		}

		shopping := api.Group("/shopping-list")
		{
			shopping.GET("", shoppingHandler.GetItems)
			shopping.POST("", shoppingHandler.CreateItem)
			shopping.PATCH("/:id", shoppingHandler.UpdateItem)
			shopping.DELETE("/:id", shoppingHandler.DeleteItem)
		}

		if hub != nil {
			wsHandler := handlers.NewWebSocketHandler(hub)
			api.GET("/ws", wsHandler.HandleWebSocket)
			api.GET("/ws/status", wsHandler.GetStatus)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
