package router

import (
	"github.com/gin-gonic/gin"

	"forkful/internal/config"
	"forkful/internal/handler"
	"forkful/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	listH *handler.ShoppingListHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	extract := v1.Group("/extract")
	extract.POST("/web", extractH.ExtractWeb)
	extract.POST("/youtube", extractH.ExtractYouTube)
	extract.POST("/image", extractH.ExtractImage)

	recipes := v1.Group("/recipes")
	recipes.GET("", extractH.ListRecipes)
	recipes.GET("/:id", extractH.GetRecipe)
	recipes.POST("/:id/convert", extractH.ConvertDiet)
	recipes.GET("/:id/shopping-list", listH.Get)
	recipes.GET("/:id/shopping-list.xlsx", listH.Export)

	return r
}
