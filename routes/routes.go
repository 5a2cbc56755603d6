package routes

import (
	"net/http"
	"time"

	providerRepo "homigo/database/repository/provider"
	"homigo/handlers"
	"homigo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the route table needs.
type HandlerBundle struct {
	ProviderRepo    providerRepo.ProviderRepository
	SearchHandler   *handlers.SearchHandler
	CatalogHandler  *handlers.CatalogHandler
	ProviderHandler *handlers.ProviderHandler
}

// RegisterSearchRoutes registers the provider matching endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.POST("/providers", hb.SearchHandler.FindProviders)
	}
}

// RegisterCatalogRoutes registers service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.CatalogHandler.ListServices)
		api.GET("/services/:id", hb.CatalogHandler.GetService)
		api.GET("/categories", hb.CatalogHandler.ListCategories)

		// Catalog writes require authentication.
		api.POST("/services",
			middleware.JWTAuthProviderMiddleware(hb.ProviderRepo),
			hb.CatalogHandler.CreateService)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints.
		api.POST("/register", hb.ProviderHandler.RegisterProviderHandler)
		api.POST("/login", hb.ProviderHandler.AuthenticateProviderHandler)
		api.GET("/id/:id", hb.ProviderHandler.GetProviderByIDHandler)
		api.GET("/:id/availability", hb.ProviderHandler.GetProviderAvailabilityHandler)

		// Endpoints that modify provider data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.PUT("/availability", hb.ProviderHandler.UpdateWeeklyAvailabilityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homigo"})
	})
}

// RegisterRoutes wires CORS and all route groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSearchRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
