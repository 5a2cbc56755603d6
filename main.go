// File: homigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homigo/config"
	"homigo/database"
	catalogRepo "homigo/database/repository/catalog"
	providerRepo "homigo/database/repository/provider"
	"homigo/handlers"
	"homigo/middleware"
	"homigo/routes"
	"homigo/services/matching"
	"homigo/services/provider"
	"homigo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()

	// services.
	matchingServiceInstance := &matching.DefaultMatchingService{
		ProviderRepo:     provRepo,
		CacheClient:      utils.GetCacheClient(),
		CacheTTL:         time.Duration(config.AppConfig.MatchCacheTTLSeconds) * time.Second,
		DefaultRadiusKm:  config.AppConfig.DefaultSearchRadiusKm,
		ExpandedRadiusKm: config.AppConfig.ExpandedSearchRadiusKm,
	}
	providerServiceInstance := &provider.DefaultProviderService{
		Repo: provRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		ProviderRepo:    provRepo,
		SearchHandler:   handlers.NewSearchHandler(matchingServiceInstance, logger),
		CatalogHandler:  handlers.NewCatalogHandler(catRepo, logger),
		ProviderHandler: handlers.NewProviderHandler(providerServiceInstance, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
