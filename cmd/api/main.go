package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luxestore/luxe_api/internal/catalog"
	"github.com/luxestore/luxe_api/internal/config"
	"github.com/luxestore/luxe_api/internal/handler"
	"github.com/luxestore/luxe_api/internal/middleware"
	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/service"
)

// main is the application entrypoint for the Luxe Store catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting luxe api")

	// 3. Load catalog
	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	store, err := catalog.New(products)
	if err != nil {
		log.Error().Err(err).Msg("catalog validation failed")
		fmt.Fprintf(os.Stderr, "catalog validation failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().
		Int("products", store.Len()).
		Int("categories", len(store.Categories())-1).
		Int("brands", len(store.Brands())-1).
		Msg("catalog loaded")

	// 4. Initialize services
	productSvc := service.NewProductService(store)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(productSvc),
		Product: handler.NewProductHandler(productSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute).Handle())
	}
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Product *handler.ProductHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.Product.GetProducts)
		v1.GET("/products/:id", handlers.Product.GetProduct)
		v1.GET("/products/:id/related", handlers.Product.GetRelatedProducts)
		v1.GET("/categories", handlers.Product.GetCategories)
		v1.GET("/brands", handlers.Product.GetBrands)
	}
}

// loadCatalog reads the product seed, either from the embedded data or from
// an override file.
func loadCatalog(path string) ([]models.Product, error) {
	if path != "" {
		log.Info().Str("path", path).Msg("loading catalog from file")
		return catalog.LoadFile(path)
	}
	return catalog.LoadEmbedded()
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
