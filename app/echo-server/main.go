package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clovermarket/app/echo-server/router"
	"clovermarket/business/catalog"
	"clovermarket/business/recommendation"
	"clovermarket/internal/middleware"
	psqlRepo "clovermarket/internal/repository/postgres"
	"clovermarket/internal/rest"
	"clovermarket/pkg/config"
	"clovermarket/pkg/database"
	"clovermarket/pkg/logger"
	"clovermarket/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Clovermarket", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)

	// Init service
	catalogService := catalog.NewCatalogService(productRepo)
	recommendationService := recommendation.NewService(productRepo, ordersRepo, recommendation.Config{
		CandidatePoolSize: cfg.Recommendation.CandidatePoolSize,
		RecencyWindow:     time.Duration(cfg.Recommendation.RecencyDays) * 24 * time.Hour,
		OrderScanLimit:    cfg.Recommendation.OrderScanLimit,
	})

	// Init handler
	catalogHandler := rest.NewCatalogHandler(catalogService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	authRequired, merchantOnly := router.MerchantGate(cfg.JWT.SecretKey)
	api := e.Group("/api/v1")
	router.SetupCatalogRoutes(api, catalogHandler, authRequired, merchantOnly)
	router.SetupRecommendationRoutes(api, recommendationHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
