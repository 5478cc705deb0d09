package main

import (
	"context"
	"fmt"
	"log"
	"myPotionMaker/app/echo-server/router"
	"myPotionMaker/business/brewing"
	"myPotionMaker/business/catalog"
	"myPotionMaker/internal/middleware"
	"myPotionMaker/internal/repository/file"
	psqlRepo "myPotionMaker/internal/repository/postgres"
	"myPotionMaker/internal/rest"
	"myPotionMaker/pkg/config"
	"myPotionMaker/pkg/database"
	"myPotionMaker/pkg/logger"
	"myPotionMaker/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Potion Maker", "version", cfg.App.Version)

	metrics.Init()

	// Init catalog repository
	var (
		ingredientRepo catalog.IngredientRepository
		db             *gorm.DB
	)
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err = database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
		ingredientRepo = psqlRepo.NewIngredientRepository(db)
	case config.CatalogSourceYAML:
		ingredientRepo = file.NewIngredientYAMLRepository(cfg.Catalog.Path)
	default:
		ingredientRepo = file.NewIngredientCSVRepository(cfg.Catalog.Path)
	}

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	ingredientCatalog, err := catalog.Load(loadCtx, ingredientRepo)
	loadCancel()
	if err != nil {
		logger.Fatal("Failed to load ingredient catalog", "source", cfg.Catalog.Source, "error", err)
	}

	// the catalog is fully in memory from here on
	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	negativeScores, err := brewing.ParseNegativeScorePolicy(cfg.Brewing.NegativeScores)
	if err != nil {
		logger.Fatal("Invalid brewing config", "error", err)
	}

	// Init service
	brewCfg := brewing.DefaultConfig()
	brewCfg.DefaultRareMult = cfg.Brewing.DefaultRareMult
	brewCfg.NegativeScores = negativeScores
	brewingService := brewing.NewBrewingService(ingredientCatalog, brewCfg)

	// Init handler
	ingredientHandler := rest.NewIngredientHandler(ingredientCatalog)
	brewHandler := rest.NewBrewHandler(brewingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupIngredientRoutes(api, ingredientHandler)
	router.SetupBrewRoutes(api, brewHandler)
	router.SetupMetricsRoute(e)

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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
