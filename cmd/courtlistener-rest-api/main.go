// cmd/courtlistener-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/SharpenYourSword/courtlistener/internal/api/rest/v1"
	"github.com/SharpenYourSword/courtlistener/internal/app"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/cache"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/persistence"
	infrasearch "github.com/SharpenYourSword/courtlistener/internal/infrastructure/search"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  v1.Services
	listCache cache.ListCache
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.MigrateAll(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	courtRepo, err := persistence.NewGormCourtRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create court repository: %w", err)
	}

	originatingCourtRepo, err := persistence.NewGormOriginatingCourtInfoRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create originating court info repository: %w", err)
	}

	docketRepo, err := persistence.NewGormDocketRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create docket repository: %w", err)
	}

	docketEntryRepo, err := persistence.NewGormDocketEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create docket entry repository: %w", err)
	}

	caseDocumentRepo, err := persistence.NewGormCaseDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create case document repository: %w", err)
	}

	tagRepo, err := persistence.NewGormTagRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag repository: %w", err)
	}

	clusterRepo, err := persistence.NewGormOpinionClusterRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create opinion cluster repository: %w", err)
	}

	opinionRepo, err := persistence.NewGormOpinionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create opinion repository: %w", err)
	}

	citationRepo, err := persistence.NewGormCitationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create citation repository: %w", err)
	}

	// Initialize the search provider
	searchProvider, err := infrasearch.NewSQLProvider(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	// Initialize the list cache
	listCache, err := cache.NewListCache(cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create list cache: %w", err)
	}

	// Initialize services
	courtService, err := app.NewCourtService(courtRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create court service: %w", err)
	}

	originatingCourtService, err := app.NewOriginatingCourtInfoService(originatingCourtRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create originating court info service: %w", err)
	}

	docketService, err := app.NewDocketService(docketRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create docket service: %w", err)
	}

	docketEntryService, err := app.NewDocketEntryService(docketEntryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create docket entry service: %w", err)
	}

	caseDocumentService, err := app.NewCaseDocumentService(caseDocumentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create case document service: %w", err)
	}

	tagService, err := app.NewTagService(tagRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag service: %w", err)
	}

	clusterService, err := app.NewOpinionClusterService(clusterRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create opinion cluster service: %w", err)
	}

	opinionService, err := app.NewOpinionService(opinionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create opinion service: %w", err)
	}

	citationService, err := app.NewCitationService(citationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create citation service: %w", err)
	}

	searchService, err := app.NewSearchService(searchProvider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		services: v1.Services{
			CourtService:            courtService,
			OriginatingCourtService: originatingCourtService,
			DocketService:           docketService,
			DocketEntryService:      docketEntryService,
			CaseDocumentService:     caseDocumentService,
			TagService:              tagService,
			OpinionClusterService:   clusterService,
			OpinionService:          opinionService,
			CitationService:         citationService,
			SearchService:           searchService,
		},
		listCache: listCache,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.APIKeyHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(v1.MetricsMiddleware())
	r.Use(v1.RequestLogging(log))
	v1.RegisterMetricsRoute(r)

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.listCache, cfg.Auth, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
