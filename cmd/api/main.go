package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"withdrawal-service/config"
	httpHandler "withdrawal-service/internal/adapter/http/handler"
	"withdrawal-service/internal/adapter/storage/memory"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/internal/service"
	"withdrawal-service/pkg/logger"
	"withdrawal-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("seed", cfg.Store.SeedDemoData).
		Msg("Starting Withdrawal Service")

	// Initialize in-memory store
	var store *memory.Store
	if cfg.Store.SeedDemoData {
		store = memory.NewSeededStore()
		log.Info().Int("records", store.Len()).Msg("Demo dataset loaded")
	} else {
		store = memory.NewStore()
	}

	// Initialize services
	querySvc := service.NewQueryService(store)
	commandSvc := service.NewCommandService(store, log)
	uploadSvc := service.NewUploadService(cfg.Upload.MaxSizeMB, log)
	facade := service.NewStateFacade(querySvc, commandSvc, log)

	// Initialize metrics
	collector := metrics.NewCollector("withdrawal_service")

	// Initialize health checkers
	storeHealth := memory.NewHealthCheck(store)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		QuerySvc:       querySvc,
		CommandSvc:     commandSvc,
		UploadSvc:      uploadSvc,
		Facade:         facade,
		MaxUploadFiles: cfg.Upload.MaxFiles,
		Collector:      collector,
		HealthCheckers: []ports.HealthChecker{storeHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
