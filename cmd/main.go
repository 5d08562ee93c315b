package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	"coop-sync/internal/adapter/cm"
	httpadapter "coop-sync/internal/adapter/http"
	"coop-sync/internal/adapter/postgres"
	"coop-sync/internal/adapter/usecase"
	"coop-sync/internal/adapter/warehouse"
	"coop-sync/internal/config"
	"coop-sync/internal/db"
)

// main is the entry point of the coop-sync service. It loads configuration,
// optionally runs database migrations, initializes the entity store, the
// warehouse gateway and the conversion upload client, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	gateway, err := warehouse.NewGateway(ctx, cfg.Warehouse, logger)
	if err != nil {
		logger.Error("warehouse connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer gateway.Close()

	store := postgres.NewConfigStore(pool)
	uploader := cm.NewClient(ctx, cfg.CM, logger)

	configSvc := usecase.NewConfigService(store, gateway, logger)
	syncSvc := usecase.NewSyncService(store, gateway, logger, cfg.Sweep.Workers)
	exportSvc := usecase.NewExportService(store, gateway, logger)
	deliverySvc := usecase.NewDeliveryService(store, gateway, uploader, logger, cfg.CM.BatchSize)

	handler := httpadapter.NewHandler(configSvc, syncSvc, exportSvc, deliverySvc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The signal context is already cancelled here; the grace window
	// needs a fresh parent.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
