// Package main is the entry point for the Pagesmith server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagesmith/internal/autosave"
	"pagesmith/internal/cache"
	"pagesmith/internal/config"
	"pagesmith/internal/database"
	"pagesmith/internal/handlers"
	"pagesmith/internal/media"
	"pagesmith/internal/middleware"
	"pagesmith/internal/models"
	"pagesmith/internal/router"
	"pagesmith/internal/storage"
	"pagesmith/internal/store"
)

func main() {
	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the starter document if the config row is missing.
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (Redis-compatible page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	configStore := store.NewConfigStore(db)

	// Connect to S3-compatible object storage (optional — uploads stay
	// local without it).
	var storageClient *storage.Client
	if cfg.HasS3() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		}
	} else {
		slog.Info("s3 storage not configured, uploads stay local")
	}

	mediaStore, err := media.NewStore(cfg.AssetsDir, storageClient)
	if err != nil {
		slog.Error("failed to initialize media store", "error", err)
		os.Exit(1)
	}

	// Background draft saves invalidate the page cache the same way
	// direct API saves do.
	debouncer := autosave.New(func(ctx context.Context, doc *models.LandingConfig, expectVersion int64) (int64, error) {
		version, err := configStore.Save(ctx, doc, expectVersion)
		if err == nil {
			pageCache.InvalidateAll(ctx)
		}
		return version, err
	}, cfg.AutosaveInterval)
	defer debouncer.Stop()

	// Create handler groups with their dependencies.
	configHandlers := handlers.NewConfig(configStore, pageCache)
	draftHandlers := handlers.NewDraft(debouncer)
	mediaHandlers := handlers.NewMedia(mediaStore)
	publicHandlers := handlers.NewPublic(configStore, pageCache)

	// Uploads: 30 requests per minute per IP. Stopped on shutdown so the
	// limiter's cleanup goroutine does not outlive the server.
	uploadLimiter := middleware.NewRateLimiter(30, time.Minute)
	defer uploadLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(configHandlers, draftHandlers, mediaHandlers, publicHandlers, cfg.AssetsDir, uploadLimiter)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// batch image saves, which decode and thumbnail several files.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, flush any pending
	// draft, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := debouncer.Flush(ctx); err != nil {
		slog.Error("draft flush on shutdown failed", "error", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
