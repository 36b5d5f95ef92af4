package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"item-catalog/config"
	_ "item-catalog/docs" // Swagger docs
	"item-catalog/internal/httpserver"
	"item-catalog/internal/item"
	"item-catalog/internal/item/photostore/local"
	itemRepo "item-catalog/internal/item/repository/postgre"
	itemUC "item-catalog/internal/item/usecase"
	"item-catalog/migrations"
	"item-catalog/pkg/log"
	"item-catalog/pkg/migrator"
	"item-catalog/pkg/postgres"
)

// @title       Item Catalog API
// @description CRUD catalog of items with photo upload, pagination, filtering and sorting.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Catalog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres + migrations
	db, err := postgres.Connect(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to postgres: %v", err)
		return
	}
	defer db.Close()

	if err := migrator.Up(db, migrations.FS); err != nil {
		logger.Errorf(ctx, "Failed to run migrations: %v", err)
		return
	}

	// 4. Photo store (creates the upload directory, idempotent)
	photos, err := local.New(local.Config{
		Dir:          cfg.Uploads.Dir,
		PublicPrefix: cfg.Uploads.PublicPrefix,
		Dimension:    cfg.Uploads.Dimension,
		Quality:      cfg.Uploads.Quality,
	}, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to init photo store: %v", err)
		return
	}

	// 5. Item domain
	repo := itemRepo.New(db, logger)
	uc := itemUC.New(repo, photos, logger)

	// 6. Periodic orphan reconciliation (optional)
	if cfg.Reconcile.Interval > 0 {
		go runReconcileLoop(ctx, logger, uc, cfg.Reconcile.Interval)
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ItemUseCase:   uc,
		MaxPhotoBytes: cfg.Uploads.MaxSizeBytes,
		DefaultLimit:  cfg.Pagination.DefaultLimit,
		RateLimitPM:   cfg.RateLimit.PerMin,
		StaticDir:     cfg.Uploads.Dir,
		StaticPrefix:  cfg.Uploads.PublicPrefix,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// runReconcileLoop sweeps orphan photo files on a fixed interval until ctx is
// cancelled.
func runReconcileLoop(ctx context.Context, logger log.Logger, uc item.UseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Infof(ctx, "Orphan reconcile scheduled every %s", interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := uc.Reconcile(ctx)
			if err != nil {
				logger.Warnf(ctx, "Scheduled reconcile failed: %v", err)
				continue
			}
			if len(out.Deleted) > 0 || len(out.Warnings) > 0 {
				logger.Infof(ctx, "Scheduled reconcile: %d deleted, %d warning(s)",
					len(out.Deleted), len(out.Warnings))
			}
		}
	}
}
