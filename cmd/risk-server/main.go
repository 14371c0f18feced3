// cmd/risk-server/main.go
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

	"go.uber.org/zap"

	"inventory-risk-service/internal/catalog"
	"inventory-risk-service/internal/common/config"
	"inventory-risk-service/internal/common/database"
	apperrors "inventory-risk-service/internal/common/errors"
	"inventory-risk-service/internal/common/logger"
	"inventory-risk-service/internal/common/observability"
	"inventory-risk-service/internal/risk"
	"inventory-risk-service/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	zapLog.Info("Starting inventory risk service...",
		zap.String("environment", cfg.App.Environment),
		zap.String("catalog_backend", cfg.Catalog.Backend),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load classifier artifact (one shot) ---
	var engine *risk.Engine
	modelVersion := ""
	if cfg.Model.ArtifactPath == "" {
		zapLog.Info("No classifier artifact configured, using rule-based scoring")
		engine = risk.NewEngine(nil)
	} else {
		model, err := risk.LoadArtifact(cfg.Model.ArtifactPath)
		if err != nil {
			svcErr := apperrors.NewArtifactUnavailableError(err)
			zapLog.Warn(svcErr.Message,
				zap.String("artifact_path", cfg.Model.ArtifactPath),
				zap.Error(err),
			)
			engine = risk.NewEngine(nil)
		} else {
			modelVersion = model.Version()
			zapLog.Info("Classifier artifact loaded",
				zap.String("artifact_path", cfg.Model.ArtifactPath),
				zap.String("model_version", modelVersion),
			)
			engine = risk.NewEngine(model)
		}
	}

	// --- Build the catalog store ---
	var store catalog.Store
	switch cfg.Catalog.Backend {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")

		store = catalog.NewPostgresStore(pg.DB)

	case "file":
		fileStore, err := catalog.NewFileStore(cfg.Catalog.FilePath)
		if err != nil {
			// Mirror the predict-only deployment mode: the scoring API
			// still works without a catalog.
			zapLog.Warn("catalog file unavailable, product endpoints degrade to empty",
				zap.String("path", cfg.Catalog.FilePath),
				zap.Error(err),
			)
			store = emptyStore{}
		} else {
			store = fileStore
		}

	default:
		zapLog.Fatal("unknown catalog backend", zap.String("backend", cfg.Catalog.Backend))
	}

	// --- Optional Redis read-through cache ---
	if cfg.Database.Redis.Enabled && cfg.Catalog.CacheTTL > 0 {
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, serving catalog uncached", zap.Error(err))
		} else {
			defer rdb.Close()
			zapLog.Info("Redis connected successfully")
			ttl := time.Duration(cfg.Catalog.CacheTTL) * time.Second
			store = catalog.NewCachedStore(store, rdb.Client, ttl, logger.NewZapAdapter(zapLog))
		}
	}

	// --- HTTP server ---
	srv := server.New(zapLog, engine, store, obs, server.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ModelVersion:   modelVersion,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}

// emptyStore serves no products. It stands in when the configured
// catalog file is missing so the predict endpoint stays available.
type emptyStore struct{}

func (emptyStore) List(ctx context.Context) ([]catalog.Product, error) {
	return []catalog.Product{}, nil
}

func (emptyStore) Get(ctx context.Context, id string) (catalog.Product, error) {
	return catalog.Product{}, catalog.ErrProductNotFound
}
