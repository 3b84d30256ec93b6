// Copyright (c) 2026 InsightSource. All rights reserved.

// Command api is the entry point for the catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) with bounded retries.
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insightsource/catalog/internal/api"
	"github.com/insightsource/catalog/internal/assistant"
	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/catalog/report"
	"github.com/insightsource/catalog/internal/contact"
	"github.com/insightsource/catalog/internal/platform/config"
	"github.com/insightsource/catalog/internal/platform/constants"
	"github.com/insightsource/catalog/internal/platform/migration"
	pgstore "github.com/insightsource/catalog/internal/platform/postgres"
	redisstore "github.com/insightsource/catalog/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("assistant_enabled", cfg.AssistantEnabled()),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(rootCtx, cfg.DatabaseURL, pgstore.Options{
		MaxRetries:       cfg.DBMaxRetries,
		RetryBase:        cfg.DBRetryBase,
		StatementTimeout: cfg.QueryTimeout,
	}, log)
	must(log, err, "connect to postgres")

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(rootCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	categoryRepository := category.NewPostgresRepository(pool, cfg.QueryTimeout)
	categoryService := category.NewService(categoryRepository, log)

	reportService := report.NewService(report.NewPostgresRepository(pool, cfg.QueryTimeout), categoryRepository, log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool, cfg.QueryTimeout), log)

	var generator assistant.Generator
	if cfg.AssistantEnabled() {
		gemini, err := assistant.NewGeminiGenerator(rootCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
		must(log, err, "initialize assistant model")
		generator = gemini
	}
	history := assistant.NewRedisHistory(rdb, constants.AssistantSessionTTL, constants.AssistantMaxTurns)
	assistantService := assistant.NewService(reportService, generator, history, log)

	health := api.NewHealthHandler(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Health:     health,
		Categories: category.NewHandler(categoryService),
		Reports:    report.NewHandler(reportService),
		Contacts:   contact.NewHandler(contactService),
		Assistant:  assistant.NewHandler(assistantService),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	exitCode := 0
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server listen error", slog.Any("error", err))
		exitCode = 1
	}

	// A second signal or a stuck drain must not keep the process alive.
	hardStop := time.AfterFunc(cfg.ShutdownGrace+time.Second, func() {
		log.Error("shutdown grace exceeded, forcing exit")
		os.Exit(1)
	})
	defer hardStop.Stop()

	log.Info("shutting down server", slog.Duration("grace", cfg.ShutdownGrace))
	if err := server.Shutdown(cfg.ShutdownGrace); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		exitCode = 1
	}

	rootCancel()

	log.Info("closing redis client")
	if cerr := rdb.Close(); cerr != nil {
		log.Error("redis close error", slog.Any("error", cerr))
	}

	log.Info("closing postgres pool")
	pool.Close()

	log.Info("server stopped", slog.Int("exit_code", exitCode))
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newLogger builds the JSON logger and installs it as the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
