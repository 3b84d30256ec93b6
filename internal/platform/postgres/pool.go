// Copyright (c) 2026 InsightSource. All rights reserved.

// Package postgres provides the managed PostgreSQL connection pool for the
// catalog service.
//
// # Architecture
//
// This package is part of the Infrastructure layer. The pool is created once
// by the composition root, injected into repositories, and closed once at
// shutdown. No other component opens or closes it.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// Opinionated pool settings for the catalog workload.
const (
	// maxConns is the maximum number of connections in the pool.
	maxConns = 20
	// minConns keeps a warm set of connections to avoid cold-start latency.
	minConns = 2
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// healthCheckPeriod is the frequency of background connection health checks.
	healthCheckPeriod = 1 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// maxBackoff caps a single wait between connection attempts.
	maxBackoff = 8 * time.Second
)

// Options tunes pool construction.
type Options struct {
	// MaxRetries is the number of additional attempts after the first failure.
	MaxRetries uint64
	// RetryBase is the first backoff interval; it doubles on each retry.
	RetryBase time.Duration
	// StatementTimeout bounds every statement server-side so stalled queries fail.
	StatementTimeout time.Duration
}

// NewPool creates and validates a new PostgreSQL connection pool.
//
// Connection establishment is retried with exponential backoff up to
// opts.MaxRetries times. The returned error after exhaustion is fatal for the
// caller; the service cannot serve traffic without its store.
//
// # Parameters
//   - ctx: Context bounding all connection attempts.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - opts: Retry and timeout tuning.
//   - logger: Structured logger for pool-level events.
func NewPool(ctx context.Context, dsn string, opts Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	// Apply pool tuning parameters.
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	if opts.StatementTimeout > 0 {
		// AfterConnect is called each time a new physical connection is established.
		poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
			timeoutQuery := fmt.Sprintf("SET statement_timeout = %d", opts.StatementTimeout.Milliseconds())
			_, err := connection.Exec(ctx, timeoutQuery)
			return err
		}
	}

	backoff := retry.NewExponential(opts.RetryBase)
	backoff = retry.WithCappedDuration(maxBackoff, backoff)
	backoff = retry.WithMaxRetries(opts.MaxRetries, backoff)

	var pool *pgxpool.Pool
	attempt := 0

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		candidate, err := connect(ctx, poolConfig)
		if err != nil {
			logger.Warn("postgres_connect_failed",
				slog.Int("attempt", attempt),
				slog.Uint64("max_attempts", opts.MaxRetries+1),
				slog.Any("error", err),
			)
			return retry.RetryableError(err)
		}

		pool = candidate
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: giving up after %d attempts: %w", attempt, err)
	}

	stats := pool.Stat()
	logger.Info("postgres pool connected",
		slog.Int("attempts", attempt),
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
	)

	return pool, nil
}

// connect performs a single pool creation plus ping.
func connect(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	// Validate that we can actually reach the database.
	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}

// Bounded derives a context that expires after timeout so a stalled query
// surfaces as an error. A non-positive timeout only adds cancellation.
func Bounded(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
