// Copyright (c) 2026 InsightSource. All rights reserved.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/insightsource/catalog/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the probes.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings the Redis client.
	CheckCache func(ctx context.Context) error
}

// HealthHandler serves the infrastructure probes.
type HealthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandler creates the probe handler set.
func NewHealthHandler(deps HealthDependencies, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{dependencies: deps, logger: logger}
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Liveness handles GET /health. It never touches dependencies.
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, "Service is alive", map[string]string{"status": "ok"})
}

// Readiness handles GET /ready.
func (handler *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	isSystemReady := true

	for _, check := range []struct {
		name  string
		probe func(ctx context.Context) error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	} {
		if check.probe == nil {
			continue
		}

		result := checkResult{Name: check.name, IsOK: true}
		if err := check.probe(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", check.name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	if !isSystemReady {
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{
			Message: "Service is degraded",
			Data:    map[string]any{"status": "degraded", "checks": results},
		})
		return
	}

	respond.OK(writer, "Service is ready", map[string]any{"status": "ready", "checks": results})
}

// DatabaseStatus handles GET /db-status, reporting connectivity and round-trip latency.
func (handler *HealthHandler) DatabaseStatus(writer http.ResponseWriter, request *http.Request) {
	status := map[string]any{"state": "connected"}

	startTime := time.Now()
	err := handler.dependencies.CheckDatabase(request.Context())
	status["latencyMs"] = time.Since(startTime).Milliseconds()

	if err != nil {
		handler.logger.Warn("db_status_disconnected", slog.Any("error", err))
		status["state"] = "disconnected"
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{
			Message: "Database is unreachable",
			Data:    status,
		})
		return
	}

	respond.OK(writer, "Database is reachable", status)
}
