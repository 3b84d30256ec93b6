// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/insightsource/catalog/internal/assistant"
	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/catalog/report"
	"github.com/insightsource/catalog/internal/contact"
	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/config"
	"github.com/insightsource/catalog/internal/platform/constants"
	"github.com/insightsource/catalog/internal/platform/middleware"
	"github.com/insightsource/catalog/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Health serves the liveness, readiness and database status probes.
	Health *HealthHandler

	// Categories manages the category taxonomy.
	Categories *category.Handler

	// Reports manages the report catalog and its listing.
	Reports *report.Handler

	// Contacts accepts and lists contact submissions.
	Contacts *contact.Handler

	// Assistant answers catalog questions through the hosted model.
	Assistant *assistant.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter cleanup stops with ctx.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	router := NewRouter(ctx, cfg, log, h)

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree without binding a listener.
func NewRouter(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst).Middleware())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusMethodNotAllowed, respond.ErrorEnvelope{
			Message: "Method not allowed",
			Code:    "METHOD_NOT_ALLOWED",
		})
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Health.Liveness)
	r.Get("/ready", h.Health.Readiness)
	r.Get("/db-status", h.Health.DatabaseStatus)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Route("/categories", h.Categories.RegisterRoutes)
		api.Route("/reports", h.Reports.RegisterRoutes)
		api.Route("/contacts", h.Contacts.RegisterRoutes)
		api.Route("/assistant", h.Assistant.RegisterRoutes)
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
