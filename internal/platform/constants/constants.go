// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Assistant: Transcript retention in Redis.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "catalog-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// The assistant round-trip to the hosted model dominates this budget.
	DefaultWriteTimeout = 45 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 40 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderRetryAfter    = "Retry-After"
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Assistant

const (
	// AssistantSessionTTL is how long an idle conversation is retained.
	AssistantSessionTTL = 30 * time.Minute

	// AssistantMaxTurns caps the transcript replayed to the model.
	AssistantMaxTurns = 20

	// AssistantMaxMessageLen bounds a single user message.
	AssistantMaxMessageLen = 2000

	// AssistantSnapshotPageSize is the batch size used to read the full catalog
	// into the model context.
	AssistantSnapshotPageSize = 500
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
)

// # Redis Prefixes

const (
	RedisPrefixAssistantSession = "assistant:session:"
)
