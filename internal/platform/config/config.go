// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort    string        `env:"SERVER_PORT"    envDefault:"8080"`
	Environment   string        `env:"ENVIRONMENT"    envDefault:"development"`
	Debug         bool          `env:"DEBUG"          envDefault:"false"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"30s"`

	// Relational Database (PostgreSQL)
	Database

	// Key-Value Store (Redis) holding assistant transcripts
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Hosted generative model used by the assistant. Empty key disables it.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Cross-Origin Resource Sharing
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

// Database holds the PostgreSQL settings. It is loadable on its own for
// tooling that never touches Redis or the model.
type Database struct {
	DatabaseURL  string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxRetries uint64        `env:"DB_MAX_RETRIES" envDefault:"5"`
	DBRetryBase  time.Duration `env:"DB_RETRY_BASE"  envDefault:"500ms"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT"  envDefault:"10s"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase parses only the PostgreSQL settings.
func LoadDatabase() (*Database, error) {
	cfg := &Database{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (d *Database) validate() error {
	if d.DBMaxRetries == 0 {
		return fmt.Errorf("config: DB_MAX_RETRIES must be at least 1")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigin returns the configured CORS origin.
func (c *Config) AllowedOrigin() string {
	return c.CORSOrigin
}

// AssistantEnabled reports whether a generative model key is configured.
func (c *Config) AssistantEnabled() bool {
	return c.GeminiAPIKey != ""
}
