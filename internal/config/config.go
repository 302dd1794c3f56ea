// Package config loads and validates application configuration from
// environment variables, with optional .env file support for local
// development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins,
	// comma-separated in the environment. "*" allows any origin, which is
	// acceptable for an unauthenticated local planner.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// MaxBodyBytes caps the size of incoming request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads configuration from the environment and returns a Config.
// A .env file in the working directory is loaded first when present; real
// environment variables take precedence over it.
// Returns an error when DATABASE_URL is not set.
func Load() (Config, error) {
	// Ignore the error: a missing .env file is the normal production case.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("config.Load: required environment variable not set: DATABASE_URL")
	}

	return cfg, nil
}
