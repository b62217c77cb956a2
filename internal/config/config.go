// Package config loads holiday generator settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the HTTP server.
// Fields are populated from environment variables; CLI flags may override
// them after Load.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Holiday data
	CatalogPath   string // YAML catalog; empty selects the built-in default
	MaxRangeYears int    // largest from..to span served in one request

	// Export sink
	DatabasePath  string // SQLite file; empty disables export
	ExportOnStart bool   // write current year ±1 to DatabasePath at startup

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// Variables already set in the environment win over .env, so this is a
	// no-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Holiday data
	// An empty CATALOG_PATH selects the built-in NYSE catalog
	cfg.CatalogPath = getEnv("CATALOG_PATH", "")
	cfg.MaxRangeYears = getEnvInt("MAX_RANGE_YEARS", 200)

	// Export sink
	// Unlike the server's own data, the export database is optional
	cfg.DatabasePath = getEnv("DATABASE_PATH", "")
	cfg.ExportOnStart = getEnvBool("EXPORT_ON_START", false)

	// Logging
	// Production logs are shipped to a collector, so they default to JSON
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	defaultFormat := "text"
	if cfg.IsProduction() {
		defaultFormat = "json"
	}
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultFormat)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
// Every problem is reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// A range request must be allowed at least one year
	if c.MaxRangeYears < 1 {
		errs = append(errs, fmt.Errorf("MAX_RANGE_YEARS must be positive, got %d", c.MaxRangeYears))
	}

	// Exporting on start needs somewhere to export to
	if c.ExportOnStart && c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required when EXPORT_ON_START is set"))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// HasDatabase reports whether an export database is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabasePath != ""
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
// Values that are not integers also fall back.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool reads an environment variable as a bool (1, t, true, 0, f,
// false, ...) with a default fallback.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
