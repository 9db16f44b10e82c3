package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppEnv      string // Runtime environment: development, test, production
	AppPort     string // Application port
	DBDriver    string // Store engine kind: mysql or sqlite
	DatabaseURL string // Store connection string (DSN)
	IsProd      bool   // Is production environment
}

// Defaults applied when the environment leaves a variable unset
const (
	defaultAppEnv  = "production"
	defaultAppPort = "3333"
)

// LoadConfig loads configuration from environment variables and validates
// it eagerly against a fixed schema. Startup must abort loudly on an
// invalid environment, so every violation is reported as an error here.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", defaultAppEnv),   // Runtime environment selector
		AppPort:     getEnv("APP_PORT", defaultAppPort), // Listen port
		DBDriver:    os.Getenv("DB_DRIVER"),             // Store engine kind
		DatabaseURL: os.Getenv("DATABASE_URL"),          // Store connection string
	}

	// Validate the environment selector against its enum
	switch cfg.AppEnv {
	case "development", "test", "production":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q: must be development, test or production", cfg.AppEnv)
	}
	cfg.IsProd = cfg.AppEnv == "production"

	// Validate the listen port
	if port, err := strconv.Atoi(cfg.AppPort); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT %q: must be a port number", cfg.AppPort)
	}

	// Validate the store engine kind against its enum
	switch cfg.DBDriver {
	case "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be mysql or sqlite", cfg.DBDriver)
	}

	// The connection string is always required
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
