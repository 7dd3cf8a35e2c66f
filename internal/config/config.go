// Package config loads the application configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds every runtime setting of the server.
// Storage engine selection follows the deployment environment: when
// PostgresURL is set the server uses Postgres, otherwise it falls back to an
// embedded SQLite file.
type Config struct {
	Port          string
	Env           string
	PostgresURL   string
	SQLitePath    string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	SecretKey     string
	SessionTTL    time.Duration
}

// Load reads the configuration from environment variables, applying
// development defaults where unset.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "vakiflar.db"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SecretKey:     getEnv("SECRET_KEY", "dev-key-please-change-in-production"),
		SessionTTL:    7 * 24 * time.Hour,
	}

	if cfg.Env == "production" && cfg.SecretKey == "dev-key-please-change-in-production" {
		slog.Error("SECRET_KEY must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
