// Package config handles application configuration loading from environment
// variables. Load builds one Config at startup; it is passed to whatever
// needs it and never mutated afterwards.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	PublicURL string
	Version   string

	// Catalog storage: "memory", "sqlite" or "postgres"
	StoreEngine string
	SQLitePath  string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). An empty host disables response caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int
	CacheTTL       time.Duration

	// S3-compatible object storage for gallery and event images
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Content
	ContentDir   string // empty serves the embedded dataset
	ContentWatch bool
	SeedOnStart  bool
	RandomSeed   uint64 // 0 seeds from the clock

	// HTTP policy
	CORSOrigins   []string
	QuizRateLimit int // checked answers per client per minute, 0 (default) disables
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or a critical value is missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8000"),
		Env:       envOrDefault("APP_ENV", "development"),
		PublicURL: envOrDefault("APP_PUBLIC_URL", "http://localhost:3000"),
		Version:   envOrDefault("APP_VERSION", "1.0.0"),

		StoreEngine: strings.ToLower(envOrDefault("STORE_ENGINE", "sqlite")),
		SQLitePath:  envOrDefault("SQLITE_PATH", "yenisei.db"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "yenisei"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "yenisei"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "yenisei-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		ContentDir:  os.Getenv("CONTENT_DIR"),
		CORSOrigins: splitList(envOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	var err error
	if cfg.ValkeyDB, err = intEnv("VALKEY_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ContentWatch, err = boolEnv("CONTENT_WATCH", false); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart, err = boolEnv("SEED_ON_START", true); err != nil {
		return nil, err
	}
	if cfg.QuizRateLimit, err = intEnv("QUIZ_RATE_LIMIT", 0); err != nil {
		return nil, err
	}
	if raw := os.Getenv("RANDOM_SEED"); raw != "" {
		if cfg.RandomSeed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("RANDOM_SEED: %w", err)
		}
	}

	switch cfg.StoreEngine {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("STORE_ENGINE must be memory, sqlite or postgres, got %q", cfg.StoreEngine)
	}

	if cfg.Env == "production" && cfg.StoreEngine == "postgres" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// PostgresDSN returns the PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword), c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
