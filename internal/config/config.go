package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath          string
	APIPort         string
	LogLevel        slog.Level
	LogFormat       string
	StoreBackend    string
	RedisAddr       string
	RedisKeyPrefix  string
	SaveDebounce    time.Duration
	PrinterTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the values given.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "./data/drawer-cabinet.db"),
		APIPort:        getEnv("API_PORT", "9000"),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite)),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "drawer-cabinet"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.SaveDebounce, err = getDuration("SAVE_DEBOUNCE", time.Second); err != nil {
		return nil, err
	}
	if cfg.PrinterTimeout, err = getDuration("PRINTER_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be a number between 1 and 65535, got %q", cfg.APIPort)
	}

	switch cfg.StoreBackend {
	case BackendSQLite:
		// Create ./data directory if it doesn't exist
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be %s or %s, got %q", BackendSQLite, BackendRedis, cfg.StoreBackend)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration such as "750ms" or "2s". Zero and negative
// values are rejected.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 1s or 500ms: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}
