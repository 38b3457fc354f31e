package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

var envVars = []string{
	"DB_PATH", "API_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"STORE_BACKEND", "REDIS_ADDR", "REDIS_KEY_PREFIX",
	"SAVE_DEBOUNCE", "PRINTER_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name:     "default values",
			setupEnv: func(t *testing.T) {},
			wantErr:  false,
			checkConfig: func(cfg *Config) bool {
				return cfg.DBPath == "./data/drawer-cabinet.db" &&
					cfg.APIPort == "9000" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text" &&
					cfg.StoreBackend == BackendSQLite &&
					cfg.RedisKeyPrefix == "drawer-cabinet" &&
					cfg.SaveDebounce == time.Second &&
					cfg.PrinterTimeout == 10*time.Second &&
					cfg.ShutdownTimeout == 10*time.Second
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "custom", "cabinet.db"))
				setEnv("API_PORT", "8088")
				setEnv("LOG_LEVEL", "DEBUG")
				setEnv("LOG_FORMAT", "JSON")
				setEnv("SAVE_DEBOUNCE", "250ms")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return filepath.Base(cfg.DBPath) == "cabinet.db" &&
					cfg.APIPort == "8088" &&
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json" &&
					cfg.SaveDebounce == 250*time.Millisecond
			},
		},
		{
			name: "redis backend",
			setupEnv: func(t *testing.T) {
				setEnv("STORE_BACKEND", "redis")
				setEnv("REDIS_ADDR", "cache:6379")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.StoreBackend == BackendRedis && cfg.RedisAddr == "cache:6379"
			},
		},
		{
			name: "unknown backend",
			setupEnv: func(t *testing.T) {
				setEnv("STORE_BACKEND", "postgres")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				setEnv("LOG_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) {
				setEnv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
		{
			name: "invalid API_PORT",
			setupEnv: func(t *testing.T) {
				setEnv("API_PORT", "70000")
			},
			wantErr: true,
		},
		{
			name: "invalid SAVE_DEBOUNCE",
			setupEnv: func(t *testing.T) {
				setEnv("SAVE_DEBOUNCE", "soon")
			},
			wantErr: true,
		},
		{
			name: "zero PRINTER_TIMEOUT",
			setupEnv: func(t *testing.T) {
				setEnv("PRINTER_TIMEOUT", "0s")
			},
			wantErr: true,
		},
		{
			name: "negative SHUTDOWN_TIMEOUT",
			setupEnv: func(t *testing.T) {
				setEnv("SHUTDOWN_TIMEOUT", "-1s")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Change to a temp directory without .env file to avoid loading it
			tmpDir := t.TempDir()
			originalWd, _ := os.Getwd()
			_ = os.Chdir(tmpDir) // Ignore error - test will fail if this doesn't work
			defer func() {
				_ = os.Chdir(originalWd) // Ignore error in cleanup
			}()

			// Clean up env vars before each test
			for _, key := range envVars {
				unsetEnv(key)
			}

			tt.setupEnv(t)

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if cfg == nil {
				t.Fatal("Load() returned nil config")
			}

			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config validation failed: %+v", cfg)
			}
		})
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	// Use a temporary directory for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test", "db.db")
	setEnv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check that directory was created
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}

	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	root := t.TempDir()
	nested := filepath.Join(root, "cmd", "api")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	env := "API_PORT=9123\nDB_PATH=" + filepath.Join(root, "data", "cabinet.db") + "\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0644); err != nil {
		t.Fatal(err)
	}

	originalWd, _ := os.Getwd()
	_ = os.Chdir(nested)
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "9123" {
		t.Errorf("APIPort = %q, want 9123 from .env", cfg.APIPort)
	}
}

func TestGetEnv(t *testing.T) {
	originalValue := os.Getenv("TEST_ENV_VAR")
	defer func() {
		if originalValue != "" {
			setEnv("TEST_ENV_VAR", originalValue)
		} else {
			unsetEnv("TEST_ENV_VAR")
		}
	}()

	tests := []struct {
		name         string
		setupEnv     func()
		key          string
		defaultValue string
		want         string
	}{
		{
			name: "env var set",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "set-value")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "set-value",
		},
		{
			name: "env var not set",
			setupEnv: func() {
				unsetEnv("TEST_ENV_VAR")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
		{
			name: "empty env var uses default",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
