package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultServer  = "http://localhost:9000"
	defaultTimeout = 15 * time.Second
)

// Config is the cabinetctl configuration file.
type Config struct {
	// Server is the base URL of the cabinet API.
	Server string `toml:"server"`
	// Timeout bounds each API request, e.g. "15s".
	Timeout string `toml:"timeout,omitempty"`
}

// DefaultConfigPath returns ~/.config/drawer-cabinet/cabinetctl.toml, or the
// equivalent under the user config directory of the platform.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "drawer-cabinet", "cabinetctl.toml"), nil
}

// LoadConfig reads the config file at path. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Server: defaultServer}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{Server: defaultServer}, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if cfg.Server == "" {
		cfg.Server = defaultServer
	}
	if _, err := cfg.timeout(); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating its directory.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}
