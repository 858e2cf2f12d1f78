package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents runtime configuration for the service.
type Config struct {
	ServerAddress          string   `json:"server_address"`
	SessionTTLMinutes      int      `json:"session_ttl_minutes"`
	CleanupIntervalMinutes int      `json:"cleanup_interval_minutes"`
	AllowedOrigins         []string `json:"allowed_origins"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		ServerAddress:          ":8090",
		SessionTTLMinutes:      12 * 60,
		CleanupIntervalMinutes: 15,
	}
}

// Load reads configuration from the provided path (defaults to config.json).
// A missing file is not an error: every setting has a usable default.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	cfg := Default()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.SessionTTLMinutes < 0 {
		return nil, fmt.Errorf("session_ttl_minutes cannot be negative")
	}
	if cfg.CleanupIntervalMinutes < 0 {
		return nil, fmt.Errorf("cleanup_interval_minutes cannot be negative")
	}
	return cfg, nil
}
