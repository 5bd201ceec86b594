package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath returns the default configuration file path: ~/.haloscan-mcp/config.yaml.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// DataDir returns the data directory: ~/.haloscan-mcp.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".haloscan-mcp"
	}
	return filepath.Join(home, ".haloscan-mcp")
}

// Load reads and parses the config file at path.
// If path is empty, ConfigPath() is used. A missing file yields DefaultConfig().
// On parse failure it logs a warning and returns DefaultConfig().
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("failed to parse config, using defaults", "path", path, "err", err)
		cfg2 := DefaultConfig()
		return &cfg2, nil
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML.
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
