// Package config defines the configuration schema of the Haloscan MCP server.
//
// Values are layered: defaults, then ~/.haloscan-mcp/config.yaml, then the
// environment (including a .env file), then command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/occirank/Haloscan-mcp-server/internal/config/haloscan"
	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is the root configuration object.
type Config struct {
	Haloscan haloscan.HaloscanConfig `yaml:"haloscan"`
	HTTP     transport.HTTPConfig    `yaml:"http"`
	Log      LogConfig               `yaml:"log"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Haloscan: haloscan.DefaultHaloscanConfig(),
		HTTP:     transport.DefaultHTTPConfig(),
		Log:      LogConfig{Level: "info"},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	src, err := transport.ParseCredentialSource(string(c.HTTP.CredentialSource))
	if err != nil {
		errs = append(errs, fmt.Errorf("http.credentialSource: %w", err))
	}
	if src == transport.SourceHeader && strings.TrimSpace(c.HTTP.CredentialHeader) == "" {
		errs = append(errs, errors.New("http.credentialHeader is empty"))
	}
	if src == transport.SourceQuery && strings.TrimSpace(c.HTTP.CredentialQuery) == "" {
		errs = append(errs, errors.New("http.credentialQuery is empty"))
	}
	if c.Haloscan.Timeout < 0 {
		errs = append(errs, fmt.Errorf("haloscan.timeout %s is negative", c.Haloscan.Timeout))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// ParseLevel parses a slog level name. "" selects info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
