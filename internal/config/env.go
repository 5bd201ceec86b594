package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey           = "HALOSCAN_API_KEY"
	EnvBaseURL          = "HALOSCAN_BASE_URL"
	EnvTimeout          = "HALOSCAN_TIMEOUT"
	EnvCredentialSource = "HALOSCAN_CREDENTIAL_SOURCE"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
)

// LoadDotEnv loads KEY=value pairs from the given files (default ".env")
// into the process environment. Variables already set win. Missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
		slog.Debug("loaded env file", "path", p)
	}
	return nil
}

// ApplyEnv overrides cfg with the environment as read by getenv.
// Pass os.Getenv in production.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvAPIKey)); v != "" {
		cfg.Haloscan.APIKey = v
	}
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		cfg.Haloscan.BaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Haloscan.Timeout = d
	}
	if v := strings.TrimSpace(getenv(EnvCredentialSource)); v != "" {
		src, err := transport.ParseCredentialSource(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCredentialSource, err)
		}
		cfg.HTTP.CredentialSource = src
	}
	if v := strings.TrimSpace(getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.HTTP.Port = port
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	return nil
}
