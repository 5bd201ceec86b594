package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Haloscan.APIKey = "from-file"

	err := ApplyEnv(&cfg, envFrom(map[string]string{
		EnvAPIKey:           "from-env",
		EnvBaseURL:          "http://localhost:9000/api",
		EnvTimeout:          "2s",
		EnvCredentialSource: "QUERY",
		EnvPort:             "8081",
		EnvLogLevel:         "debug",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Haloscan.APIKey != "from-env" {
		t.Errorf("apiKey: got %q", cfg.Haloscan.APIKey)
	}
	if cfg.Haloscan.BaseURL != "http://localhost:9000/api" {
		t.Errorf("baseUrl: got %q", cfg.Haloscan.BaseURL)
	}
	if cfg.Haloscan.Timeout != 2*time.Second {
		t.Errorf("timeout: got %s", cfg.Haloscan.Timeout)
	}
	if cfg.HTTP.CredentialSource != transport.SourceQuery {
		t.Errorf("credentialSource: got %q", cfg.HTTP.CredentialSource)
	}
	if cfg.HTTP.Port != 8081 {
		t.Errorf("port: got %d", cfg.HTTP.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q", cfg.Log.Level)
	}
}

func TestApplyEnv_EmptyKeepsFileValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Haloscan.APIKey = "from-file"
	if err := ApplyEnv(&cfg, envFrom(nil)); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Haloscan.APIKey != "from-file" {
		t.Errorf("apiKey: got %q", cfg.Haloscan.APIKey)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvPort: "eighty"},
		{EnvTimeout: "soon"},
		{EnvCredentialSource: "cookie"},
	} {
		cfg := DefaultConfig()
		if err := ApplyEnv(&cfg, envFrom(env)); err == nil {
			t.Errorf("expected error for %v", env)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HALOSCAN_DOTENV_TEST=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HALOSCAN_DOTENV_TEST", "")
	os.Unsetenv("HALOSCAN_DOTENV_TEST")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("HALOSCAN_DOTENV_TEST"); got != "loaded" {
		t.Errorf("expected variable from .env, got %q", got)
	}
}

func TestLoadDotEnv_ExistingVariableWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HALOSCAN_DOTENV_KEEP=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HALOSCAN_DOTENV_KEEP", "process")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("HALOSCAN_DOTENV_KEEP"); got != "process" {
		t.Errorf("expected process value to win, got %q", got)
	}
}
