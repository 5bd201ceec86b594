package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
)

func writeConfig(t *testing.T, dir string, v any) string {
	t.Helper()
	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Haloscan.BaseURL != def.Haloscan.BaseURL {
		t.Errorf("expected default base URL %q, got %q", def.Haloscan.BaseURL, cfg.Haloscan.BaseURL)
	}
	if cfg.HTTP.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.HTTP.Port)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"haloscan": map[string]any{
			"apiKey":  "from-file",
			"timeout": "15s",
		},
		"http": map[string]any{
			"port":             8080,
			"credentialSource": "header",
		},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Haloscan.APIKey != "from-file" {
		t.Errorf("expected apiKey %q, got %q", "from-file", cfg.Haloscan.APIKey)
	}
	if cfg.Haloscan.Timeout != 15*time.Second {
		t.Errorf("expected timeout 15s, got %s", cfg.Haloscan.Timeout)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.CredentialSource != transport.SourceHeader {
		t.Errorf("expected credential source header, got %q", cfg.HTTP.CredentialSource)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("haloscan: [not: valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for invalid YAML (falls back to default), got: %v", err)
	}
	def := DefaultConfig()
	if cfg.HTTP.Port != def.HTTP.Port {
		t.Errorf("expected default port %d, got %d", def.HTTP.Port, cfg.HTTP.Port)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := DefaultConfig()
	original.Haloscan.APIKey = "round-trip"
	original.HTTP.Port = 4321

	if err := Save(&original, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Haloscan.APIKey != original.Haloscan.APIKey {
		t.Errorf("apiKey mismatch: got %q, want %q", loaded.Haloscan.APIKey, original.Haloscan.APIKey)
	}
	if loaded.HTTP.Port != original.HTTP.Port {
		t.Errorf("port mismatch: got %d, want %d", loaded.HTTP.Port, original.HTTP.Port)
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected permissions 0600, got %04o", perm)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dir", "config.yaml")

	cfg := DefaultConfig()
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestLoad_PartialConfig_UsesDefaults(t *testing.T) {
	dir := t.TempDir()
	// Only set one field; the rest should come from DefaultConfig.
	path := writeConfig(t, dir, map[string]any{
		"http": map[string]any{"port": 9999},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultConfig()
	if cfg.HTTP.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.CredentialHeader != def.HTTP.CredentialHeader {
		t.Errorf("expected default header %q, got %q", def.HTTP.CredentialHeader, cfg.HTTP.CredentialHeader)
	}
	if cfg.Haloscan.BaseURL != def.Haloscan.BaseURL {
		t.Errorf("expected default base URL %q, got %q", def.Haloscan.BaseURL, cfg.Haloscan.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.HTTP.Port = 0
	cfg.HTTP.CredentialSource = "cookie"
	cfg.Log.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}

	cfg = DefaultConfig()
	cfg.HTTP.CredentialSource = transport.SourceHeader
	cfg.HTTP.CredentialHeader = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty credential header")
	}
}
