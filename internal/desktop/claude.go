// Package desktop registers the server in the Claude Desktop configuration.
package desktop

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ServerKey is the entry name under mcpServers.
	ServerKey = "haloscan"

	// PlaceholderAPIKey is written when no key is known at install time.
	PlaceholderAPIKey = "<YOUR_API_KEY_HERE>"

	configFile = "claude_desktop_config.json"
)

// ErrUnsupportedPlatform is returned for operating systems Claude Desktop does not run on.
var ErrUnsupportedPlatform = errors.New("unsupported platform for Claude Desktop")

// ServerEntry is one mcpServers entry.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// NewServerEntry returns the entry launching command in stdio mode with apiKey.
func NewServerEntry(command, apiKey string) ServerEntry {
	if apiKey == "" {
		apiKey = PlaceholderAPIKey
	}
	return ServerEntry{
		Command: command,
		Args:    []string{"start"},
		Env:     map[string]string{"HALOSCAN_API_KEY": apiKey},
	}
}

// ConfigPath returns the Claude Desktop config file for goos under home.
func ConfigPath(goos, home string) (string, error) {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", configFile), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Claude", configFile), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Install writes entry under mcpServers[name] in the config at path,
// creating the file and its directory when missing. Other keys and other
// servers are preserved. A file that is not valid JSON is left untouched
// and reported as an error.
func Install(path, name string, entry ServerEntry) error {
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	servers, _ := doc["mcpServers"].(map[string]any)
	if servers == nil {
		servers = map[string]any{}
	}
	servers[name] = entry
	doc["mcpServers"] = servers

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
