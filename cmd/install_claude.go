package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/occirank/Haloscan-mcp-server/internal/desktop"
)

var (
	installAPIKey     string
	installConfigFile string
)

var installClaudeCmd = &cobra.Command{
	Use:   "install-claude",
	Short: "Register this server in the Claude Desktop configuration",
	RunE:  runInstallClaude,
}

func init() {
	installClaudeCmd.Flags().StringVarP(&installAPIKey, "api-key", "k", "", "Haloscan API key to store in the entry")
	installClaudeCmd.Flags().StringVar(&installConfigFile, "config-file", "",
		"Claude Desktop config file (default depends on the platform)")
}

func runInstallClaude(_ *cobra.Command, _ []string) error {
	path := installConfigFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		path, err = desktop.ConfigPath(runtime.GOOS, home)
		if err != nil {
			return fmt.Errorf("%w; pass --config-file", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	key := strings.TrimSpace(installAPIKey)
	if key == "" {
		key = cfg.Haloscan.APIKey
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	if err := desktop.Install(path, desktop.ServerKey, desktop.NewServerEntry(exe, key)); err != nil {
		return err
	}

	fmt.Printf("✓ Haloscan MCP server registered in %s\n", path)
	if key == "" {
		fmt.Printf("  Replace %s with your Haloscan API key.\n", desktop.PlaceholderAPIKey)
	}
	fmt.Println("  Restart Claude Desktop to load the server.")
	return nil
}
