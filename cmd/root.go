// Package cmd implements the mcp-haloscan-server CLI using cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/occirank/Haloscan-mcp-server/internal/config"
	"github.com/occirank/Haloscan-mcp-server/internal/container"
)

const version = "1.0.0"

var (
	configPath string
	logLevel   string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "mcp-haloscan-server",
	Short: "Haloscan SEO API exposed as MCP tools",
	Long: "mcp-haloscan-server exposes the Haloscan SEO API (keywords, domains, SERP)\n" +
		"as Model Context Protocol tools over stdio or HTTP with Server-Sent Events.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		setupLogging(slog.LevelInfo)
		return config.LoadDotEnv()
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.haloscan-mcp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(installClaudeCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig layers the config file, the environment and the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// buildContainer loads the configuration, applies command overrides and
// wires the services. apiKey, when set, wins over every other source.
func buildContainer(apiKey string, overrides ...func(*config.Config)) (*container.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if key := strings.TrimSpace(apiKey); key != "" {
		cfg.Haloscan.APIKey = key
	}
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	lvl, _ := config.ParseLevel(cfg.Log.Level)
	setupLogging(lvl)

	return container.New(cfg, version)
}

// setupLogging sends structured logs to stderr; stdout belongs to the stdio transport.
func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
