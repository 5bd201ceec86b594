package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/occirank/Haloscan-mcp-server/internal/config"
	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/shared/stringutils"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := stringutils.StringOrDefault(configPath, config.ConfigPath())

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	cfg.Haloscan.APIKey = os.Getenv(config.EnvAPIKey)
	if err := config.Save(&cfg, path); err != nil {
		return err
	}
	fmt.Printf("✓ Created config at %s\n", path)
	if cfg.Haloscan.APIKey == "" {
		fmt.Printf("  Add your Haloscan API key under haloscan.apiKey or set %s.\n", config.EnvAPIKey)
	}
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shown := *cfg
	shown.Haloscan.APIKey = credential.NewHolder(cfg.Haloscan.APIKey).Masked()

	out, err := yaml.Marshal(&shown)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
