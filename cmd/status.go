package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/occirank/Haloscan-mcp-server/internal/config"
	"github.com/occirank/Haloscan-mcp-server/internal/shared/cmdutils"
	"github.com/occirank/Haloscan-mcp-server/internal/shared/stringutils"
	"github.com/occirank/Haloscan-mcp-server/internal/tools"
)

var statusCheck bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration status",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusCheck, "check", false, "Call get_user_credit to verify the API key")
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := stringutils.StringOrDefault(configPath, config.ConfigPath())

	fmt.Println("Haloscan MCP Server Status")
	fmt.Println()

	_, statErr := os.Stat(cfgPath)
	fmt.Printf("Config:            %s %s\n", cfgPath, cmdutils.Mark(statErr == nil))

	c, err := buildContainer("")
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}
	cfg := c.Config()
	creds := c.Credentials()

	fmt.Printf("API key:           %s %s\n", stringutils.StringOrDefault(creds.Masked(), "(not set)"), cmdutils.Mark(creds.IsSet()))
	fmt.Printf("API base URL:      %s\n", c.Client().BaseURL())
	if cfg.Haloscan.Timeout > 0 {
		fmt.Printf("Request timeout:   %s\n", cfg.Haloscan.Timeout)
	}
	fmt.Printf("HTTP address:      %s\n", cfg.HTTP.Addr())
	fmt.Printf("Credential source: %s\n", c.HTTPServer().CredentialSource())
	fmt.Printf("Tools:             %d\n", c.Registry().Len())

	if !statusCheck {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, err := c.Registry().Call(ctx, creds, "get_user_credit", nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nAPI check:         %s\n", cmdutils.Mark(!res.IsError))
	cmdutils.PrintResponse(os.Stdout, "get_user_credit", tools.ResultText(res))
	return nil
}
