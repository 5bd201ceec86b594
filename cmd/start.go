package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/occirank/Haloscan-mcp-server/internal/server"
)

var startAPIKey string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Serve MCP over stdin/stdout",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startAPIKey, "api-key", "k", "", "Haloscan API key (overrides HALOSCAN_API_KEY)")
}

func runStart(_ *cobra.Command, _ []string) error {
	c, err := buildContainer(startAPIKey)
	if err != nil {
		return err
	}
	if !c.Credentials().IsSet() {
		slog.Warn("no Haloscan API key configured; set HALOSCAN_API_KEY or call set_api_key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.RunStdio(ctx, c.Registry(), c.Credentials(), version); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
