package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/occirank/Haloscan-mcp-server/internal/config"
	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
)

var (
	httpPort             int
	httpHost             string
	httpAPIKey           string
	httpCredentialSource string
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve MCP over HTTP with Server-Sent Events",
	RunE:  runHTTP,
}

func init() {
	httpCmd.Flags().IntVarP(&httpPort, "port", "p", 3000, "HTTP port (overrides PORT)")
	httpCmd.Flags().StringVar(&httpHost, "host", "", "Interface to bind (default all)")
	httpCmd.Flags().StringVarP(&httpAPIKey, "api-key", "k", "", "Haloscan API key (overrides HALOSCAN_API_KEY)")
	httpCmd.Flags().StringVar(&httpCredentialSource, "credential-source", "",
		"Where sessions get their API key: env, header or query")
}

func runHTTP(cmd *cobra.Command, _ []string) error {
	c, err := buildContainer(httpAPIKey, func(cfg *config.Config) {
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port = httpPort
		}
		if httpHost != "" {
			cfg.HTTP.Host = httpHost
		}
		if httpCredentialSource != "" {
			cfg.HTTP.CredentialSource = transport.CredentialSource(httpCredentialSource)
		}
	})
	if err != nil {
		return err
	}

	cfg := c.Config()
	base := fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	fmt.Printf("Haloscan MCP Server running on %s\n", base)
	fmt.Printf("  SSE endpoint:     %s/sse\n", base)
	fmt.Printf("  Message endpoint: %s/messages\n", base)
	fmt.Printf("  Health check:     %s/health\n", base)
	switch c.HTTPServer().CredentialSource() {
	case transport.SourceHeader:
		fmt.Printf("  API key:          per session, header %q\n", cfg.HTTP.CredentialHeader)
	case transport.SourceQuery:
		fmt.Printf("  API key:          per session, query parameter %q\n", cfg.HTTP.CredentialQuery)
	default:
		if !c.Credentials().IsSet() {
			fmt.Println("  Warning: no Haloscan API key configured; clients must call set_api_key")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.HTTPServer().ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("\nShutdown complete.")
	return nil
}
