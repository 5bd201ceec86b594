// Package server exposes the tool registry over MCP transports.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/tools"
)

const (
	// ServerName is the human-readable name reported by /health.
	ServerName = "Haloscan MCP Server"

	implementationName = "Haloscan SEO"
)

// NewMCPServer returns an MCP server with every tool of reg bound to creds.
func NewMCPServer(reg *tools.Registry, creds *credential.Holder, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: implementationName, Version: version}, nil)
	reg.Install(server, creds)
	return server
}

// RunStdio serves one MCP session over stdin/stdout until the peer closes
// the stream or ctx is canceled. Logs must go to stderr.
func RunStdio(ctx context.Context, reg *tools.Registry, creds *credential.Holder, version string) error {
	server := NewMCPServer(reg, creds, version)
	slog.Info("Haloscan MCP Server running on stdio", "tools", reg.Len(), "apiKeySet", creds.IsSet())
	return server.Run(ctx, &mcp.StdioTransport{})
}
