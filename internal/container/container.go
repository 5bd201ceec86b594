// Package container wires the Haloscan MCP services using go.uber.org/dig.
package container

import (
	"go.uber.org/dig"

	"github.com/occirank/Haloscan-mcp-server/internal/config"
	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/haloscan"
	"github.com/occirank/Haloscan-mcp-server/internal/server"
	"github.com/occirank/Haloscan-mcp-server/internal/tools"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	creds    *credential.Holder
	client   *haloscan.Client
	registry *tools.Registry
	http     *server.HTTPServer
}

func (c *Container) Config() *config.Config          { return c.cfg }
func (c *Container) Credentials() *credential.Holder { return c.creds }
func (c *Container) Client() *haloscan.Client        { return c.client }
func (c *Container) Registry() *tools.Registry       { return c.registry }
func (c *Container) HTTPServer() *server.HTTPServer  { return c.http }

// serverVersion is a named string type so dig can distinguish it from plain
// strings when injecting the version reported to MCP clients.
type serverVersion string

// New builds and wires all services from cfg.
func New(cfg *config.Config, version string) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() serverVersion { return serverVersion(version) }); err != nil {
		return nil, err
	}
	if err := d.Provide(newCredentialHolder); err != nil {
		return nil, err
	}
	if err := d.Provide(newHaloscanClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newHTTPServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		creds *credential.Holder,
		client *haloscan.Client,
		registry *tools.Registry,
		httpServer *server.HTTPServer,
	) {
		result = &Container{
			cfg:      cfg,
			creds:    creds,
			client:   client,
			registry: registry,
			http:     httpServer,
		}
	})
	return result, err
}

// newCredentialHolder returns the process-wide holder seeded from the
// effective API key.
func newCredentialHolder(cfg *config.Config) *credential.Holder {
	return credential.NewHolder(cfg.Haloscan.APIKey)
}

func newHaloscanClient(cfg *config.Config) *haloscan.Client {
	return haloscan.NewClient(haloscan.Options{
		BaseURL: cfg.Haloscan.BaseURL,
		Timeout: cfg.Haloscan.Timeout,
	})
}

func newRegistry(client *haloscan.Client) (*tools.Registry, error) {
	return tools.NewHaloscanRegistry(client)
}

func newHTTPServer(cfg *config.Config, reg *tools.Registry, creds *credential.Holder, v serverVersion) (*server.HTTPServer, error) {
	return server.NewHTTPServer(cfg.HTTP, reg, creds, string(v))
}
