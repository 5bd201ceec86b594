package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
)

// ErrToolNotFound is returned by Registry.Call for unknown names.
var ErrToolNotFound = errors.New("tool not found")

// Registry holds a set of named tools and exposes them for execution.
// It is immutable once built and may be installed on any number of servers.
type Registry struct {
	tools map[string]Tool
	order []string
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) Tool {
	return r.tools[name]
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of tools.
func (r *Registry) Len() int { return len(r.order) }

// Install registers every tool on server, bound to creds. creds is the
// credential scope of that server: the process holder or a session holder.
func (r *Registry) Install(server *mcp.Server, creds *credential.Holder) {
	for _, name := range r.order {
		t := r.tools[name]
		server.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema().JSONSchema(),
		}, handlerFor(t, creds))
	}
}

// Call validates args and runs the named tool without an MCP session.
// Validation failures are returned as errors wrapping ErrInvalidArguments.
func (r *Registry) Call(ctx context.Context, creds *credential.Holder, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	t := r.tools[name]
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return invoke(ctx, t, creds, args)
}

func handlerFor(t Tool, creds *credential.Holder) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		return invoke(ctx, t, creds, args)
	}
}

// invoke is the single path every tool call takes: validate, then run the
// tool with panics converted into error-flagged results.
func invoke(ctx context.Context, t Tool, creds *credential.Holder, raw json.RawMessage) (res *mcp.CallToolResult, err error) {
	args, err := t.InputSchema().Validate(t.Name(), raw)
	if err != nil {
		slog.Debug("tool arguments rejected", "tool", t.Name(), "err", err)
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			slog.Error("tool panicked", "tool", t.Name(), "panic", p)
			res, err = errorResult(fmt.Sprintf("Error running %s: %v", t.Name(), p)), nil
		}
	}()
	return t.Handle(ctx, creds, args), nil
}
