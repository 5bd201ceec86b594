package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/haloscan"
)

// Dispatcher sends one upstream request. *haloscan.Client implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req haloscan.Request) (json.RawMessage, error)
}

// Tool is an MCP-callable operation. Arguments reach Handle already
// validated against InputSchema.
type Tool interface {
	Name() string
	Description() string
	InputSchema() Schema
	Handle(ctx context.Context, creds *credential.Holder, args map[string]any) *mcp.CallToolResult
}

// ---------------------------------------------------------------------------
// capabilityTool
// ---------------------------------------------------------------------------

// capabilityTool forwards validated arguments to the Haloscan route of its
// descriptor and returns the indented response.
type capabilityTool struct {
	cap        Capability
	dispatcher Dispatcher
}

// NewCapabilityTool binds a descriptor to the dispatcher serving it.
func NewCapabilityTool(c Capability, d Dispatcher) Tool {
	return &capabilityTool{cap: c, dispatcher: d}
}

func (t *capabilityTool) Name() string        { return t.cap.Name }
func (t *capabilityTool) Description() string { return t.cap.Description }
func (t *capabilityTool) InputSchema() Schema { return t.cap.Schema }

func (t *capabilityTool) Handle(ctx context.Context, creds *credential.Holder, args map[string]any) *mcp.CallToolResult {
	key, err := creds.Require()
	if err != nil {
		return t.failure(err)
	}

	data, err := t.dispatcher.Dispatch(ctx, haloscan.Request{
		Route:   t.cap.Route,
		Verb:    t.cap.Verb,
		Payload: args,
		APIKey:  key,
	})
	if err != nil {
		slog.Warn("haloscan call failed", "tool", t.cap.Name, "route", t.cap.Route, "err", err)
		return t.failure(err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return t.failure(fmt.Errorf("format response: %w", err))
	}
	return textResult(buf.String())
}

func (t *capabilityTool) failure(err error) *mcp.CallToolResult {
	return errorResult(fmt.Sprintf("Error %s: %v", t.cap.Action, err))
}

// ---------------------------------------------------------------------------
// SetAPIKeyTool
// ---------------------------------------------------------------------------

// SetAPIKeyTool replaces the key of the credential scope it is installed in.
type SetAPIKeyTool struct{}

func NewSetAPIKeyTool() *SetAPIKeyTool { return &SetAPIKeyTool{} }

func (t *SetAPIKeyTool) Name() string        { return "set_api_key" }
func (t *SetAPIKeyTool) Description() string { return "Set the Haloscan API key used by the other tools." }
func (t *SetAPIKeyTool) InputSchema() Schema {
	return Schema{required(text("apiKey", "Your Haloscan API key"))}
}

func (t *SetAPIKeyTool) Handle(_ context.Context, creds *credential.Holder, args map[string]any) *mcp.CallToolResult {
	if creds == nil {
		return errorResult("Error setting API key: no credential scope")
	}
	key, _ := args["apiKey"].(string)
	creds.Set(key)
	slog.Info("haloscan API key updated")
	return textResult("API key set successfully")
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// ResultText concatenates the text contents of a result.
func ResultText(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			buf.WriteString(tc.Text)
		}
	}
	return buf.String()
}
