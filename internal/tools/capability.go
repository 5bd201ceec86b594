package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/occirank/Haloscan-mcp-server/internal/haloscan"
)

// Capability declares one Haloscan endpoint exposed as an MCP tool.
type Capability struct {
	Name        string
	Description string
	// Action completes the failure text "Error <Action>: <message>".
	Action string
	Route  string
	Verb   haloscan.Verb
	Schema Schema
}

// Validate checks that the descriptor is usable.
func (c Capability) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("missing name"))
	}
	if c.Action == "" {
		errs = append(errs, errors.New("missing action"))
	}
	if !strings.HasPrefix(c.Route, "/") {
		errs = append(errs, fmt.Errorf("route %q must start with /", c.Route))
	}
	if !c.Verb.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", haloscan.ErrUnsupportedVerb, c.Verb))
	}
	seen := make(map[string]struct{}, len(c.Schema))
	for _, f := range c.Schema {
		if f.Name == "" {
			errs = append(errs, errors.New("field without a name"))
			continue
		}
		if _, dup := seen[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	if len(errs) > 0 {
		return fmt.Errorf("capability %q: %w", c.Name, errors.Join(errs...))
	}
	return nil
}
