package tools

import (
	"errors"
	"fmt"
)

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	tools []Tool
	errs  []error
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// WithTool adds a tool and returns the builder, enabling chaining.
func (b *RegistryBuilder) WithTool(tool Tool) *RegistryBuilder {
	b.tools = append(b.tools, tool)

	return b
}

// WithCapabilities adds one tool per descriptor, all served by d.
func (b *RegistryBuilder) WithCapabilities(d Dispatcher, caps ...Capability) *RegistryBuilder {
	for _, c := range caps {
		if err := c.Validate(); err != nil {
			b.errs = append(b.errs, err)
			continue
		}
		b.tools = append(b.tools, NewCapabilityTool(c, d))
	}

	return b
}

// Build produces an immutable Registry from the accumulated tools.
// Invalid descriptors and duplicate names are reported together.
func (b *RegistryBuilder) Build() (*Registry, error) {
	errs := append([]error(nil), b.errs...)
	tools := make(map[string]Tool, len(b.tools))
	order := make([]string, 0, len(b.tools))
	for _, t := range b.tools {
		name := t.Name()
		if _, dup := tools[name]; dup {
			errs = append(errs, fmt.Errorf("duplicate tool %q", name))
			continue
		}
		tools[name] = t
		order = append(order, name)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("build registry: %w", errors.Join(errs...))
	}
	return &Registry{tools: tools, order: order}, nil
}

// NewHaloscanRegistry builds the registry of set_api_key plus every catalog
// capability, served by d.
func NewHaloscanRegistry(d Dispatcher) (*Registry, error) {
	return NewRegistryBuilder().
		WithTool(NewSetAPIKeyTool()).
		WithCapabilities(d, Catalog()...).
		Build()
}
