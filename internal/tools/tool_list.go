package tools

// Definition describes one tool for listings outside MCP, such as the tools
// command.
type Definition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Verb        string   `json:"verb,omitempty"`
	Route       string   `json:"route,omitempty"`
	Required    []string `json:"required,omitempty"`
	Fields      int      `json:"fields"`
	InputSchema any      `json:"inputSchema"`
}

// Definitions returns all tool definitions in registration order.
func (r *Registry) Definitions() []Definition {
	list := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		schema := t.InputSchema()
		def := Definition{
			Name:        t.Name(),
			Description: t.Description(),
			Required:    schema.Required(),
			Fields:      len(schema),
			InputSchema: schema.JSONSchema(),
		}
		if ct, ok := t.(*capabilityTool); ok {
			def.Verb = string(ct.cap.Verb)
			def.Route = ct.cap.Route
		}
		list = append(list, def)
	}
	return list
}
