package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidArguments is wrapped by every argument validation failure.
var ErrInvalidArguments = errors.New("invalid arguments")

// FieldType is the declared type of one input field.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeNumber      FieldType = "number"
	TypeInteger     FieldType = "integer"
	TypeBoolean     FieldType = "boolean"
	TypeStringArray FieldType = "string[]"
	TypeNumberArray FieldType = "number[]"
)

// Field declares one named input of a tool.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any // substituted when the field is absent; nil means no default
	Minimum     *float64
	Maximum     *float64
	Enum        []string
	Description string
}

// Schema is the ordered field list of a tool.
type Schema []Field

// ValidationError lists every problem found in one set of arguments.
type ValidationError struct {
	Tool     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArguments }

// Validate decodes raw arguments and checks them against the schema.
//
// Unknown fields, missing required fields, type mismatches, out-of-range
// numbers and values outside an enum are rejected. Absent optional fields
// with a declared default receive it. The returned map holds declared fields
// only and is safe to forward upstream.
func (s Schema) Validate(tool string, raw json.RawMessage) (map[string]any, error) {
	args, err := decodeArguments(raw)
	if err != nil {
		return nil, &ValidationError{Tool: tool, Problems: []string{err.Error()}}
	}

	var problems []string
	declared := make(map[string]struct{}, len(s))
	for _, f := range s {
		declared[f.Name] = struct{}{}
	}
	var unknown []string
	for k := range args {
		if _, ok := declared[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		problems = append(problems, fmt.Sprintf("unknown field %q", k))
	}

	out := make(map[string]any, len(s))
	for _, f := range s {
		v, present := args[f.Name]
		if !present || v == nil {
			if f.Required {
				problems = append(problems, fmt.Sprintf("missing required field %q", f.Name))
			} else if f.Default != nil {
				out[f.Name] = copyDefault(f.Default)
			}
			continue
		}
		if problem := f.check(v); problem != "" {
			problems = append(problems, fmt.Sprintf("field %q: %s", f.Name, problem))
			continue
		}
		out[f.Name] = v
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Tool: tool, Problems: problems}
	}
	return out, nil
}

// Required returns the names of the required fields in declaration order.
func (s Schema) Required() []string {
	var names []string
	for _, f := range s {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Field returns the field called name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// JSONSchema renders the schema advertised in tools/list.
func (s Schema) JSONSchema() *jsonschema.Schema {
	js := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(s)),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
	for _, f := range s {
		js.Properties[f.Name] = f.jsonSchema()
		if f.Required {
			js.Required = append(js.Required, f.Name)
		}
	}
	return js
}

func (f Field) jsonSchema() *jsonschema.Schema {
	p := &jsonschema.Schema{Description: f.Description}
	switch f.Type {
	case TypeStringArray:
		p.Type = "array"
		p.Items = &jsonschema.Schema{Type: "string"}
	case TypeNumberArray:
		p.Type = "array"
		p.Items = &jsonschema.Schema{Type: "number"}
	default:
		p.Type = string(f.Type)
	}
	p.Minimum = f.Minimum
	p.Maximum = f.Maximum
	for _, e := range f.Enum {
		p.Enum = append(p.Enum, e)
	}
	if f.Default != nil {
		if data, err := json.Marshal(f.Default); err == nil {
			p.Default = data
		}
	}
	return p
}

// check returns a description of what is wrong with v, or "".
func (f Field) check(v any) string {
	switch f.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return "expected string, got " + jsonType(v)
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return fmt.Sprintf("must be one of %s", strings.Join(f.Enum, ", "))
		}
	case TypeNumber, TypeInteger:
		n, ok := v.(float64)
		if !ok {
			return "expected " + string(f.Type) + ", got " + jsonType(v)
		}
		if f.Type == TypeInteger && n != math.Trunc(n) {
			return "expected integer, got " + formatNumber(n)
		}
		if f.Minimum != nil && n < *f.Minimum {
			return "must be >= " + formatNumber(*f.Minimum)
		}
		if f.Maximum != nil && n > *f.Maximum {
			return "must be <= " + formatNumber(*f.Maximum)
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return "expected boolean, got " + jsonType(v)
		}
	case TypeStringArray, TypeNumberArray:
		list, ok := v.([]any)
		if !ok {
			return "expected array, got " + jsonType(v)
		}
		for i, item := range list {
			switch f.Type {
			case TypeStringArray:
				if _, ok := item.(string); !ok {
					return fmt.Sprintf("item %d: expected string, got %s", i, jsonType(item))
				}
			case TypeNumberArray:
				if _, ok := item.(float64); !ok {
					return fmt.Sprintf("item %d: expected number, got %s", i, jsonType(item))
				}
			}
		}
	default:
		return "undeclared type " + string(f.Type)
	}
	return ""
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	if trimmed[0] != '{' {
		return nil, errors.New("arguments must be a JSON object")
	}
	var args map[string]any
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	return args, nil
}

// copyDefault returns a value the caller may mutate without touching the
// declared default.
func copyDefault(v any) any {
	switch d := v.(type) {
	case []string:
		out := make([]any, len(d))
		for i, s := range d {
			out[i] = s
		}
		return out
	case []any:
		return slices.Clone(d)
	default:
		return v
	}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func formatNumber(f float64) string {
	data, _ := json.Marshal(f)
	return string(data)
}
