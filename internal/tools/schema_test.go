package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return schemaOf(
		required(text("keyword", "")),
		lineCount(),
		order(),
		flag("exact_match", ""),
		texts("keywords", ""),
		numbers("keys", ""),
		Field{Name: "blocks", Type: TypeStringArray, Default: []string{"a", "b"}},
	)
}

func validate(t *testing.T, s Schema, raw string) (map[string]any, error) {
	t.Helper()
	return s.Validate("test_tool", json.RawMessage(raw))
}

func requireInvalid(t *testing.T, err error, fragment string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArguments), "error %v should wrap ErrInvalidArguments", err)
	assert.Contains(t, err.Error(), fragment)
}

func TestValidate_AcceptsDeclaredFields(t *testing.T) {
	args, err := validate(t, testSchema(), `{"keyword":"seo","lineCount":10,"order":"asc","exact_match":true,"keywords":["a"],"keys":[1,2.5]}`)
	require.NoError(t, err)
	assert.Equal(t, "seo", args["keyword"])
	assert.Equal(t, float64(10), args["lineCount"])
	assert.Equal(t, "asc", args["order"])
	assert.Equal(t, true, args["exact_match"])
	assert.Equal(t, []any{"a"}, args["keywords"])
	assert.Equal(t, []any{float64(1), 2.5}, args["keys"])
}

func TestValidate_SubstitutesDefaults(t *testing.T) {
	s := testSchema()
	args, err := validate(t, s, `{"keyword":"seo"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"keyword": "seo", "blocks": []any{"a", "b"}}, args)

	// Mutating the result must not leak into the declared default.
	args["blocks"].([]any)[0] = "changed"
	f, ok := s.Field("blocks")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, f.Default)
}

func TestValidate_ExplicitValueOverridesDefault(t *testing.T) {
	args, err := validate(t, testSchema(), `{"keyword":"seo","blocks":["only"]}`)
	require.NoError(t, err)
	assert.Equal(t, []any{"only"}, args["blocks"])
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		fragment string
	}{
		{"missing required", `{}`, `missing required field "keyword"`},
		{"null required", `{"keyword":null}`, `missing required field "keyword"`},
		{"unknown field", `{"keyword":"x","surprise":1}`, `unknown field "surprise"`},
		{"wrong type", `{"keyword":42}`, `expected string, got number`},
		{"fractional integer", `{"keyword":"x","lineCount":1.5}`, `expected integer`},
		{"below minimum", `{"keyword":"x","lineCount":0}`, `must be >= 1`},
		{"enum", `{"keyword":"x","order":"sideways"}`, `must be one of asc, desc`},
		{"boolean", `{"keyword":"x","exact_match":"yes"}`, `expected boolean`},
		{"array type", `{"keyword":"x","keywords":"a"}`, `expected array, got string`},
		{"array item", `{"keyword":"x","keywords":["a",1]}`, `item 1: expected string`},
		{"number array item", `{"keyword":"x","keys":["1"]}`, `item 0: expected number`},
		{"not an object", `["keyword"]`, `arguments must be a JSON object`},
		{"malformed", `{"keyword":`, `decode arguments`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate(t, testSchema(), tc.raw)
			requireInvalid(t, err, tc.fragment)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	_, err := validate(t, testSchema(), `{"a":1,"b":2}`)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "test_tool", verr.Tool)
	assert.Equal(t, []string{
		`unknown field "a"`,
		`unknown field "b"`,
		`missing required field "keyword"`,
	}, verr.Problems)
}

func TestValidate_EmptyArguments(t *testing.T) {
	s := Schema{text("optional", "")}
	for _, raw := range []string{"", "null", "  ", "{}"} {
		args, err := validate(t, s, raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Empty(t, args)
	}
}

func TestSchema_JSONSchema(t *testing.T) {
	js := testSchema().JSONSchema()
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"keyword"}, js.Required)
	require.Len(t, js.Properties, 7)

	assert.Equal(t, "integer", js.Properties["lineCount"].Type)
	require.NotNil(t, js.Properties["lineCount"].Minimum)
	assert.Equal(t, 1.0, *js.Properties["lineCount"].Minimum)

	assert.Equal(t, []any{"asc", "desc"}, js.Properties["order"].Enum)

	assert.Equal(t, "array", js.Properties["keywords"].Type)
	assert.Equal(t, "string", js.Properties["keywords"].Items.Type)
	assert.Equal(t, "number", js.Properties["keys"].Items.Type)

	assert.JSONEq(t, `["a","b"]`, string(js.Properties["blocks"].Default))

	data, err := json.Marshal(js)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"additionalProperties"`)
}

func TestSchema_Required(t *testing.T) {
	assert.Equal(t, []string{"keyword"}, testSchema().Required())
	assert.Nil(t, Schema{}.Required())
}
