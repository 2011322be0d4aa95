package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDumpJSONSchema returns the JSON-Schema (draft 2020-12 subset) a page
// dump must satisfy: a pages array of {text, grid} objects, grid cells being
// strings or null.
func BuildDumpJSONSchema() map[string]any {
	cell := map[string]any{"type": []string{"string", "null"}}
	page := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"grid": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": cell,
				},
			},
		},
		"required": []string{"text"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"table_settings": map[string]any{"type": "object"},
			"pages": map[string]any{
				"type":  "array",
				"items": page,
			},
		},
		"required": []string{"pages"},
	}
}

// ValidateDump validates a raw page-dump payload against the dump schema.
func ValidateDump(data []byte) error {
	b, err := json.Marshal(BuildDumpJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("pagedump.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("pagedump.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal dump: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("dump does not match schema: %w", err)
	}
	return nil
}
