package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// vendorAnswerSchema constrains the JSON-mode answer to a single non-empty
// vendor_name string.
var vendorAnswerSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"vendor_name": map[string]any{"type": "string", "minLength": 1},
	},
	"required": []string{"vendor_name"},
}

// parseVendorAnswer validates the model's JSON against the schema and
// returns the vendor_name value.
func parseVendorAnswer(data []byte) (string, error) {
	if err := validateAgainstSchema(vendorAnswerSchema, data); err != nil {
		return "", err
	}
	var out struct {
		VendorName string `json:"vendor_name"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unmarshal answer: %w", err)
	}
	return out.VendorName, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
