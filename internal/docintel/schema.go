package docintel

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAnalyzeResultSchema returns a JSON-Schema (draft 2020-12 subset) for
// the analyze-result envelope as a generic map. We validate the polled
// payload against it before decoding, so a structurally broken upstream
// response surfaces as one upstream fault instead of scattered zero values.
func BuildAnalyzeResultSchema() map[string]any {
	polygon := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "number"},
	}
	line := map[string]any{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]any{
			"content": map[string]any{"type": "string"},
			"polygon": polygon,
		},
	}
	page := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pageNumber": map[string]any{"type": "integer"},
			"lines":      map[string]any{"type": "array", "items": line},
		},
	}
	document := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"docType": map[string]any{"type": "string"},
			"fields":  map[string]any{"type": "object"},
		},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modelId":   map[string]any{"type": "string"},
			"content":   map[string]any{"type": "string"},
			"documents": map[string]any{"type": "array", "items": document},
			"pages":     map[string]any{"type": "array", "items": page},
			"paragraphs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"content": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

// ValidateAnalyzeResult validates raw JSON against the envelope schema.
func ValidateAnalyzeResult(raw []byte) error {
	b, err := json.Marshal(BuildAnalyzeResultSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analyze-result.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("analyze-result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal analyze result: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("analyze result does not match schema: %w", err)
	}
	return nil
}
