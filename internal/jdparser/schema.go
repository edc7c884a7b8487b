package jdparser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/campushire/placement-portal/constants"
)

// BuildPostingJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// JobPostingPayload as a generic map. The pipeline validates serialized
// payloads against it before handing them to the posting store.
func BuildPostingJSONSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":               map[string]any{"type": "string"},
			"companyName":         map[string]any{"type": "string"},
			"location":            map[string]any{"type": "string"},
			"salaryRange":         map[string]any{"type": "string"},
			"experienceRequired":  map[string]any{"type": "string"},
			"skillsRequired":      stringArray,
			"description":         map[string]any{"type": "string"},
			"requirements":        stringArray,
			"benefits":            stringArray,
			"jobType":             map[string]any{"type": "string", "enum": constants.JobTypes},
			"workMode":            map[string]any{"type": "string", "enum": constants.WorkModes},
			"applicationDeadline": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		},
		"required": []string{"jobType", "workMode", "applicationDeadline", "description"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
