package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema describes a well-formed v1 snapshot file. Validating up
// front gives one precise error instead of partial decode failures
// halfway through an import.
const fileSchema = `{
  "type": "object",
  "required": ["skill_levels"],
  "properties": {
    "skill_levels": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {"type": "integer"}
      }
    },
    "sessions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["timestamp", "updates"],
        "properties": {
          "timestamp": {"type": "string"},
          "notes": {"type": "string"},
          "updates": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "additionalProperties": {
                "type": "object",
                "required": ["old_level", "new_level", "gain"],
                "properties": {
                  "old_level": {"type": "integer"},
                  "new_level": {"type": "integer"},
                  "gain": {"type": "integer"}
                }
              }
            }
          }
        }
      }
    },
    "last_updated": {"type": "string"}
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(fileSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://legacy-snapshot.json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateFile checks raw bytes against the v1 schema.
func validateFile(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("not a v1 snapshot file: %w", err)
	}
	return nil
}
