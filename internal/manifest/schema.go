// schema.go validates decoded manifests against a JSON schema.
//
// Separated from manifest.go to isolate the schema text and its one-time
// compilation. The typed decode already rejects wrong shapes; the schema
// adds value constraints the struct cannot express: required fields, the
// npm name grammar, and the version format.

package manifest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "version"],
  "properties": {
    "name": {
      "type": "string",
      "minLength": 1,
      "maxLength": 214,
      "pattern": "^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$"
    },
    "version": {
      "type": "string",
      "pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+(-[0-9A-Za-z-.]+)?$"
    },
    "description": {"type": "string"},
    "author": {"type": "string"},
    "license": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "files": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "scripts": {"type": "object", "additionalProperties": {"type": "string"}}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("package.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Validate checks the manifest against the embedded schema.
func (m *Manifest) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile manifest schema: %w", err)
	}

	// The schema engine validates decoded JSON values, not Go structs,
	// so round-trip through encoding/json first.
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	if err := s.Validate(decoded); err != nil {
		return fmt.Errorf("manifest invalid: %w", err)
	}
	return nil
}
