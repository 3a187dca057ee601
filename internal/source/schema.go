package source

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordsSchema describes the shape every exercise file must satisfy: a JSON
// array of objects. Field-level problems are handled per record by the
// normalizer; this gate only rejects payloads the engine cannot iterate.
var recordsSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "object"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateRecords checks a parsed payload against the source schema.
func validateRecords(parsed any) error {
	compileOnce.Do(func() {
		compiled, compileErr = compileRecordsSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile records schema: %w", compileErr)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileRecordsSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(recordsSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://exercise-records.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
