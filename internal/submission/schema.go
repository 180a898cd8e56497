package submission

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// requestSchema describes the hint request body. Status and language are
// closed enumerations so unsupported values never reach the classifier.
var requestSchema = &Schema{
	Name: "hint-request",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"code", "output", "error", "status"},
		"properties": map[string]any{
			"code":   map[string]any{"type": "string"},
			"output": map[string]any{"type": "string"},
			"error":  map[string]any{"type": "string"},
			"status": map[string]any{
				"type": "string",
				"enum": []string{string(diagnosis.StatusSuccess), string(diagnosis.StatusFailure)},
			},
			"code_language": map[string]any{
				"type": "string",
				"enum": languageNames(),
			},
		},
	},
}

func languageNames() []string {
	langs := diagnosis.SupportedLanguages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	return names
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
