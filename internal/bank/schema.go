package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://assessiz/bank.json"

// documentSchema describes the shape of a bank file. Cross-field rules
// (unique ids, correct answers present in options) live in NormalizeDocument.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "minLength": 1},
		"assessments": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"duration":    map[string]any{"type": "string"},
					"style":       map[string]any{"type": "string"},
					"strategy":    map[string]any{"enum": []any{string(StrategyCorrectness), string(StrategyPreference)}},
					"advertised":  map[string]any{"type": "integer", "minimum": 0},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":             map[string]any{"type": "string", "minLength": 1},
								"kind":           map[string]any{"enum": []any{string(KindMultipleChoice), string(KindTrueFalse), string(KindRating)}},
								"prompt":         map[string]any{"type": "string", "minLength": 1},
								"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
								"correct_answer": map[string]any{"type": "string"},
								"category":       map[string]any{"type": "string", "minLength": 1},
								"difficulty":     map[string]any{"enum": []any{string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard)}},
							},
							"required":             []any{"id", "kind", "prompt", "category", "difficulty"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "strategy", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "assessments"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, documentSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(documentSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateDocument checks doc against the bank file schema.
func ValidateDocument(doc Document) error {
	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	// The validator expects plain JSON values, not Go structs.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{Issues: []Issue{{Field: "document", Message: err.Error()}}}
	}
	return nil
}
