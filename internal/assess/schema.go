package assess

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// answersSchema validates an incoming answer list. The correct flag is
// deliberately unconstrained: booleans, strings, and numbers all occur in
// the wild and are normalised by Truthy.
var answersSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id": map[string]any{"type": "string", "minLength": 1},
			"correct":     map[string]any{},
			"topic":       map[string]any{"type": "string"},
		},
		"required":             []any{"question_id", "correct"},
		"additionalProperties": false,
	},
}

var (
	compileOnce     sync.Once
	compiledAnswers *jsonschema.Schema
	compileErr      error
)

// ParseAnswers validates a raw JSON answer list against the schema and
// decodes it.
func ParseAnswers(raw []byte) ([]Answer, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledAnswersSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid answer list: %w", err)
	}

	var answers []Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("decode answer list: %w", err)
	}
	return answers, nil
}

func compiledAnswersSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(answersSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://answers.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledAnswers, compileErr = c.Compile("schema://answers.json")
	})
	return compiledAnswers, compileErr
}
