package learner

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema is the JSON schema for incoming learner profile documents.
// It mirrors the Profile field constraints so malformed input fails before
// any path generation runs.
var profileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"learner_id": map[string]any{"type": "string", "minLength": 1},
		"name":       map[string]any{"type": "string", "minLength": 1},
		"age":        map[string]any{"type": "integer", "minimum": 4, "maximum": 25},
		"grade":      map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
		"language":   map[string]any{"type": "string"},
		"strengths": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"weaknesses": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"learning_style": map[string]any{
			"type":    "string",
			"pattern": "^(visual|auditory|kinesthetic|read-write)$",
		},
	},
	"required":             []any{"learner_id", "name", "age", "grade"},
	"additionalProperties": false,
}

var (
	compileOnce     sync.Once
	compiledProfile *jsonschema.Schema
	compileErr      error
)

// ParseProfile validates a raw JSON document against the profile schema and
// decodes it into a Profile with defaults applied.
func ParseProfile(raw []byte) (Profile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Profile{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledProfileSchema()
	if err != nil {
		return Profile{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Profile{}, fmt.Errorf("invalid learner profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode learner profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// compiledProfileSchema compiles the schema once and caches it.
func compiledProfileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// Go maps with typed numbers. Marshal then unmarshal to get a clean
		// any representation.
		defBytes, err := json.Marshal(profileSchema)
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
		if err := c.AddResource("schema://learner-profile.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledProfile, compileErr = c.Compile("schema://learner-profile.json")
	})
	return compiledProfile, compileErr
}
