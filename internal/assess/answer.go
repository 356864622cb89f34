package assess

import (
	"encoding/json"
	"strings"
)

// truthyKind tags which JSON shape a correct flag arrived as.
type truthyKind int

const (
	kindAbsent truthyKind = iota
	kindBool
	kindString
	kindNumber
	kindNull
	kindOther
)

// Truthy holds a correct flag that may arrive as a JSON boolean, string,
// number, null, or anything else. JSON produced by loosely typed upstreams
// often carries the string "false", which naive boolean coercion would count
// as correct; IsCorrect applies the string rule that guards against that.
type Truthy struct {
	kind truthyKind
	b    bool
	s    string
	n    float64
	v    any
}

// Bool returns a Truthy wrapping a plain boolean.
func Bool(v bool) Truthy {
	return Truthy{kind: kindBool, b: v}
}

// Text returns a Truthy wrapping a string flag.
func Text(v string) Truthy {
	return Truthy{kind: kindString, s: v}
}

// UnmarshalJSON accepts any JSON value and remembers its shape.
func (t *Truthy) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = Truthy{kind: kindBool, b: b}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Truthy{kind: kindString, s: s}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Truthy{kind: kindNumber, n: n}
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*t = Truthy{kind: kindNull}
		return nil
	}
	*t = Truthy{kind: kindOther, v: v}
	return nil
}

// MarshalJSON writes the flag back in its original shape.
func (t Truthy) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case kindBool:
		return json.Marshal(t.b)
	case kindString:
		return json.Marshal(t.s)
	case kindNumber:
		return json.Marshal(t.n)
	case kindOther:
		return json.Marshal(t.v)
	default:
		return []byte("null"), nil
	}
}

// falseWords are the string values read as incorrect after trimming and
// lower-casing. Every other string, garbage included, counts as correct.
var falseWords = map[string]bool{
	"false": true,
	"0":     true,
	"no":    true,
	"":      true,
}

// IsCorrect interprets the flag. Strings use the explicit word list; other
// shapes use standard truthiness (false, zero, null, and empty collections
// are incorrect).
func (t Truthy) IsCorrect() bool {
	switch t.kind {
	case kindBool:
		return t.b
	case kindString:
		return !falseWords[strings.ToLower(strings.TrimSpace(t.s))]
	case kindNumber:
		return t.n != 0
	case kindOther:
		switch v := t.v.(type) {
		case []any:
			return len(v) > 0
		case map[string]any:
			return len(v) > 0
		}
		return true
	default:
		return false
	}
}

// Answer is one question response in an assessment submission. A nil topic
// falls back to the assessment subject at evaluation time; an empty string
// is a topic in its own right and is kept as-is.
type Answer struct {
	QuestionID string  `json:"question_id"`
	Correct    Truthy  `json:"correct"`
	Topic      *string `json:"topic,omitempty"`
}

// TopicOf returns a pointer suitable for Answer.Topic.
func TopicOf(s string) *string {
	return &s
}
