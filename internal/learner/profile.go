package learner

import (
	"fmt"
	"strings"
)

// LearningStyle represents how a learner prefers to absorb content.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReadWrite   LearningStyle = "read-write"
)

// AllStyles returns every learning style.
func AllStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadWrite}
}

// Valid reports whether the style is one of the known values.
func (s LearningStyle) Valid() bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadWrite:
		return true
	}
	return false
}

// DefaultLanguage is the preferred-language code used when unspecified.
const DefaultLanguage = "en"

// Profile describes the person being taught. Immutable once validated.
type Profile struct {
	LearnerID     string        `json:"learner_id"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Grade         int           `json:"grade"`
	Language      string        `json:"language"`
	Strengths     []string      `json:"strengths"`
	Weaknesses    []string      `json:"weaknesses"`
	LearningStyle LearningStyle `json:"learning_style"`
}

// Validate checks range and enum fields, filling defaults for language and
// learning style when empty.
func (p *Profile) Validate() error {
	var errs []string

	if p.LearnerID == "" {
		errs = append(errs, "learner_id is required")
	}
	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	if p.Age < 4 || p.Age > 25 {
		errs = append(errs, fmt.Sprintf("age %d out of range [4, 25]", p.Age))
	}
	if p.Grade < 1 || p.Grade > 12 {
		errs = append(errs, fmt.Sprintf("grade %d out of range [1, 12]", p.Grade))
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.LearningStyle == "" {
		p.LearningStyle = StyleVisual
	}
	if !p.LearningStyle.Valid() {
		errs = append(errs, fmt.Sprintf("invalid learning_style %q: must be visual, auditory, kinesthetic, or read-write", p.LearningStyle))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid learner profile: %s", strings.Join(errs, "; "))
	}
	return nil
}

// IsWeakIn reports whether the given subject appears in the learner's
// weaknesses list, compared case-insensitively.
func (p *Profile) IsWeakIn(subject string) bool {
	for _, w := range p.Weaknesses {
		if strings.EqualFold(w, subject) {
			return true
		}
	}
	return false
}
