package catalog

import (
	"fmt"
	"strings"
)

// Difficulty represents the difficulty level of a content unit.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns all difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Valid reports whether the difficulty is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Rank returns the numeric position of the difficulty (beginner=0,
// intermediate=1, advanced=2). Unknown difficulties rank as intermediate.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 1
	}
}

// ContentType represents the format of a content unit.
type ContentType string

const (
	TypeText     ContentType = "text"
	TypeQuiz     ContentType = "quiz"
	TypeActivity ContentType = "activity"
)

// AllContentTypes returns all content types.
func AllContentTypes() []ContentType {
	return []ContentType{TypeText, TypeQuiz, TypeActivity}
}

// Valid reports whether the content type is one of the known formats.
func (t ContentType) Valid() bool {
	switch t {
	case TypeText, TypeQuiz, TypeActivity:
		return true
	}
	return false
}

// DefaultGradeLevel is used when a content unit does not specify one.
const DefaultGradeLevel = 5

// Content is a single unit of learning content aligned with NCF 2023.
// Content values are immutable once added to a Library.
type Content struct {
	ContentID    string      `json:"content_id" yaml:"content_id"`
	Subject      string      `json:"subject" yaml:"subject"`
	Topic        string      `json:"topic" yaml:"topic"`
	Difficulty   Difficulty  `json:"difficulty" yaml:"difficulty"`
	ContentType  ContentType `json:"content_type" yaml:"content_type"`
	Content      string      `json:"content" yaml:"content"`
	NCFAlignment []string    `json:"ncf_alignment" yaml:"ncf_alignment"`
	GradeLevel   int         `json:"grade_level" yaml:"grade_level"`
}

// Validate checks all enumerated and range fields. A zero grade level is
// filled with DefaultGradeLevel before checking.
func (c *Content) Validate() error {
	var errs []string

	if c.ContentID == "" {
		errs = append(errs, "content_id is required")
	}
	if c.Subject == "" {
		errs = append(errs, "subject is required")
	}
	if c.Topic == "" {
		errs = append(errs, "topic is required")
	}
	if !c.Difficulty.Valid() {
		errs = append(errs, fmt.Sprintf("invalid difficulty %q: must be beginner, intermediate, or advanced", c.Difficulty))
	}
	if !c.ContentType.Valid() {
		errs = append(errs, fmt.Sprintf("invalid content_type %q: must be text, quiz, or activity", c.ContentType))
	}
	if c.GradeLevel == 0 {
		c.GradeLevel = DefaultGradeLevel
	}
	if c.GradeLevel < 1 || c.GradeLevel > 12 {
		errs = append(errs, fmt.Sprintf("grade_level %d out of range [1, 12]", c.GradeLevel))
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

// ValidationError describes one or more construction-time problems with a
// content unit or profile.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	return fmt.Sprintf("%d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}
