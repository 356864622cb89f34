package catalog

import (
	"encoding/json"
	"fmt"
)

// QuizQuestion is a single question inside a quiz-type content body.
type QuizQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// ParseQuizPayload decodes the JSON quiz payload carried in the body of a
// quiz-type content unit.
func ParseQuizPayload(c Content) ([]QuizQuestion, error) {
	if c.ContentType != TypeQuiz {
		return nil, fmt.Errorf("content %q is %s, not a quiz", c.ContentID, c.ContentType)
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(c.Content), &questions); err != nil {
		return nil, fmt.Errorf("parse quiz payload of %q: %w", c.ContentID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz %q has no questions", c.ContentID)
	}
	for i, q := range questions {
		if q.Q == "" || q.Answer == "" {
			return nil, fmt.Errorf("quiz %q question %d is missing text or answer", c.ContentID, i+1)
		}
	}
	return questions, nil
}
