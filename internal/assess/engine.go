package assess

import (
	"fmt"
	"math"
)

// Messages surfaced in areas_to_improve. Downstream consumers match on the
// exact wording, so these are fixed.
const (
	MsgNoAnswers   = "No answers provided — please attempt the assessment."
	MsgExcellent   = "Continue to advanced topics — excellent performance!"
	msgFundamental = "Fundamental concepts in %s"
)

// fundamentalsThreshold is the score below which the fundamentals message is
// added to the improvement areas.
const fundamentalsThreshold = 40

// Result is the outcome of evaluating an assessment submission.
type Result struct {
	LearnerID      string   `json:"learner_id"`
	Subject        string   `json:"subject"`
	Score          float64  `json:"score"`
	AreasToImprove []string `json:"areas_to_improve"`
}

// Engine evaluates learner answers into a score and weak-topic list.
type Engine struct{}

// NewEngine creates an assessment engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate scores a list of answers. An empty list yields score 0 with a
// placeholder message; it is not an error.
func (e *Engine) Evaluate(learnerID, subject string, answers []Answer) Result {
	if len(answers) == 0 {
		return Result{
			LearnerID:      learnerID,
			Subject:        subject,
			Score:          0.0,
			AreasToImprove: []string{MsgNoAnswers},
		}
	}

	correct := 0
	for _, a := range answers {
		if a.Correct.IsCorrect() {
			correct++
		}
	}
	score := round1(float64(correct) / float64(len(answers)) * 100)

	// Topics with wrong answers, first occurrence first, case-sensitive.
	var areas []string
	seen := make(map[string]bool)
	for _, a := range answers {
		if a.Correct.IsCorrect() {
			continue
		}
		topic := subject
		if a.Topic != nil {
			topic = *a.Topic
		}
		if !seen[topic] {
			seen[topic] = true
			areas = append(areas, topic)
		}
	}

	if score < fundamentalsThreshold {
		areas = append(areas, fmt.Sprintf(msgFundamental, subject))
	}
	if len(areas) == 0 {
		areas = []string{MsgExcellent}
	}

	return Result{
		LearnerID:      learnerID,
		Subject:        subject,
		Score:          score,
		AreasToImprove: areas,
	}
}

// round1 rounds to one decimal place, halves to even, so exact ties like
// 6.25 round down to 6.2.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
