// Package tui implements the interactive quiz player.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
)

// phase tracks where the quiz player is in its flow.
type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseResult
)

// QuizModel is the Bubble Tea model for playing a quiz-type content unit.
type QuizModel struct {
	content   catalog.Content
	questions []catalog.QuizQuestion
	learnerID string
	sessionID string
	engine    *assess.Engine

	phase       phase
	index       int
	selected    int
	lastCorrect bool
	lastAnswer  string
	answers     []assess.Answer
	result      *assess.Result

	bar    progress.Model
	width  int
	height int
}

// NewQuiz builds a quiz player for the given content unit. The unit must be
// quiz-type with a well-formed payload.
func NewQuiz(c catalog.Content, learnerID string) (*QuizModel, error) {
	questions, err := catalog.ParseQuizPayload(c)
	if err != nil {
		return nil, err
	}
	return &QuizModel{
		content:   c,
		questions: questions,
		learnerID: learnerID,
		sessionID: uuid.New().String(),
		engine:    assess.NewEngine(),
		bar:       progress.New(progress.WithDefaultBlend(), progress.WithWidth(40)),
	}, nil
}

// Result returns the assessment result, or nil if the quiz was not finished.
func (m *QuizModel) Result() *assess.Result {
	return m.result
}

func (m *QuizModel) Init() tea.Cmd {
	return nil
}

func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseResult:
		// Any key leaves the result screen.
		return m, tea.Quit

	case phaseFeedback:
		// Any key advances.
		m.phase = phaseQuestion
		m.index++
		m.selected = 0
		if m.index >= len(m.questions) {
			m.finish()
		}
		return m, nil

	case phaseQuestion:
		q := m.questions[m.index]
		switch key {
		case "esc", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(q.Options)-1 {
				m.selected++
			}
		case "enter":
			return m.submit()
		case "1", "2", "3", "4":
			n := int(key[0] - '1')
			if n < len(q.Options) {
				m.selected = n
				return m.submit()
			}
		}
	}
	return m, nil
}

// submit records the selected option and shows feedback.
func (m *QuizModel) submit() (tea.Model, tea.Cmd) {
	q := m.questions[m.index]
	var chosen string
	if m.selected >= 0 && m.selected < len(q.Options) {
		chosen = q.Options[m.selected]
	}

	m.lastCorrect = chosen == q.Answer
	m.lastAnswer = q.Answer
	m.answers = append(m.answers, assess.Answer{
		QuestionID: fmt.Sprintf("%s-q%d", m.content.ContentID, m.index+1),
		Correct:    assess.Bool(m.lastCorrect),
		Topic:      assess.TopicOf(m.content.Topic),
	})

	m.phase = phaseFeedback
	return m, nil
}

// finish evaluates the collected answers and switches to the result screen.
func (m *QuizModel) finish() {
	r := m.engine.Evaluate(m.learnerID, m.content.Subject, m.answers)
	m.result = &r
	m.phase = phaseResult
}

// Run plays the quiz to completion and returns the assessment result, or
// nil if the learner quit early.
func Run(c catalog.Content, learnerID string) (*assess.Result, error) {
	model, err := NewQuiz(c, learnerID)
	if err != nil {
		return nil, err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("run quiz: %w", err)
	}
	return model.Result(), nil
}
