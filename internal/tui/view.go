package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aumai/edumentor/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

func (m *QuizModel) View() tea.View {
	v := tea.NewView("")

	switch m.phase {
	case phaseResult:
		v.SetContent(m.renderResult())
	case phaseFeedback:
		v.SetContent(m.renderFeedback())
	default:
		v.SetContent(m.renderQuestion())
	}
	return v
}

func (m *QuizModel) renderQuestion() string {
	q := m.questions[m.index]

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.content.Topic))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(m.index) / float64(len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Q))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		line := fmt.Sprintf("%s) %s", label, opt)
		if i == m.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("↑↓ choose · Enter or 1-4 answer · Esc quit"))

	return theme.Card.Render(b.String())
}

func (m *QuizModel) renderFeedback() string {
	var b strings.Builder
	if m.lastCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("The answer is: " + m.lastAnswer))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to continue"))

	return theme.Card.Render(b.String())
}

func (m *QuizModel) renderResult() string {
	r := m.result

	var b strings.Builder
	b.WriteString(theme.Title.Render("QUIZ COMPLETE"))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("Score: %.1f%%", r.Score)))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Areas to improve:"))
	b.WriteString("\n")
	for _, area := range r.AreasToImprove {
		b.WriteString(theme.Body.Render("  - " + area))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press any key to exit"))

	return theme.Card.Render(b.String())
}
