// Package report renders learning paths and assessment results for the
// terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/pathgen"
	"github.com/aumai/edumentor/internal/ui/theme"
)

// previewLen is the number of body characters shown per unit.
const previewLen = 150

// Path renders a learning path as a sectioned text report.
func Path(p pathgen.Path, subject string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render(fmt.Sprintf("LEARNING PATH: %s | %s", p.Learner.Name, strings.ToUpper(subject))))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Grade: %d | Learning Style: %s", p.Learner.Grade, p.Learner.LearningStyle)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Total units: %d", len(p.ContentSequence))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("═", 60))
	b.WriteString("\n")

	for i, c := range p.ContentSequence {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, difficultyBadge(c.Difficulty), theme.Body.Render(c.Topic)))
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   Type: %s | Grade: %d", c.ContentType, c.GradeLevel)))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   NCF: %s", strings.Join(c.NCFAlignment, ", "))))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   Preview: %s", preview(c.Content))))
		b.WriteString("\n")
	}

	return b.String()
}

// Assessment renders an assessment result.
func Assessment(r assess.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("ASSESSMENT RESULT"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Learner ID: %s | Subject: %s", r.LearnerID, r.Subject)))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("Score: %.1f%%", r.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Performance: " + performanceLabel(r.Score)))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("AREAS TO IMPROVE:"))
	b.WriteString("\n")
	for _, area := range r.AreasToImprove {
		b.WriteString(theme.Body.Render("  - " + area))
		b.WriteString("\n")
	}

	return b.String()
}

// Subjects renders the subject listing with unit counts.
func Subjects(lib *catalog.Library) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("AVAILABLE SUBJECTS:"))
	b.WriteString("\n")
	for _, subject := range lib.AllSubjects() {
		count := len(lib.Search(subject, catalog.SearchFilter{}))
		b.WriteString(theme.Body.Render(fmt.Sprintf("  - %s (%d content units)", subject, count)))
		b.WriteString("\n")
	}

	return b.String()
}

// ContentTable renders the full content listing as aligned columns.
func ContentTable(contents []catalog.Content) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-16s  %-14s  %-38s  %-12s  %-8s  %5s\n",
		"ID", "Subject", "Topic", "Difficulty", "Type", "Grade"))
	b.WriteString(strings.Repeat("─", 102))
	b.WriteString("\n")

	for _, c := range contents {
		topic := c.Topic
		if len(topic) > 38 {
			topic = topic[:35] + "..."
		}
		b.WriteString(fmt.Sprintf("%-16s  %-14s  %-38s  %-12s  %-8s  %5d\n",
			c.ContentID, c.Subject, topic, c.Difficulty, c.ContentType, c.GradeLevel))
	}

	return b.String()
}

// performanceLabel buckets a score into a coarse verdict.
func performanceLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

func difficultyBadge(d catalog.Difficulty) string {
	label := "[" + strings.ToUpper(string(d)) + "]"
	switch d {
	case catalog.DifficultyBeginner:
		return theme.BadgeBeginner.Render(label)
	case catalog.DifficultyIntermediate:
		return theme.BadgeIntermediate.Render(label)
	case catalog.DifficultyAdvanced:
		return theme.BadgeAdvanced.Render(label)
	default:
		return label
	}
}

func preview(content string) string {
	if len(content) > previewLen {
		return content[:previewLen] + "..."
	}
	return content
}
