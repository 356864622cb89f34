package report

import (
	"strings"
	"testing"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/learner"
	"github.com/aumai/edumentor/internal/pathgen"
)

func TestPathReportListsUnits(t *testing.T) {
	g := pathgen.New(nil)
	p := g.Generate(learner.Profile{
		LearnerID:     "learner-001",
		Name:          "Asha",
		Age:           12,
		Grade:         7,
		LearningStyle: learner.StyleVisual,
	}, "math")

	out := Path(p, "math")
	if !strings.Contains(out, "LEARNING PATH: Asha | MATH") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "Total units: 3") {
		t.Errorf("missing unit count in:\n%s", out)
	}
	for _, topic := range []string{"Geometry: Triangles", "Statistics: Mean Median Mode", "Algebra Introduction"} {
		if !strings.Contains(out, topic) {
			t.Errorf("missing topic %q", topic)
		}
	}
}

func TestAssessmentReport(t *testing.T) {
	tests := []struct {
		score float64
		label string
	}{
		{95.0, "Excellent"},
		{80.0, "Excellent"},
		{66.7, "Good"},
		{40.0, "Needs Improvement"},
	}

	for _, tt := range tests {
		out := Assessment(assess.Result{
			LearnerID:      "learner-001",
			Subject:        "math",
			Score:          tt.score,
			AreasToImprove: []string{"Fractions"},
		})
		if !strings.Contains(out, "Performance: "+tt.label) {
			t.Errorf("score %.1f: missing label %q", tt.score, tt.label)
		}
		if !strings.Contains(out, "Fractions") {
			t.Error("missing improvement area")
		}
	}
}

func TestSubjectsReport(t *testing.T) {
	out := Subjects(catalog.NewLibrary())
	for _, want := range []string{"math (10 content units)", "science (6 content units)", "hindi (3 content units)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestContentTableTruncatesTopics(t *testing.T) {
	long := catalog.Content{
		ContentID:   "x-001",
		Subject:     "math",
		Topic:       strings.Repeat("Very Long Topic ", 5),
		Difficulty:  catalog.DifficultyBeginner,
		ContentType: catalog.TypeText,
		GradeLevel:  3,
	}
	out := ContentTable([]catalog.Content{long})
	if !strings.Contains(out, "...") {
		t.Error("long topic not truncated")
	}
}
