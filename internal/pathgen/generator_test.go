package pathgen

import (
	"testing"

	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/learner"
)

func profile(grade int, weaknesses []string, style learner.LearningStyle) learner.Profile {
	return learner.Profile{
		LearnerID:     "learner-001",
		Name:          "Asha",
		Age:           6 + grade,
		Grade:         grade,
		Language:      "en",
		Weaknesses:    weaknesses,
		LearningStyle: style,
	}
}

func TestGenerateNoDuplicatesAndKnownIDs(t *testing.T) {
	g := New(nil)
	known := make(map[string]bool)
	for _, c := range g.Library().AllContent() {
		known[c.ContentID] = true
	}

	for _, subject := range []string{"math", "science", "hindi", "english", "social_studies"} {
		path := g.Generate(profile(7, nil, learner.StyleVisual), subject)

		seen := make(map[string]bool)
		for _, c := range path.ContentSequence {
			if seen[c.ContentID] {
				t.Errorf("%s: duplicate content ID %q in path", subject, c.ContentID)
			}
			seen[c.ContentID] = true
			if !known[c.ContentID] {
				t.Errorf("%s: path contains ID %q not present in library", subject, c.ContentID)
			}
		}
	}
}

func TestGenerateGradeWindow(t *testing.T) {
	g := New(nil)
	path := g.Generate(profile(7, nil, learner.StyleVisual), "math")

	if len(path.ContentSequence) == 0 {
		t.Fatal("empty path for math at grade 7")
	}
	for _, c := range path.ContentSequence {
		if c.GradeLevel < 6 || c.GradeLevel > 8 {
			t.Errorf("unit %q grade %d outside window [6, 8]", c.ContentID, c.GradeLevel)
		}
	}
}

func TestGenerateGradeWindowClamps(t *testing.T) {
	tests := []struct {
		grade  int
		wantLo int
		wantHi int
	}{
		{1, 1, 2},
		{2, 1, 3},
		{7, 6, 8},
		{11, 10, 12},
		{12, 11, 12},
	}
	for _, tt := range tests {
		lo, hi := gradeWindow(tt.grade)
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("gradeWindow(%d) = [%d, %d], want [%d, %d]", tt.grade, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

// A subject with content, none of it near the learner's grade, must still
// produce a non-empty path.
func TestGenerateFallbackOutsideGradeWindow(t *testing.T) {
	g := New(nil)
	// Hindi content sits at grades 1, 5, and 8; no grade-11/12 units exist.
	path := g.Generate(profile(12, nil, learner.StyleReadWrite), "hindi")

	if len(path.ContentSequence) != 3 {
		t.Fatalf("fallback path has %d units, want all 3 hindi units", len(path.ContentSequence))
	}

	// Target intermediate, preferred type text: the intermediate text unit
	// leads, then the beginner text unit, then the advanced activity.
	wantOrder := []string{"hindi-002", "hindi-001", "hindi-003"}
	for i, want := range wantOrder {
		if path.ContentSequence[i].ContentID != want {
			t.Errorf("position %d = %q, want %q", i, path.ContentSequence[i].ContentID, want)
		}
	}
}

func TestGenerateWeakSubjectStartsEasy(t *testing.T) {
	lib := catalog.NewLibrary()
	// Give science a beginner unit inside the grade-7 window so the
	// weakness-driven target has something to favour.
	mustAdd(t, lib, catalog.Content{
		ContentID:   "sci-basics",
		Subject:     "science",
		Topic:       "Science Basics",
		Difficulty:  catalog.DifficultyBeginner,
		ContentType: catalog.TypeText,
		Content:     "Observation and measurement.",
		GradeLevel:  7,
	})
	g := New(lib)

	weak := g.Generate(profile(7, []string{"science"}, learner.StyleAuditory), "science")
	if weak.ContentSequence[0].ContentID != "sci-basics" {
		t.Errorf("weak learner path starts with %q, want the beginner unit", weak.ContentSequence[0].ContentID)
	}

	strong := g.Generate(profile(7, nil, learner.StyleAuditory), "science")
	if strong.ContentSequence[0].Difficulty != catalog.DifficultyIntermediate {
		t.Errorf("non-weak learner path starts at %q, want intermediate", strong.ContentSequence[0].Difficulty)
	}
}

// Grade-7 visual learner weak in math: no beginner math exists in grades
// 6-8, so the nearest-rank (intermediate) activity leads the path.
func TestGenerateSeedExampleGrade7WeakMath(t *testing.T) {
	g := New(nil)
	path := g.Generate(profile(7, []string{"math"}, learner.StyleVisual), "math")

	wantOrder := []string{"math-007", "math-010", "math-006"}
	if len(path.ContentSequence) != len(wantOrder) {
		t.Fatalf("path has %d units, want %d", len(path.ContentSequence), len(wantOrder))
	}
	for i, want := range wantOrder {
		if path.ContentSequence[i].ContentID != want {
			t.Errorf("position %d = %q, want %q", i, path.ContentSequence[i].ContentID, want)
		}
	}
	if path.ContentSequence[0].Difficulty != catalog.DifficultyIntermediate {
		t.Errorf("first unit difficulty = %q", path.ContentSequence[0].Difficulty)
	}
}

func TestGenerateStylePreferencePartition(t *testing.T) {
	g := New(nil)

	tests := []struct {
		style     learner.LearningStyle
		firstType catalog.ContentType
	}{
		{learner.StyleVisual, catalog.TypeActivity},
		{learner.StyleKinesthetic, catalog.TypeActivity},
		{learner.StyleAuditory, catalog.TypeText},
		{learner.StyleReadWrite, catalog.TypeText},
		{learner.LearningStyle("unknown"), catalog.TypeText},
	}

	for _, tt := range tests {
		path := g.Generate(profile(7, nil, tt.style), "math")
		if len(path.ContentSequence) == 0 {
			t.Fatalf("%s: empty path", tt.style)
		}
		if got := path.ContentSequence[0].ContentType; got != tt.firstType {
			t.Errorf("%s: first unit type = %q, want %q", tt.style, got, tt.firstType)
		}
		// Once a non-preferred type appears, no preferred-type unit may
		// follow it.
		crossed := false
		for _, c := range path.ContentSequence {
			if c.ContentType != tt.firstType {
				crossed = true
			} else if crossed {
				t.Errorf("%s: preferred type appears after the partition boundary", tt.style)
			}
		}
	}
}

func TestGenerateUnknownSubject(t *testing.T) {
	g := New(nil)
	path := g.Generate(profile(5, nil, learner.StyleVisual), "astronomy")

	if len(path.ContentSequence) != 0 {
		t.Errorf("unknown subject produced %d units", len(path.ContentSequence))
	}
	if path.ProgressPct != 0 {
		t.Errorf("progress = %v, want 0", path.ProgressPct)
	}
	if path.Learner.LearnerID != "learner-001" {
		t.Error("path does not embed the learner profile")
	}
}

func TestGenerateDeduplicatesByID(t *testing.T) {
	lib := catalog.NewLibrary()
	dup := catalog.Content{
		ContentID:   "math-004",
		Subject:     "math",
		Topic:       "Fractions (repeat)",
		Difficulty:  catalog.DifficultyIntermediate,
		ContentType: catalog.TypeText,
		Content:     "x",
		GradeLevel:  5,
	}
	mustAdd(t, lib, dup)
	g := New(lib)

	path := g.Generate(profile(5, nil, learner.StyleAuditory), "math")
	count := 0
	for _, c := range path.ContentSequence {
		if c.ContentID == "math-004" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("math-004 appears %d times, want 1", count)
	}
}

func mustAdd(t *testing.T, lib *catalog.Library, c catalog.Content) {
	t.Helper()
	if err := lib.Add(c); err != nil {
		t.Fatalf("Add(%q): %v", c.ContentID, err)
	}
}
