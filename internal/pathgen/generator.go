package pathgen

import (
	"sort"

	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/learner"
)

// stylePreference maps a learning style to the content type served first.
var stylePreference = map[learner.LearningStyle]catalog.ContentType{
	learner.StyleVisual:      catalog.TypeActivity,
	learner.StyleAuditory:    catalog.TypeText,
	learner.StyleKinesthetic: catalog.TypeActivity,
	learner.StyleReadWrite:   catalog.TypeText,
}

// Generator builds personalised learning paths from a content library.
type Generator struct {
	lib *catalog.Library
}

// New creates a Generator backed by the given library. A nil library gets a
// fresh one seeded with the built-in content.
func New(lib *catalog.Library) *Generator {
	if lib == nil {
		lib = catalog.NewLibrary()
	}
	return &Generator{lib: lib}
}

// Library returns the content library backing this generator.
func (g *Generator) Library() *catalog.Library {
	return g.lib
}

// Generate builds a learning path for the learner and subject. An unknown
// subject yields a path with an empty sequence, never an error.
func (g *Generator) Generate(p learner.Profile, subject string) Path {
	allContent := g.lib.Search(subject, catalog.SearchFilter{})

	// Keep content within one grade of the learner, falling back to the
	// full subject result set when the window is empty.
	lo, hi := gradeWindow(p.Grade)
	var filtered []catalog.Content
	for _, c := range allContent {
		if c.GradeLevel >= lo && c.GradeLevel <= hi {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = allContent
	}

	// A weak subject starts at beginner difficulty, otherwise intermediate.
	target := catalog.DifficultyIntermediate
	if p.IsWeakIn(subject) {
		target = catalog.DifficultyBeginner
	}
	targetRank := target.Rank()

	// Order by distance from the target difficulty, then by grade.
	sort.SliceStable(filtered, func(i, j int) bool {
		di := absInt(filtered[i].Difficulty.Rank() - targetRank)
		dj := absInt(filtered[j].Difficulty.Rank() - targetRank)
		if di != dj {
			return di < dj
		}
		return filtered[i].GradeLevel < filtered[j].GradeLevel
	})

	// Stable partition: preferred content type first, everything else after,
	// both halves keeping the order established above.
	preferredType, ok := stylePreference[p.LearningStyle]
	if !ok {
		preferredType = catalog.TypeText
	}
	var preferred, others []catalog.Content
	for _, c := range filtered {
		if c.ContentType == preferredType {
			preferred = append(preferred, c)
		} else {
			others = append(others, c)
		}
	}

	// Deduplicate by content ID, keeping first occurrence.
	seen := make(map[string]bool)
	var sequence []catalog.Content
	for _, c := range append(preferred, others...) {
		if seen[c.ContentID] {
			continue
		}
		seen[c.ContentID] = true
		sequence = append(sequence, c)
	}

	return Path{
		Learner:         p,
		ContentSequence: sequence,
		ProgressPct:     0.0,
	}
}

// gradeWindow returns the inclusive grade range [grade-1, grade+1] clamped
// to [1, 12].
func gradeWindow(grade int) (lo, hi int) {
	lo = grade - 1
	if lo < 1 {
		lo = 1
	}
	hi = grade + 1
	if hi > 12 {
		hi = 12
	}
	return lo, hi
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
