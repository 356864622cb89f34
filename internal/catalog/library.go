package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Library stores learning content and serves filtered, sorted queries.
// It always starts with the built-in NCF-aligned content table; callers may
// add custom units on top. Safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	contents []Content
}

// NewLibrary creates a Library seeded with the built-in content.
func NewLibrary() *Library {
	contents := make([]Content, len(builtinContent))
	copy(contents, builtinContent)
	return &Library{contents: contents}
}

// Add appends a validated content unit to the library. Duplicate content IDs
// are permitted; both units survive.
func (l *Library) Add(c Content) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.contents = append(l.contents, c)
	return nil
}

// SearchFilter restricts a Search beyond the subject match. Zero values
// leave the corresponding dimension unfiltered.
type SearchFilter struct {
	Difficulty Difficulty
	Grade      int
}

// Search returns every unit whose subject matches case-insensitively,
// narrowed by any filter fields that are set. Results are ordered by grade
// level ascending, ties broken by the difficulty label in plain string
// order (advanced < beginner < intermediate). An unknown subject yields an
// empty slice.
func (l *Library) Search(subject string, filter SearchFilter) []Content {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var results []Content
	for _, c := range l.contents {
		if !strings.EqualFold(c.Subject, subject) {
			continue
		}
		if filter.Difficulty != "" && c.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Grade != 0 && c.GradeLevel != filter.Grade {
			continue
		}
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].GradeLevel != results[j].GradeLevel {
			return results[i].GradeLevel < results[j].GradeLevel
		}
		return results[i].Difficulty < results[j].Difficulty
	})

	return results
}

// AllSubjects returns the distinct subject names in the library, sorted.
func (l *Library) AllSubjects() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var subjects []string
	for _, c := range l.contents {
		if !seen[c.Subject] {
			seen[c.Subject] = true
			subjects = append(subjects, c.Subject)
		}
	}
	sort.Strings(subjects)
	return subjects
}

// AllContent returns a copy of the full collection in insertion order.
func (l *Library) AllContent() []Content {
	l.mu.RLock()
	defer l.mu.RUnlock()

	contents := make([]Content, len(l.contents))
	copy(contents, l.contents)
	return contents
}

// ByID returns the first unit with the given content ID, or false if none
// exists.
func (l *Library) ByID(id string) (Content, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, c := range l.contents {
		if c.ContentID == id {
			return c, true
		}
	}
	return Content{}, false
}

// Len returns the number of units in the library.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.contents)
}
