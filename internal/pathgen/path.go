package pathgen

import (
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/learner"
)

// Path is a personalised sequence of learning content for one learner and
// subject. The content sequence carries no duplicate content IDs.
type Path struct {
	Learner         learner.Profile   `json:"learner"`
	ContentSequence []catalog.Content `json:"content_sequence"`
	ProgressPct     float64           `json:"progress_pct"`
}
