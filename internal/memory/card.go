package memory

import "time"

// CardState holds the memory-model state for one learner-skill pair.
// Stability is measured in days: the time for modeled retrievability to
// decay to 0.9. Difficulty is clamped to [1, 10] by every review; the
// initial card starts below that range and enters it on first review.
type CardState struct {
	Stability      float64    `json:"stability"`
	Difficulty     float64    `json:"difficulty"`
	Retrievability float64    `json:"retrievability"`
	Lapses         int        `json:"lapses"`
	Reps           int        `json:"reps"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
}

// Initial card defaults.
const (
	initialStability      = 2.5
	initialDifficulty     = 0.0
	initialRetrievability = 0.9
)

// NewCard returns the fixed initial card state for a skill the learner
// has never reviewed.
func NewCard() CardState {
	return CardState{
		Stability:      initialStability,
		Difficulty:     initialDifficulty,
		Retrievability: initialRetrievability,
	}
}

// IsDue reports whether the card is due at now. Cards that were never
// scheduled are always due.
func (c CardState) IsDue(now time.Time) bool {
	return c.NextReviewAt == nil || !c.NextReviewAt.After(now)
}
