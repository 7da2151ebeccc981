// Package progress derives a coarse skill status and a progress fraction
// from the memory-model card state and the latest observed score.
package progress

import "github.com/arjunmb/cadence/internal/memory"

// Status is a skill's position in the learning lifecycle.
type Status string

const (
	StatusNotStarted    Status = "not_started"
	StatusInProgress    Status = "in_progress"
	StatusMastered      Status = "mastered"
	StatusReviewNeeded  Status = "review_needed"
	StatusForgotten     Status = "forgotten"
	StatusStrengthening Status = "strengthening"
)

// Valid reports whether s is a known status. Used when decoding
// persisted rows at the storage boundary.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusMastered,
		StatusReviewNeeded, StatusForgotten, StatusStrengthening:
		return true
	}
	return false
}

// DetermineStatus evaluates the status rules in order; the first match
// wins. Several conditions overlap (a lapsed card can have low
// retrievability too), so the rule order is load-bearing: reordering
// changes which status wins for borderline cards.
func DetermineStatus(card memory.CardState, score *float64) Status {
	switch {
	case card.Reps == 0:
		return StatusNotStarted

	case score != nil && *score >= 0.9 && card.Retrievability >= 0.8 && card.Reps >= 3:
		return StatusMastered

	case score != nil && (*score < 0.5 || card.Retrievability < 0.4):
		if card.Lapses > 2 {
			return StatusForgotten
		}
		return StatusReviewNeeded

	case card.Retrievability < 0.7 && card.Reps >= 2:
		return StatusReviewNeeded

	case card.Lapses > 0 && card.Retrievability > 0.6:
		return StatusStrengthening

	default:
		return StatusInProgress
	}
}
