package progress

import (
	"testing"

	"github.com/arjunmb/cadence/internal/memory"
)

func card(reps, lapses int, retrievability float64) memory.CardState {
	c := memory.NewCard()
	c.Reps = reps
	c.Lapses = lapses
	c.Retrievability = retrievability
	return c
}

func score(v float64) *float64 { return &v }

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name  string
		card  memory.CardState
		score *float64
		want  Status
	}{
		{"never reviewed", card(0, 0, 0.9), nil, StatusNotStarted},
		{"never reviewed ignores score", card(0, 0, 0.95), score(1.0), StatusNotStarted},
		{"mastered", card(3, 0, 0.85), score(0.95), StatusMastered},
		{"high score but too few reps", card(2, 0, 0.85), score(0.95), StatusInProgress},
		{"high score but low retrievability", card(3, 0, 0.75), score(0.95), StatusInProgress},
		{"low score few lapses", card(4, 1, 0.8), score(0.3), StatusReviewNeeded},
		{"low score many lapses", card(4, 3, 0.8), score(0.3), StatusForgotten},
		{"low retrievability with score", card(4, 3, 0.35), score(0.8), StatusForgotten},
		{"decayed without score", card(2, 0, 0.5), nil, StatusReviewNeeded},
		{"decayed single rep", card(1, 0, 0.5), nil, StatusInProgress},
		{"lapsed but recovered", card(1, 1, 0.75), nil, StatusStrengthening},
		{"steady", card(1, 0, 0.9), nil, StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineStatus(tt.card, tt.score); got != tt.want {
				t.Errorf("DetermineStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A borderline card can match both the low-retrievability and the lapse
// rules; the earlier rule must win.
func TestDetermineStatus_RulePrecedence(t *testing.T) {
	// Retrievability 0.65 with reps >= 2: rule 4 fires before the
	// strengthening rule even though lapses > 0 and 0.65 > 0.6.
	c := card(3, 1, 0.65)
	if got := DetermineStatus(c, nil); got != StatusReviewNeeded {
		t.Errorf("DetermineStatus() = %v, want %v", got, StatusReviewNeeded)
	}

	// A provided low score outranks the no-score decay rule.
	c = card(3, 0, 0.65)
	if got := DetermineStatus(c, score(0.4)); got != StatusReviewNeeded {
		t.Errorf("DetermineStatus() = %v, want %v", got, StatusReviewNeeded)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{
		StatusNotStarted, StatusInProgress, StatusMastered,
		StatusReviewNeeded, StatusForgotten, StatusStrengthening,
	} {
		if !s.Valid() {
			t.Errorf("%v reported invalid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("unknown status reported valid")
	}
}
