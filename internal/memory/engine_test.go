package memory

import (
	"math"
	"testing"
	"time"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultParams())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewCard_Defaults(t *testing.T) {
	c := NewCard()
	if c.Stability != 2.5 {
		t.Errorf("Stability = %v, want 2.5", c.Stability)
	}
	if c.Difficulty != 0 {
		t.Errorf("Difficulty = %v, want 0", c.Difficulty)
	}
	if c.Retrievability != 0.9 {
		t.Errorf("Retrievability = %v, want 0.9", c.Retrievability)
	}
	if c.Lapses != 0 || c.Reps != 0 {
		t.Errorf("Lapses/Reps = %d/%d, want 0/0", c.Lapses, c.Reps)
	}
	if c.LastReviewedAt != nil || c.NextReviewAt != nil {
		t.Error("expected unset review timestamps")
	}
	if !c.IsDue(t0) {
		t.Error("new card must be due")
	}
}

func TestNewEngine_RejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative weight", func(p *Params) { p.Weights[3] = -1 }},
		{"retention above one", func(p *Params) { p.RequestRetention = 1.5 }},
		{"negative max interval", func(p *Params) { p.MaximumInterval = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if _, err := NewEngine(p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// Every grade must preserve the core invariants from any reviewed state.
func TestReview_Invariants(t *testing.T) {
	e := testEngine(t)
	grades := []Grade{Again, Hard, Good, Easy}

	for _, g := range grades {
		t.Run(g.String(), func(t *testing.T) {
			card := NewCard()
			now := t0
			for i := 0; i < 10; i++ {
				card = e.Review(card, g, now)
				if card.Stability <= 0 {
					t.Fatalf("review %d: Stability = %v, want > 0", i, card.Stability)
				}
				if card.Difficulty < 1 || card.Difficulty > 10 {
					t.Fatalf("review %d: Difficulty = %v, want in [1, 10]", i, card.Difficulty)
				}
				if card.Retrievability < 0 || card.Retrievability > 1 {
					t.Fatalf("review %d: Retrievability = %v, want in [0, 1]", i, card.Retrievability)
				}
				if card.Reps != i+1 {
					t.Fatalf("review %d: Reps = %d, want %d", i, card.Reps, i+1)
				}
				if !card.NextReviewAt.After(*card.LastReviewedAt) {
					t.Fatalf("review %d: NextReviewAt %v not after LastReviewedAt %v",
						i, card.NextReviewAt, card.LastReviewedAt)
				}
				now = *card.NextReviewAt
			}
		})
	}
}

func TestReview_FirstGood_UsesInitialStabilityFormula(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Good, t0)

	// Difficulty starts at 0, so first-review stability is exactly w[0].
	if card.Stability != DefaultWeights[0] {
		t.Errorf("Stability = %v, want w[0] = %v", card.Stability, DefaultWeights[0])
	}
	if card.Reps != 1 || card.Lapses != 0 {
		t.Errorf("Reps/Lapses = %d/%d, want 1/0", card.Reps, card.Lapses)
	}
	// Difficulty 0 - w[6] clamps up to 1.
	if card.Difficulty != 1 {
		t.Errorf("Difficulty = %v, want 1", card.Difficulty)
	}
	if !card.NextReviewAt.After(t0) {
		t.Errorf("NextReviewAt = %v, want after %v", card.NextReviewAt, t0)
	}
}

func TestReview_FirstEasy_UsesInitialStabilityFormula(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Easy, t0)
	if card.Stability != DefaultWeights[2] {
		t.Errorf("Stability = %v, want w[2] = %v", card.Stability, DefaultWeights[2])
	}
}

func TestReview_Again_IncrementsLapsesAndDifficulty(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Good, t0)
	card = e.Review(card, Good, t0.AddDate(0, 0, 1))

	before := card
	card = e.Review(card, Again, t0.AddDate(0, 0, 3))

	if card.Lapses != before.Lapses+1 {
		t.Errorf("Lapses = %d, want %d", card.Lapses, before.Lapses+1)
	}
	wantD := clampDifficulty(before.Difficulty + DefaultWeights[6])
	if math.Abs(card.Difficulty-wantD) > 1e-12 {
		t.Errorf("Difficulty = %v, want %v", card.Difficulty, wantD)
	}
	if card.Difficulty < before.Difficulty {
		t.Errorf("again must not decrease difficulty: %v -> %v", before.Difficulty, card.Difficulty)
	}
}

func TestReview_RepeatedEasy_StrictlyIncreasesStability(t *testing.T) {
	e := testEngine(t)
	card := NewCard()
	now := t0
	prev := card.Stability

	for i := 0; i < 5; i++ {
		card = e.Review(card, Easy, now)
		if card.Stability <= prev {
			t.Fatalf("review %d: Stability %v did not increase from %v", i+1, card.Stability, prev)
		}
		prev = card.Stability
		now = *card.NextReviewAt
	}
}

func TestReview_RecomputesRetrievabilityFromElapsedTime(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Good, t0)

	// Exactly Stability days later the forgetting curve crosses 0.9.
	wait := time.Duration(card.Stability * 24 * float64(time.Hour))
	next := e.Review(card, Good, t0.Add(wait))
	if math.Abs(next.Retrievability-0.9) > 1e-9 {
		t.Errorf("Retrievability = %v, want 0.9", next.Retrievability)
	}

	// A first-ever review keeps the stored retrievability.
	first := e.Review(NewCard(), Hard, t0)
	if first.Retrievability != 0.9 {
		t.Errorf("first review Retrievability = %v, want stored 0.9", first.Retrievability)
	}
}

func TestReview_ClockSkewTreatedAsZeroElapsed(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Good, t0)

	// Review timestamped before the last review: elapsed clamps to 0,
	// so retrievability is 0.9^0 = 1.
	next := e.Review(card, Good, t0.Add(-time.Hour))
	if next.Retrievability != 1 {
		t.Errorf("Retrievability = %v, want 1", next.Retrievability)
	}
}

func TestReview_IntervalProportionalToStability(t *testing.T) {
	e := testEngine(t)
	card := e.Review(NewCard(), Good, t0)

	// Default retention 0.9 makes the interval equal the stability in days.
	wantNext := t0.Add(time.Duration(card.Stability * 24 * float64(time.Hour)))
	if !card.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", card.NextReviewAt, wantNext)
	}
}

func TestReview_IntervalCappedAtMaximum(t *testing.T) {
	p := DefaultParams()
	p.MaximumInterval = 2 // days
	e, err := NewEngine(p)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	card := e.Review(NewCard(), Easy, t0) // stability w[2] ≈ 3.13 days
	wantNext := t0.Add(48 * time.Hour)
	if !card.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want capped %v", card.NextReviewAt, wantNext)
	}
}

func TestReview_DoesNotMutateInput(t *testing.T) {
	e := testEngine(t)
	card := NewCard()
	_ = e.Review(card, Again, t0)

	if card.Reps != 0 || card.Lapses != 0 || card.LastReviewedAt != nil {
		t.Errorf("input card mutated: %+v", card)
	}
}

func TestParseGrade(t *testing.T) {
	for _, g := range []Grade{Again, Hard, Good, Easy} {
		got, err := ParseGrade(g.String())
		if err != nil {
			t.Fatalf("ParseGrade(%q): %v", g.String(), err)
		}
		if got != g {
			t.Errorf("ParseGrade(%q) = %v, want %v", g.String(), got, g)
		}
	}
	if _, err := ParseGrade("meh"); err == nil {
		t.Error("expected error for unknown grade")
	}
}
