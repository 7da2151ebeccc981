// Package memory implements the continuous memory model for skills:
// stability, difficulty, and retrievability per card, with a
// four-outcome review transition derived from the FSRS family of
// algorithms.
package memory

import (
	"math"
	"time"
)

// minStability is the floor applied to stability by every review branch.
const minStability = 0.1

// Engine computes review transitions for card states. It is a pure
// function library over explicit inputs: the caller supplies now, so
// every computation is deterministic.
type Engine struct {
	w              [19]float64
	retention      float64
	maxInterval    float64
	intervalFactor float64 // ln(retention)/ln(0.9), precomputed
}

// NewEngine creates an Engine from the given parameters. Zero-value
// fields are filled with defaults; invalid values return an error.
func NewEngine(p Params) (*Engine, error) {
	if p.Weights == ([19]float64{}) {
		p.Weights = DefaultWeights
	}
	if p.RequestRetention == 0 {
		p.RequestRetention = DefaultRequestRetention
	}
	if p.MaximumInterval == 0 {
		p.MaximumInterval = DefaultMaximumInterval
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		w:              p.Weights,
		retention:      p.RequestRetention,
		maxInterval:    p.MaximumInterval,
		intervalFactor: math.Log(p.RequestRetention) / math.Log(0.9),
	}, nil
}

// Review applies one graded review at now and returns the updated card.
// The input card is not mutated.
func (e *Engine) Review(card CardState, grade Grade, now time.Time) CardState {
	c := card

	// Retrievability decays exponentially from the previous review,
	// anchored so that exactly Stability days later it is 0.9. A card
	// that was never reviewed keeps its stored value.
	if c.LastReviewedAt != nil {
		c.Retrievability = forgettingCurve(elapsedDays(*c.LastReviewedAt, now), c.Stability)
	}

	firstReview := c.Reps == 0
	c.Reps++
	reviewedAt := now
	c.LastReviewedAt = &reviewedAt

	// All branch formulas read the pre-update values.
	s, d, r := card.Stability, card.Difficulty, c.Retrievability

	switch grade {
	case Again:
		c.Stability = floorStability(e.lapseStability(d, s, r))
		c.Difficulty = clampDifficulty(d + e.w[6])
		c.Lapses++
	case Hard:
		c.Stability = floorStability(e.hardStability(d, s, r))
		c.Difficulty = clampDifficulty(d + e.w[7])
	case Good:
		if firstReview {
			c.Stability = floorStability(e.w[0] + e.w[1]*d)
			c.Difficulty = clampDifficulty(d - e.w[6])
		} else {
			c.Stability = floorStability(e.recallStability(d, s, r, 1.0))
			c.Difficulty = clampDifficulty(d - e.w[6]/2)
		}
	case Easy:
		if firstReview {
			c.Stability = floorStability(e.w[2] + e.w[3]*d)
		} else {
			c.Stability = floorStability(e.recallStability(d, s, r, e.w[18]))
		}
		c.Difficulty = clampDifficulty(d - e.w[6])
	}

	next := now.Add(e.interval(c.Stability))
	c.NextReviewAt = &next
	return c
}

// Retrievability returns the modeled recall probability for the card at
// now without recording a review.
func (e *Engine) Retrievability(card CardState, now time.Time) float64 {
	if card.LastReviewedAt == nil {
		return card.Retrievability
	}
	return forgettingCurve(elapsedDays(*card.LastReviewedAt, now), card.Stability)
}

// interval converts stability into the scheduling interval, capped at
// the maximum. With the default 0.9 retention the interval equals the
// stability in days.
func (e *Engine) interval(stability float64) time.Duration {
	days := stability * e.intervalFactor
	if days > e.maxInterval {
		days = e.maxInterval
	}
	return time.Duration(days * 24 * float64(time.Hour))
}

// lapseStability computes post-lapse stability from w[11..14].
// S' = w11 · (D+1)^(−w12) · ((S+1)^w13 − 1) · e^((1−R)·w14)
func (e *Engine) lapseStability(d, s, r float64) float64 {
	return e.w[11] *
		math.Pow(d+1, -e.w[12]) *
		(math.Pow(s+1, e.w[13]) - 1) *
		math.Exp((1-r)*e.w[14])
}

// hardStability grows stability multiplicatively from w[15..17].
// S' = S · (1 + e^w15 · (11−D) · S^(−w16) · (e^((1−R)·w17) − 1))
func (e *Engine) hardStability(d, s, r float64) float64 {
	return s * (1 + math.Exp(e.w[15])*
		(11-d)*
		math.Pow(s, -e.w[16])*
		(math.Exp((1-r)*e.w[17])-1))
}

// recallStability grows stability after good/easy from w[8..10]; easy
// passes the extra w[18] scale, good passes 1.
// S' = S · (1 + scale · e^w8 · (11−D) · S^(−w9) · (e^((1−R)·w10) − 1))
func (e *Engine) recallStability(d, s, r, scale float64) float64 {
	return s * (1 + scale*math.Exp(e.w[8])*
		(11-d)*
		math.Pow(s, -e.w[9])*
		(math.Exp((1-r)*e.w[10])-1))
}

// elapsedDays returns the non-negative fractional days between from and now.
func elapsedDays(from, now time.Time) float64 {
	days := now.Sub(from).Hours() / 24.0
	if days < 0 {
		return 0
	}
	return days
}

// forgettingCurve computes R(t, S) = 0.9^(t/S).
func forgettingCurve(days, stability float64) float64 {
	return math.Pow(0.9, days/stability)
}

func floorStability(s float64) float64 {
	return math.Max(s, minStability)
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
