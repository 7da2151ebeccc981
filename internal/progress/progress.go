package progress

import "github.com/arjunmb/cadence/internal/memory"

// Calculate returns a progress fraction in [0, 1] for the card, blending
// retrievability with review depth, the latest score when available, and
// a lapse penalty.
func Calculate(card memory.CardState, score *float64) float64 {
	repFactor := float64(card.Reps) / 10.0
	if repFactor > 1 {
		repFactor = 1
	}

	base := card.Retrievability*0.7 + repFactor*0.3
	if base > 0.9 {
		base = 0.9
	}

	p := base
	if score != nil {
		p = base*0.7 + *score*0.3
	}

	if card.Lapses > 0 {
		penalty := 1 - float64(card.Lapses)*0.1
		if penalty < 0.5 {
			penalty = 0.5
		}
		p *= penalty
	}

	return clamp01(p)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
