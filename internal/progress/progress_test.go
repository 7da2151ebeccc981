package progress

import (
	"math"
	"testing"
)

func TestCalculate_Bounds(t *testing.T) {
	for reps := 0; reps <= 20; reps += 5 {
		for lapses := 0; lapses <= 10; lapses += 2 {
			for r := 0.0; r <= 1.0; r += 0.25 {
				for _, s := range []*float64{nil, score(0), score(0.5), score(1)} {
					p := Calculate(card(reps, lapses, r), s)
					if p < 0 || p > 1 {
						t.Fatalf("Calculate(reps=%d lapses=%d r=%v) = %v, out of [0,1]",
							reps, lapses, r, p)
					}
				}
			}
		}
	}
}

func TestCalculate_NonDecreasingInRetrievability(t *testing.T) {
	prev := -1.0
	for r := 0.0; r <= 1.0; r += 0.05 {
		p := Calculate(card(4, 1, r), score(0.7))
		if p < prev {
			t.Fatalf("progress decreased at retrievability %v: %v < %v", r, p, prev)
		}
		prev = p
	}
}

func TestCalculate_KnownValues(t *testing.T) {
	// Base caps at 0.9 before blending.
	c := card(20, 0, 1.0)
	want := 0.9*0.7 + 1.0*0.3
	if got := Calculate(c, score(1.0)); math.Abs(got-want) > 1e-12 {
		t.Errorf("Calculate() = %v, want %v", got, want)
	}

	// Without a score, progress is the capped base.
	c = card(5, 0, 0.8)
	want = 0.8*0.7 + 0.5*0.3
	if got := Calculate(c, nil); math.Abs(got-want) > 1e-12 {
		t.Errorf("Calculate() = %v, want %v", got, want)
	}
}

func TestCalculate_LapsePenalty(t *testing.T) {
	clean := Calculate(card(5, 0, 0.8), nil)

	lapsed := Calculate(card(5, 2, 0.8), nil)
	if math.Abs(lapsed-clean*0.8) > 1e-12 {
		t.Errorf("2 lapses: got %v, want %v", lapsed, clean*0.8)
	}

	// The penalty floors at 0.5 regardless of lapse count.
	heavy := Calculate(card(5, 9, 0.8), nil)
	if math.Abs(heavy-clean*0.5) > 1e-12 {
		t.Errorf("9 lapses: got %v, want %v", heavy, clean*0.5)
	}
}
