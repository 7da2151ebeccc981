package planner

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func base() *Candidate {
	return &Candidate{
		SkillID:       "s",
		UnitID:        "u",
		ActivityID:    "a",
		ActivityName:  "Activity",
		Level:         1,
		NextReviewAt:  t0,
		Due:           true,
		UnitOrder:     1,
		ActivityOrder: 1,
	}
}

func TestCompare_KeyByKey(t *testing.T) {
	tests := []struct {
		name string
		a, b func(*Candidate)
	}{
		{
			"due beats non-due even with later schedule",
			func(c *Candidate) { c.Due = true; c.NextReviewAt = t0 },
			func(c *Candidate) { c.Due = false; c.NextReviewAt = t0.Add(-48 * time.Hour) },
		},
		{
			"lower level beats earlier due time among due",
			func(c *Candidate) { c.Level = 0; c.NextReviewAt = t0.Add(-time.Hour) },
			func(c *Candidate) { c.Level = 1; c.NextReviewAt = t0.Add(-2 * time.Hour) },
		},
		{
			"earlier next review wins at equal level",
			func(c *Candidate) { c.NextReviewAt = t0.Add(-2 * time.Hour) },
			func(c *Candidate) { c.NextReviewAt = t0.Add(-time.Hour) },
		},
		{
			"among non-due, earlier schedule wins regardless of level",
			func(c *Candidate) { c.Due = false; c.Level = 3; c.NextReviewAt = t0.Add(time.Hour) },
			func(c *Candidate) { c.Due = false; c.Level = 0; c.NextReviewAt = t0.Add(2 * time.Hour) },
		},
		{
			"unit order breaks schedule ties",
			func(c *Candidate) { c.UnitOrder = 1 },
			func(c *Candidate) { c.UnitOrder = 2 },
		},
		{
			"activity order breaks unit ties",
			func(c *Candidate) { c.ActivityOrder = 1 },
			func(c *Candidate) { c.ActivityOrder = 2 },
		},
		{
			"name is the final tiebreak",
			func(c *Candidate) { c.ActivityName = "Alpha" },
			func(c *Candidate) { c.ActivityName = "Beta" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.a(a)
			tt.b(b)
			if got := Compare(a, b); got >= 0 {
				t.Errorf("Compare(a, b) = %d, want < 0", got)
			}
			if got := Compare(b, a); got <= 0 {
				t.Errorf("Compare(b, a) = %d, want > 0", got)
			}
		})
	}
}

func TestCompare_EqualOnlyForIdenticalKeys(t *testing.T) {
	a, b := base(), base()
	if Compare(a, b) != 0 {
		t.Error("identical candidates must compare equal")
	}

	b.ActivityName = "Other"
	if Compare(a, b) == 0 {
		t.Error("distinct names must never compare equal")
	}
}
