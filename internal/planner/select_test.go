package planner

import (
	"testing"
	"time"

	"github.com/arjunmb/cadence/internal/catalog"
	"github.com/arjunmb/cadence/internal/levels"
)

// twoActivityCatalog has activity A in unit 1 and activity B in unit 2
// of the same skill.
func twoActivityCatalog() *catalog.Catalog {
	return &catalog.Catalog{Skills: []catalog.Skill{
		{
			ID: "s1", Name: "Skill One",
			Units: []catalog.Unit{
				{ID: "u1", Name: "Unit One", Order: 1, Activities: []catalog.Activity{
					{ID: "act-a", Name: "Activity A", Order: 1},
				}},
				{ID: "u2", Name: "Unit Two", Order: 2, Activities: []catalog.Activity{
					{ID: "act-b", Name: "Activity B", Order: 1},
				}},
			},
		},
	}}
}

func TestSelectNext_EmptyCatalog(t *testing.T) {
	got := SelectNext(ActivityStates{}, &catalog.Catalog{}, t0)
	if got != nil {
		t.Errorf("SelectNext() = %+v, want nil for empty catalog", got)
	}
}

func TestSelectNext_MissingStateDefaultsToDueLevelZero(t *testing.T) {
	got := SelectNext(ActivityStates{}, twoActivityCatalog(), t0)
	if got == nil {
		t.Fatal("expected a candidate")
	}
	// Both default to due level 0 with the zero schedule time; unit
	// order decides.
	if got.ActivityID != "act-a" {
		t.Errorf("ActivityID = %q, want act-a", got.ActivityID)
	}
	if !got.Due || got.Level != 0 {
		t.Errorf("candidate = %+v, want due level 0", got)
	}
}

func TestSelectNext_LowerLevelBeatsEarlierDueTime(t *testing.T) {
	// A at level 0 due 1h ago, B at level 1 due 2h ago: A must win.
	states := ActivityStates{
		"s1": {
			"act-a": levels.State{Level: 0, NextReviewAt: t0.Add(-time.Hour)},
			"act-b": levels.State{Level: 1, NextReviewAt: t0.Add(-2 * time.Hour)},
		},
	}
	got := SelectNext(states, twoActivityCatalog(), t0)
	if got == nil || got.ActivityID != "act-a" {
		t.Fatalf("SelectNext() = %+v, want act-a", got)
	}
}

func TestSelectNext_NonDueFallsBackToEarliestSchedule(t *testing.T) {
	states := ActivityStates{
		"s1": {
			"act-a": levels.State{Level: 0, NextReviewAt: t0.Add(3 * time.Hour)},
			"act-b": levels.State{Level: 2, NextReviewAt: t0.Add(time.Hour)},
		},
	}
	got := SelectNext(states, twoActivityCatalog(), t0)
	if got == nil || got.ActivityID != "act-b" {
		t.Fatalf("SelectNext() = %+v, want act-b (earliest non-due)", got)
	}
	if got.Due {
		t.Error("candidate reported due")
	}
}

func TestSelectNext_Deterministic(t *testing.T) {
	states := ActivityStates{
		"s1": {
			"act-a": levels.State{Level: 1, NextReviewAt: t0.Add(-time.Hour)},
			"act-b": levels.State{Level: 1, NextReviewAt: t0.Add(-time.Hour)},
		},
	}
	first := SelectNext(states, twoActivityCatalog(), t0)
	for i := 0; i < 10; i++ {
		again := SelectNext(states, twoActivityCatalog(), t0)
		if *again != *first {
			t.Fatalf("run %d: got %+v, want %+v", i, again, first)
		}
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	states := ActivityStates{
		"s1": {"act-a": levels.State{Level: 2}},
	}
	if got := states.Resolve("s1", "act-a"); got.Level != 2 {
		t.Errorf("Resolve known = %+v", got)
	}
	if got := states.Resolve("s1", "act-x"); got != levels.Default() {
		t.Errorf("Resolve unknown activity = %+v, want default", got)
	}
	if got := states.Resolve("s9", "act-a"); got != levels.Default() {
		t.Errorf("Resolve unknown skill = %+v, want default", got)
	}
}
