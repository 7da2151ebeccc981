// Package planner picks the single next activity to present, applying a
// deterministic total order over every (skill, unit, activity) candidate.
package planner

import "time"

// Candidate is one (skill, unit, activity) triple under consideration.
// It exists only for the duration of one selection call.
type Candidate struct {
	SkillID       string
	UnitID        string
	ActivityID    string
	ActivityName  string
	Level         int
	NextReviewAt  time.Time
	Due           bool
	UnitOrder     int
	ActivityOrder int
}

// compareKey compares two candidates on one dimension. Negative means a
// sorts before b ("wins"), zero defers to the next key.
type compareKey func(a, b *Candidate) int

// compareKeys is the comparator as an explicit ordered key list, applied
// lexicographically. The level key is gated on both candidates being
// due: among non-due candidates only the schedule time matters.
var compareKeys = []compareKey{
	byDueFirst,
	byLevelAmongDue,
	byNextReviewAt,
	byUnitOrder,
	byActivityOrder,
	byActivityName,
}

// Compare applies the ordered key list. It is a strict total order for
// candidates with distinct activity names.
func Compare(a, b *Candidate) int {
	for _, key := range compareKeys {
		if c := key(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// byDueFirst sorts due candidates before non-due ones.
func byDueFirst(a, b *Candidate) int {
	switch {
	case a.Due == b.Due:
		return 0
	case a.Due:
		return -1
	default:
		return 1
	}
}

// byLevelAmongDue prioritizes the weaker item: lower level wins, but
// only when both candidates are due.
func byLevelAmongDue(a, b *Candidate) int {
	if !a.Due || !b.Due {
		return 0
	}
	return compareInt(a.Level, b.Level)
}

// byNextReviewAt prefers the item that has been waiting longest.
func byNextReviewAt(a, b *Candidate) int {
	switch {
	case a.NextReviewAt.Before(b.NextReviewAt):
		return -1
	case b.NextReviewAt.Before(a.NextReviewAt):
		return 1
	default:
		return 0
	}
}

func byUnitOrder(a, b *Candidate) int {
	return compareInt(a.UnitOrder, b.UnitOrder)
}

func byActivityOrder(a, b *Candidate) int {
	return compareInt(a.ActivityOrder, b.ActivityOrder)
}

// byActivityName is the final tiebreak, guaranteeing a deterministic
// pick even with identical scheduling metadata.
func byActivityName(a, b *Candidate) int {
	switch {
	case a.ActivityName < b.ActivityName:
		return -1
	case a.ActivityName > b.ActivityName:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
