package memory

import (
	"sort"
	"time"
)

// DueCards returns the cards that are due at now: never scheduled, or
// scheduled at or before now.
func DueCards(cards []CardState, now time.Time) []CardState {
	var due []CardState
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	return due
}

// StudyQueue builds a review queue of at most limit cards: due cards
// sorted ascending by next review time (unscheduled first), followed by
// never-reviewed cards that are not already queued.
func StudyQueue(cards []CardState, now time.Time, limit int) []CardState {
	if limit <= 0 {
		return nil
	}

	var dueIdx []int
	queued := make(map[int]bool, len(cards))
	for i, c := range cards {
		if c.IsDue(now) {
			dueIdx = append(dueIdx, i)
			queued[i] = true
		}
	}

	sort.SliceStable(dueIdx, func(a, b int) bool {
		na, nb := cards[dueIdx[a]].NextReviewAt, cards[dueIdx[b]].NextReviewAt
		switch {
		case na == nil:
			return nb != nil
		case nb == nil:
			return false
		default:
			return na.Before(*nb)
		}
	})

	queue := make([]CardState, 0, limit)
	for _, i := range dueIdx {
		queue = append(queue, cards[i])
	}

	for i, c := range cards {
		if len(queue) >= limit {
			break
		}
		if c.Reps == 0 && !queued[i] {
			queue = append(queue, c)
		}
	}

	if len(queue) > limit {
		queue = queue[:limit]
	}
	return queue
}
