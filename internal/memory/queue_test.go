package memory

import (
	"testing"
	"time"
)

// cardAt builds a reviewed card scheduled at next.
func cardAt(next time.Time, reps int) CardState {
	c := NewCard()
	c.Reps = reps
	c.NextReviewAt = &next
	return c
}

func TestDueCards(t *testing.T) {
	now := t0
	past := cardAt(now.Add(-time.Hour), 1)
	exact := cardAt(now, 1)
	future := cardAt(now.Add(time.Hour), 1)
	fresh := NewCard()

	due := DueCards([]CardState{past, exact, future, fresh}, now)
	if len(due) != 3 {
		t.Fatalf("len(due) = %d, want 3", len(due))
	}
	for _, c := range due {
		if c.NextReviewAt != nil && c.NextReviewAt.After(now) {
			t.Errorf("non-due card returned: %+v", c)
		}
	}
}

func TestStudyQueue_OrdersDueThenNew(t *testing.T) {
	now := t0
	older := cardAt(now.Add(-2*time.Hour), 3)
	newer := cardAt(now.Add(-time.Hour), 5)
	fresh := NewCard() // never scheduled, never reviewed
	pending := cardAt(now.Add(time.Hour), 1)

	queue := StudyQueue([]CardState{pending, newer, fresh, older}, now, 10)
	if len(queue) != 3 {
		t.Fatalf("len(queue) = %d, want 3", len(queue))
	}
	// Unscheduled sorts first, then ascending next-review time. The fresh
	// card is already due, so it must not be appended twice.
	if queue[0].NextReviewAt != nil {
		t.Errorf("queue[0] = %+v, want unscheduled card first", queue[0])
	}
	if !queue[1].NextReviewAt.Equal(now.Add(-2 * time.Hour)) {
		t.Errorf("queue[1].NextReviewAt = %v, want oldest due", queue[1].NextReviewAt)
	}
	if !queue[2].NextReviewAt.Equal(now.Add(-time.Hour)) {
		t.Errorf("queue[2].NextReviewAt = %v, want newer due", queue[2].NextReviewAt)
	}
}

func TestStudyQueue_AppendsNeverReviewedUpToLimit(t *testing.T) {
	now := t0
	due := cardAt(now.Add(-time.Hour), 2)
	unseen := cardAt(now.Add(time.Hour), 0) // scheduled ahead but never reviewed

	queue := StudyQueue([]CardState{due, unseen}, now, 2)
	if len(queue) != 2 {
		t.Fatalf("len(queue) = %d, want 2", len(queue))
	}
	if queue[1].Reps != 0 {
		t.Errorf("queue[1].Reps = %d, want never-reviewed card appended", queue[1].Reps)
	}

	queue = StudyQueue([]CardState{due, unseen}, now, 1)
	if len(queue) != 1 {
		t.Fatalf("len(queue) = %d, want truncated to 1", len(queue))
	}

	if got := StudyQueue([]CardState{due}, now, 0); got != nil {
		t.Errorf("limit 0 queue = %v, want nil", got)
	}
}
