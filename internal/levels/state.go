package levels

import "time"

// State holds the repetition state for one learner-skill-activity triple.
// The zero NextReviewAt means immediately due; the zero LastAttemptAt
// means never attempted.
type State struct {
	Level              int       `json:"level"`
	NextReviewAt       time.Time `json:"next_review_at"`
	LastAttemptAt      time.Time `json:"last_attempt_at"`
	ConsecutiveCorrect int       `json:"consecutive_correct"`
}

// Default returns the state for an activity that was never attempted:
// level 0 and immediately due.
func Default() State {
	return State{}
}

// promotionThreshold is the consecutive-correct count required to leave
// level 0. Higher levels promote on a single correct answer.
const promotionThreshold = 2

// Update applies one attempt outcome and returns the new state. The
// input state is not mutated.
//
// Correct answers increment the consecutive-correct count; leaving level
// 0 requires two in a row, every later level promotes on one. Incorrect
// answers reset the count and demote one level.
func Update(prior State, correct bool, now time.Time) State {
	next := prior

	if correct {
		next.ConsecutiveCorrect++
		switch {
		case next.Level == 0 && next.ConsecutiveCorrect >= promotionThreshold:
			next.Level = 1
		case next.Level > 0 && next.Level < MaxLevel:
			next.Level++
		}
	} else {
		next.ConsecutiveCorrect = 0
		if next.Level > 0 {
			next.Level--
		}
	}

	next.NextReviewAt = NextReview(next.Level, now)
	next.LastAttemptAt = now
	return next
}
