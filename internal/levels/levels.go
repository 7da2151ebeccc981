// Package levels implements the quantized per-activity repetition
// scheduler: four levels with fixed cooldowns, independent of the
// continuous memory model that tracks the enclosing skill.
package levels

import "time"

// MaxLevel is the highest repetition level.
const MaxLevel = 3

// cooldowns is the fixed per-level wait before an activity is due again.
var cooldowns = [MaxLevel + 1]time.Duration{
	0,                  // level 0: immediately due
	time.Hour,          // level 1
	24 * time.Hour,     // level 2
	7 * 24 * time.Hour, // level 3
}

// Cooldown returns the wait duration for a level. Levels outside
// [0, MaxLevel] are clamped; they cannot be produced by Update.
func Cooldown(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return cooldowns[level]
}

// NextReview returns the next due time for an activity at the given
// level, counted from the attempt time.
func NextReview(level int, from time.Time) time.Time {
	return from.Add(Cooldown(level))
}

// IsDue reports whether an activity scheduled at nextReviewAt is due at
// now. The boundary is inclusive: due exactly at the scheduled instant.
func IsDue(nextReviewAt, now time.Time) bool {
	return !nextReviewAt.After(now)
}
