package levels

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestUpdate_Transitions(t *testing.T) {
	tests := []struct {
		name         string
		prior        State
		correct      bool
		wantLevel    int
		wantStreak   int
		wantCooldown time.Duration
	}{
		{
			name:         "first correct at level 0 stays",
			prior:        State{},
			correct:      true,
			wantLevel:    0,
			wantStreak:   1,
			wantCooldown: 0,
		},
		{
			name:         "second consecutive correct promotes to 1",
			prior:        State{Level: 0, ConsecutiveCorrect: 1},
			correct:      true,
			wantLevel:    1,
			wantStreak:   2,
			wantCooldown: time.Hour,
		},
		{
			name:         "single correct promotes from level 1",
			prior:        State{Level: 1, ConsecutiveCorrect: 2},
			correct:      true,
			wantLevel:    2,
			wantStreak:   3,
			wantCooldown: 24 * time.Hour,
		},
		{
			name:         "single correct promotes from level 2",
			prior:        State{Level: 2},
			correct:      true,
			wantLevel:    3,
			wantStreak:   1,
			wantCooldown: 7 * 24 * time.Hour,
		},
		{
			name:         "level 3 is capped",
			prior:        State{Level: 3, ConsecutiveCorrect: 5},
			correct:      true,
			wantLevel:    3,
			wantStreak:   6,
			wantCooldown: 7 * 24 * time.Hour,
		},
		{
			name:         "incorrect demotes and resets streak",
			prior:        State{Level: 2, ConsecutiveCorrect: 4},
			correct:      false,
			wantLevel:    1,
			wantStreak:   0,
			wantCooldown: time.Hour,
		},
		{
			name:         "incorrect at level 0 floors",
			prior:        State{Level: 0, ConsecutiveCorrect: 1},
			correct:      false,
			wantLevel:    0,
			wantStreak:   0,
			wantCooldown: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(tt.prior, tt.correct, t0)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.ConsecutiveCorrect != tt.wantStreak {
				t.Errorf("ConsecutiveCorrect = %d, want %d", got.ConsecutiveCorrect, tt.wantStreak)
			}
			wantNext := t0.Add(tt.wantCooldown)
			if !got.NextReviewAt.Equal(wantNext) {
				t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantNext)
			}
			if !got.LastAttemptAt.Equal(t0) {
				t.Errorf("LastAttemptAt = %v, want %v", got.LastAttemptAt, t0)
			}
		})
	}
}

func TestUpdate_TwoCorrectSequenceFromDefault(t *testing.T) {
	first := Update(Default(), true, t0)
	if first.Level != 0 || first.ConsecutiveCorrect != 1 {
		t.Fatalf("after first correct: level %d streak %d, want 0/1", first.Level, first.ConsecutiveCorrect)
	}

	second := Update(first, true, t0.Add(time.Minute))
	if second.Level != 1 {
		t.Fatalf("after second correct: level %d, want 1", second.Level)
	}
	wantNext := t0.Add(time.Minute).Add(time.Hour)
	if !second.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", second.NextReviewAt, wantNext)
	}
}

func TestIsDue_BoundaryInclusive(t *testing.T) {
	if !IsDue(t0, t0) {
		t.Error("scheduled exactly at now must be due")
	}
	if !IsDue(t0.Add(-time.Nanosecond), t0) {
		t.Error("past schedule must be due")
	}
	if IsDue(t0.Add(time.Nanosecond), t0) {
		t.Error("future schedule must not be due")
	}
}

func TestDefault_ImmediatelyDue(t *testing.T) {
	s := Default()
	if s.Level != 0 || s.ConsecutiveCorrect != 0 {
		t.Errorf("default = %+v, want level 0 with zero streak", s)
	}
	if !IsDue(s.NextReviewAt, t0) {
		t.Error("default state must be immediately due")
	}
	if !s.LastAttemptAt.IsZero() {
		t.Error("default state must carry the never-attempted sentinel")
	}
}

func TestCooldown_ClampsOutOfRange(t *testing.T) {
	if Cooldown(-1) != 0 {
		t.Error("negative level must clamp to level 0 cooldown")
	}
	if Cooldown(99) != 7*24*time.Hour {
		t.Error("oversized level must clamp to level 3 cooldown")
	}
}
