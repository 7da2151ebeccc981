package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunmb/cadence/internal/levels"
	"github.com/arjunmb/cadence/internal/memory"
	"github.com/arjunmb/cadence/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSkillStateRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillStates()
	ctx := context.Background()

	// Absent rows read back as nil, nil: first-time default, not an error.
	got, err := repo.Get(ctx, "learner-1", "skill-1")
	require.NoError(t, err)
	require.Nil(t, got)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	score := 0.85
	rec := NewSkillStateRecord("learner-1", "skill-1")
	rec.Status = progress.StatusInProgress
	rec.Progress = 0.42
	rec.MasteryScore = &score
	rec.Card.Reps = 1
	rec.Card.LastReviewedAt = &now
	rec.Activities["act-1"] = levels.State{
		Level:              1,
		NextReviewAt:       now.Add(time.Hour),
		LastAttemptAt:      now,
		ConsecutiveCorrect: 2,
	}

	require.NoError(t, repo.Save(ctx, rec))
	assert.NotZero(t, rec.ID)
	assert.EqualValues(t, 1, rec.Version)

	got, err = repo.Get(ctx, "learner-1", "skill-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, progress.StatusInProgress, got.Status)
	assert.Equal(t, 0.42, got.Progress)
	require.NotNil(t, got.MasteryScore)
	assert.Equal(t, 0.85, *got.MasteryScore)
	assert.Equal(t, 1, got.Card.Reps)
	require.NotNil(t, got.Card.LastReviewedAt)
	assert.True(t, got.Card.LastReviewedAt.Equal(now))

	act, ok := got.Activities["act-1"]
	require.True(t, ok, "activity state survived the JSON round trip")
	assert.Equal(t, 1, act.Level)
	assert.Equal(t, 2, act.ConsecutiveCorrect)
	assert.True(t, act.NextReviewAt.Equal(now.Add(time.Hour)))
}

func TestSkillStateRepo_VersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillStates()
	ctx := context.Background()

	rec := NewSkillStateRecord("learner-1", "skill-1")
	require.NoError(t, repo.Save(ctx, rec))

	// Two readers pick up version 1.
	first, err := repo.Get(ctx, "learner-1", "skill-1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "learner-1", "skill-1")
	require.NoError(t, err)

	first.Progress = 0.5
	require.NoError(t, repo.Save(ctx, first))
	assert.EqualValues(t, 2, first.Version)

	// The stale writer must be rejected, not silently dropped.
	second.Progress = 0.9
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestSkillStateRepo_RejectsInvalidRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillStates()
	ctx := context.Background()

	rec := NewSkillStateRecord("learner-1", "skill-1")
	rec.Card.Stability = 0
	assert.Error(t, repo.Save(ctx, rec))

	rec = NewSkillStateRecord("learner-1", "skill-1")
	rec.Activities["act"] = levels.State{Level: 7}
	assert.Error(t, repo.Save(ctx, rec))
}

func TestSkillStateRepo_ListAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillStates()
	ctx := context.Background()

	for _, skillID := range []string{"skill-b", "skill-a"} {
		require.NoError(t, repo.Save(ctx, NewSkillStateRecord("learner-1", skillID)))
	}
	require.NoError(t, repo.Save(ctx, NewSkillStateRecord("learner-2", "skill-a")))

	list, err := repo.ListByLearner(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "skill-a", list[0].SkillID, "listed in skill order")

	n, err := repo.DeleteByLearner(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err = repo.ListByLearner(ctx, "learner-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewEventRepo_AppendAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewEvents()
	ctx := context.Background()

	latest, err := repo.LatestAttemptTime(ctx, "learner-1", "skill-1")
	require.NoError(t, err)
	assert.True(t, latest.IsZero())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, attempt := range []string{"attempt-1", "attempt-2"} {
		err := repo.Append(ctx, ReviewEventData{
			AttemptID:  attempt,
			LearnerID:  "learner-1",
			SkillID:    "skill-1",
			ActivityID: "act-1",
			Grade:      memory.Good.String(),
			Correct:    true,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	latest, err = repo.LatestAttemptTime(ctx, "learner-1", "skill-1")
	require.NoError(t, err)
	assert.True(t, latest.Equal(base.Add(time.Minute)))
}
