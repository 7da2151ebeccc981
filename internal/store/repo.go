package store

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned by SkillStateRepo.Save when the row was
// modified since it was read. The caller re-reads and re-runs the pure
// scheduling computation, which is safely retriable.
var ErrVersionConflict = errors.New("store: skill state version conflict")

// SkillStateRepo manages persisted learner-skill state.
//
// Save serializes concurrent read-modify-write cycles per (learner,
// skill) with an optimistic version check. Different skills or learners
// have no ordering requirement between them.
type SkillStateRepo interface {
	// Get returns the state for one learner-skill pair, or nil if the
	// learner never engaged the skill. Absence is a first-time default,
	// not an error.
	Get(ctx context.Context, learnerID, skillID string) (*SkillStateRecord, error)

	// ListByLearner returns all skill states for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]*SkillStateRecord, error)

	// Save inserts or updates the record. Updates require the record's
	// Version to match the stored row; on mismatch it returns
	// ErrVersionConflict. The stored version is bumped on success and
	// reflected back into the record.
	Save(ctx context.Context, rec *SkillStateRecord) error

	// DeleteByLearner removes all state for a learner.
	DeleteByLearner(ctx context.Context, learnerID string) (int, error)
}

// ReviewEventData captures one graded attempt for the event log.
type ReviewEventData struct {
	AttemptID  string
	LearnerID  string
	SkillID    string
	ActivityID string
	Grade      string
	Correct    bool
	Score      *float64
	OccurredAt time.Time
}

// ReviewEventRepo provides append access to the attempt log.
type ReviewEventRepo interface {
	// Append records one attempt.
	Append(ctx context.Context, data ReviewEventData) error

	// LatestAttemptTime returns the most recent attempt instant for a
	// learner-skill pair, or the zero time if none exist.
	LatestAttemptTime(ctx context.Context, learnerID, skillID string) (time.Time, error)
}
