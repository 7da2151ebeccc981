// Package tracker composes the pure scheduling components — memory
// model, level scheduler, progress evaluator, and candidate selection —
// against the persistence boundary.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arjunmb/cadence/internal/catalog"
	"github.com/arjunmb/cadence/internal/levels"
	"github.com/arjunmb/cadence/internal/memory"
	"github.com/arjunmb/cadence/internal/planner"
	"github.com/arjunmb/cadence/internal/progress"
	"github.com/arjunmb/cadence/internal/store"
)

var (
	// ErrInvalidScore is returned when a score falls outside [0, 1].
	ErrInvalidScore = errors.New("tracker: score out of [0, 1]")

	// ErrMissingID is returned when a learner, skill, or activity ID is empty.
	ErrMissingID = errors.New("tracker: missing id")
)

// maxSaveRetries bounds how often a review is recomputed after losing a
// version race. The computation is pure, so replaying it against the
// fresh row is always safe.
const maxSaveRetries = 3

// Service records reviews and selects the next activity for a learner.
type Service struct {
	states store.SkillStateRepo
	events store.ReviewEventRepo
	engine *memory.Engine
}

// NewService creates a tracker service.
func NewService(states store.SkillStateRepo, events store.ReviewEventRepo, engine *memory.Engine) *Service {
	return &Service{states: states, events: events, engine: engine}
}

// ReviewOutcome reports the state written back after one graded attempt.
type ReviewOutcome struct {
	AttemptID string
	Skill     *store.SkillStateRecord
	Activity  levels.State
}

// RecordReview applies one graded attempt on an activity: the skill's
// card advances through the memory model, the activity's level state
// through the cooldown scheduler, and status/progress are re-derived.
// The result is persisted with an optimistic version check; on conflict
// the whole computation is replayed against the fresh row.
//
// A missing skill row is a first-time default, not an error. The level
// scheduler treats any grade above Again as a correct answer.
func (s *Service) RecordReview(ctx context.Context, learnerID, skillID, activityID string, grade memory.Grade, score *float64, now time.Time) (*ReviewOutcome, error) {
	if learnerID == "" || skillID == "" || activityID == "" {
		return nil, ErrMissingID
	}
	if score != nil && (*score < 0 || *score > 1) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidScore, *score)
	}

	var saveErr error
	for attempt := 0; attempt < maxSaveRetries; attempt++ {
		rec, err := s.states.Get(ctx, learnerID, skillID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			rec = store.NewSkillStateRecord(learnerID, skillID)
		}

		rec.Card = s.engine.Review(rec.Card, grade, now)

		correct := grade != memory.Again
		prior, ok := rec.Activities[activityID]
		if !ok {
			prior = levels.Default()
		}
		actState := levels.Update(prior, correct, now)
		rec.Activities[activityID] = actState

		rec.Status = progress.DetermineStatus(rec.Card, score)
		rec.Progress = progress.Calculate(rec.Card, score)
		if score != nil {
			rec.MasteryScore = score
		}

		saveErr = s.states.Save(ctx, rec)
		if errors.Is(saveErr, store.ErrVersionConflict) {
			continue
		}
		if saveErr != nil {
			return nil, saveErr
		}

		attemptID := uuid.NewString()
		err = s.events.Append(ctx, store.ReviewEventData{
			AttemptID:  attemptID,
			LearnerID:  learnerID,
			SkillID:    skillID,
			ActivityID: activityID,
			Grade:      grade.String(),
			Correct:    correct,
			Score:      score,
			OccurredAt: now,
		})
		if err != nil {
			return nil, err
		}

		return &ReviewOutcome{
			AttemptID: attemptID,
			Skill:     rec,
			Activity:  actState,
		}, nil
	}

	return nil, fmt.Errorf("record review for %s/%s: %w", learnerID, skillID, saveErr)
}

// NextActivity runs the read-only selection pass over all of the
// learner's skills. A nil candidate means no activities are available.
func (s *Service) NextActivity(ctx context.Context, learnerID string, cat *catalog.Catalog, now time.Time) (*planner.Candidate, error) {
	if learnerID == "" {
		return nil, ErrMissingID
	}

	recs, err := s.states.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	states := make(planner.ActivityStates, len(recs))
	for _, rec := range recs {
		states[rec.SkillID] = rec.Activities
	}

	return planner.SelectNext(states, cat, now), nil
}

// States returns all persisted skill states for a learner.
func (s *Service) States(ctx context.Context, learnerID string) ([]*store.SkillStateRecord, error) {
	if learnerID == "" {
		return nil, ErrMissingID
	}
	return s.states.ListByLearner(ctx, learnerID)
}

// LastAttempt returns when the learner last attempted the skill, or the
// zero time if never.
func (s *Service) LastAttempt(ctx context.Context, learnerID, skillID string) (time.Time, error) {
	return s.events.LatestAttemptTime(ctx, learnerID, skillID)
}
