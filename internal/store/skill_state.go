package store

import (
	"context"
	"fmt"

	"github.com/arjunmb/cadence/ent"
	"github.com/arjunmb/cadence/ent/skillstate"
)

// skillStateRepo implements SkillStateRepo using the ent client.
type skillStateRepo struct {
	client *ent.Client
}

func (r *skillStateRepo) Get(ctx context.Context, learnerID, skillID string) (*SkillStateRecord, error) {
	row, err := r.client.SkillState.Query().
		Where(
			skillstate.LearnerID(learnerID),
			skillstate.SkillID(skillID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query skill state %s/%s: %w", learnerID, skillID, err)
	}
	return recordFromEnt(row)
}

func (r *skillStateRepo) ListByLearner(ctx context.Context, learnerID string) ([]*SkillStateRecord, error) {
	rows, err := r.client.SkillState.Query().
		Where(skillstate.LearnerID(learnerID)).
		Order(ent.Asc(skillstate.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skill states for %s: %w", learnerID, err)
	}

	records := make([]*SkillStateRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := recordFromEnt(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *skillStateRepo) Save(ctx context.Context, rec *SkillStateRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("save skill state: %w", err)
	}
	activities, err := activitiesToMap(rec.Activities)
	if err != nil {
		return fmt.Errorf("encode activities for %s/%s: %w", rec.LearnerID, rec.SkillID, err)
	}

	if rec.ID == 0 {
		return r.create(ctx, rec, activities)
	}
	return r.update(ctx, rec, activities)
}

func (r *skillStateRepo) create(ctx context.Context, rec *SkillStateRecord, activities map[string]any) error {
	row, err := r.client.SkillState.Create().
		SetLearnerID(rec.LearnerID).
		SetSkillID(rec.SkillID).
		SetStatus(string(rec.Status)).
		SetProgress(rec.Progress).
		SetNillableMasteryScore(rec.MasteryScore).
		SetStability(rec.Card.Stability).
		SetDifficulty(rec.Card.Difficulty).
		SetRetrievability(rec.Card.Retrievability).
		SetLapses(rec.Card.Lapses).
		SetReps(rec.Card.Reps).
		SetNillableLastReviewedAt(rec.Card.LastReviewedAt).
		SetNillableNextReviewAt(rec.Card.NextReviewAt).
		SetActivities(activities).
		SetVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another writer inserted the same (learner, skill) row
			// between our read and this create.
			return ErrVersionConflict
		}
		return fmt.Errorf("create skill state %s/%s: %w", rec.LearnerID, rec.SkillID, err)
	}
	rec.ID = row.ID
	rec.Version = row.Version
	return nil
}

func (r *skillStateRepo) update(ctx context.Context, rec *SkillStateRecord, activities map[string]any) error {
	q := r.client.SkillState.Update().
		Where(
			skillstate.ID(rec.ID),
			skillstate.Version(rec.Version),
		).
		SetStatus(string(rec.Status)).
		SetProgress(rec.Progress).
		SetStability(rec.Card.Stability).
		SetDifficulty(rec.Card.Difficulty).
		SetRetrievability(rec.Card.Retrievability).
		SetLapses(rec.Card.Lapses).
		SetReps(rec.Card.Reps).
		SetActivities(activities).
		SetVersion(rec.Version + 1)

	if rec.MasteryScore != nil {
		q.SetMasteryScore(*rec.MasteryScore)
	} else {
		q.ClearMasteryScore()
	}
	if rec.Card.LastReviewedAt != nil {
		q.SetLastReviewedAt(*rec.Card.LastReviewedAt)
	} else {
		q.ClearLastReviewedAt()
	}
	if rec.Card.NextReviewAt != nil {
		q.SetNextReviewAt(*rec.Card.NextReviewAt)
	} else {
		q.ClearNextReviewAt()
	}

	n, err := q.Save(ctx)
	if err != nil {
		return fmt.Errorf("update skill state %s/%s: %w", rec.LearnerID, rec.SkillID, err)
	}
	if n == 0 {
		// The version predicate matched nothing: the row moved
		// underneath us, or was deleted.
		return ErrVersionConflict
	}
	rec.Version++
	return nil
}

func (r *skillStateRepo) DeleteByLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.SkillState.Delete().
		Where(skillstate.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete skill states for %s: %w", learnerID, err)
	}
	return n, nil
}
