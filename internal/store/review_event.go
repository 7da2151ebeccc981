package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunmb/cadence/ent"
	"github.com/arjunmb/cadence/ent/reviewevent"
)

// reviewEventRepo implements ReviewEventRepo using the ent client.
type reviewEventRepo struct {
	client *ent.Client
}

func (r *reviewEventRepo) Append(ctx context.Context, data ReviewEventData) error {
	_, err := r.client.ReviewEvent.Create().
		SetAttemptID(data.AttemptID).
		SetLearnerID(data.LearnerID).
		SetSkillID(data.SkillID).
		SetActivityID(data.ActivityID).
		SetGrade(data.Grade).
		SetCorrect(data.Correct).
		SetNillableScore(data.Score).
		SetOccurredAt(data.OccurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append review event %s: %w", data.AttemptID, err)
	}
	return nil
}

func (r *reviewEventRepo) LatestAttemptTime(ctx context.Context, learnerID, skillID string) (time.Time, error) {
	row, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.LearnerID(learnerID),
			reviewevent.SkillID(skillID),
		).
		Order(ent.Desc(reviewevent.FieldOccurredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest attempt for %s/%s: %w", learnerID, skillID, err)
	}
	return row.OccurredAt, nil
}
