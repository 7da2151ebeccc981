// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunmb/cadence/ent/predicate"
	"github.com/arjunmb/cadence/ent/skillstate"
)

// SkillStateUpdate is the builder for updating SkillState entities.
type SkillStateUpdate struct {
	config
	hooks    []Hook
	mutation *SkillStateMutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (ssu *SkillStateUpdate) Where(ps ...predicate.SkillState) *SkillStateUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetLearnerID sets the "learner_id" field.
func (ssu *SkillStateUpdate) SetLearnerID(s string) *SkillStateUpdate {
	ssu.mutation.SetLearnerID(s)
	return ssu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableLearnerID(s *string) *SkillStateUpdate {
	if s != nil {
		ssu.SetLearnerID(*s)
	}
	return ssu
}

// SetSkillID sets the "skill_id" field.
func (ssu *SkillStateUpdate) SetSkillID(s string) *SkillStateUpdate {
	ssu.mutation.SetSkillID(s)
	return ssu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableSkillID(s *string) *SkillStateUpdate {
	if s != nil {
		ssu.SetSkillID(*s)
	}
	return ssu
}

// SetStatus sets the "status" field.
func (ssu *SkillStateUpdate) SetStatus(s string) *SkillStateUpdate {
	ssu.mutation.SetStatus(s)
	return ssu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableStatus(s *string) *SkillStateUpdate {
	if s != nil {
		ssu.SetStatus(*s)
	}
	return ssu
}

// SetProgress sets the "progress" field.
func (ssu *SkillStateUpdate) SetProgress(f float64) *SkillStateUpdate {
	ssu.mutation.ResetProgress()
	ssu.mutation.SetProgress(f)
	return ssu
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableProgress(f *float64) *SkillStateUpdate {
	if f != nil {
		ssu.SetProgress(*f)
	}
	return ssu
}

// AddProgress adds f to the "progress" field.
func (ssu *SkillStateUpdate) AddProgress(f float64) *SkillStateUpdate {
	ssu.mutation.AddProgress(f)
	return ssu
}

// SetMasteryScore sets the "mastery_score" field.
func (ssu *SkillStateUpdate) SetMasteryScore(f float64) *SkillStateUpdate {
	ssu.mutation.ResetMasteryScore()
	ssu.mutation.SetMasteryScore(f)
	return ssu
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableMasteryScore(f *float64) *SkillStateUpdate {
	if f != nil {
		ssu.SetMasteryScore(*f)
	}
	return ssu
}

// AddMasteryScore adds f to the "mastery_score" field.
func (ssu *SkillStateUpdate) AddMasteryScore(f float64) *SkillStateUpdate {
	ssu.mutation.AddMasteryScore(f)
	return ssu
}

// ClearMasteryScore clears the value of the "mastery_score" field.
func (ssu *SkillStateUpdate) ClearMasteryScore() *SkillStateUpdate {
	ssu.mutation.ClearMasteryScore()
	return ssu
}

// SetStability sets the "stability" field.
func (ssu *SkillStateUpdate) SetStability(f float64) *SkillStateUpdate {
	ssu.mutation.ResetStability()
	ssu.mutation.SetStability(f)
	return ssu
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableStability(f *float64) *SkillStateUpdate {
	if f != nil {
		ssu.SetStability(*f)
	}
	return ssu
}

// AddStability adds f to the "stability" field.
func (ssu *SkillStateUpdate) AddStability(f float64) *SkillStateUpdate {
	ssu.mutation.AddStability(f)
	return ssu
}

// SetDifficulty sets the "difficulty" field.
func (ssu *SkillStateUpdate) SetDifficulty(f float64) *SkillStateUpdate {
	ssu.mutation.ResetDifficulty()
	ssu.mutation.SetDifficulty(f)
	return ssu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableDifficulty(f *float64) *SkillStateUpdate {
	if f != nil {
		ssu.SetDifficulty(*f)
	}
	return ssu
}

// AddDifficulty adds f to the "difficulty" field.
func (ssu *SkillStateUpdate) AddDifficulty(f float64) *SkillStateUpdate {
	ssu.mutation.AddDifficulty(f)
	return ssu
}

// SetRetrievability sets the "retrievability" field.
func (ssu *SkillStateUpdate) SetRetrievability(f float64) *SkillStateUpdate {
	ssu.mutation.ResetRetrievability()
	ssu.mutation.SetRetrievability(f)
	return ssu
}

// SetNillableRetrievability sets the "retrievability" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableRetrievability(f *float64) *SkillStateUpdate {
	if f != nil {
		ssu.SetRetrievability(*f)
	}
	return ssu
}

// AddRetrievability adds f to the "retrievability" field.
func (ssu *SkillStateUpdate) AddRetrievability(f float64) *SkillStateUpdate {
	ssu.mutation.AddRetrievability(f)
	return ssu
}

// SetLapses sets the "lapses" field.
func (ssu *SkillStateUpdate) SetLapses(i int) *SkillStateUpdate {
	ssu.mutation.ResetLapses()
	ssu.mutation.SetLapses(i)
	return ssu
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableLapses(i *int) *SkillStateUpdate {
	if i != nil {
		ssu.SetLapses(*i)
	}
	return ssu
}

// AddLapses adds i to the "lapses" field.
func (ssu *SkillStateUpdate) AddLapses(i int) *SkillStateUpdate {
	ssu.mutation.AddLapses(i)
	return ssu
}

// SetReps sets the "reps" field.
func (ssu *SkillStateUpdate) SetReps(i int) *SkillStateUpdate {
	ssu.mutation.ResetReps()
	ssu.mutation.SetReps(i)
	return ssu
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableReps(i *int) *SkillStateUpdate {
	if i != nil {
		ssu.SetReps(*i)
	}
	return ssu
}

// AddReps adds i to the "reps" field.
func (ssu *SkillStateUpdate) AddReps(i int) *SkillStateUpdate {
	ssu.mutation.AddReps(i)
	return ssu
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (ssu *SkillStateUpdate) SetLastReviewedAt(t time.Time) *SkillStateUpdate {
	ssu.mutation.SetLastReviewedAt(t)
	return ssu
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableLastReviewedAt(t *time.Time) *SkillStateUpdate {
	if t != nil {
		ssu.SetLastReviewedAt(*t)
	}
	return ssu
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (ssu *SkillStateUpdate) ClearLastReviewedAt() *SkillStateUpdate {
	ssu.mutation.ClearLastReviewedAt()
	return ssu
}

// SetNextReviewAt sets the "next_review_at" field.
func (ssu *SkillStateUpdate) SetNextReviewAt(t time.Time) *SkillStateUpdate {
	ssu.mutation.SetNextReviewAt(t)
	return ssu
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableNextReviewAt(t *time.Time) *SkillStateUpdate {
	if t != nil {
		ssu.SetNextReviewAt(*t)
	}
	return ssu
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (ssu *SkillStateUpdate) ClearNextReviewAt() *SkillStateUpdate {
	ssu.mutation.ClearNextReviewAt()
	return ssu
}

// SetActivities sets the "activities" field.
func (ssu *SkillStateUpdate) SetActivities(m map[string]interface{}) *SkillStateUpdate {
	ssu.mutation.SetActivities(m)
	return ssu
}

// SetVersion sets the "version" field.
func (ssu *SkillStateUpdate) SetVersion(i int64) *SkillStateUpdate {
	ssu.mutation.ResetVersion()
	ssu.mutation.SetVersion(i)
	return ssu
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (ssu *SkillStateUpdate) SetNillableVersion(i *int64) *SkillStateUpdate {
	if i != nil {
		ssu.SetVersion(*i)
	}
	return ssu
}

// AddVersion adds i to the "version" field.
func (ssu *SkillStateUpdate) AddVersion(i int64) *SkillStateUpdate {
	ssu.mutation.AddVersion(i)
	return ssu
}

// Mutation returns the SkillStateMutation object of the builder.
func (ssu *SkillStateUpdate) Mutation() *SkillStateMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *SkillStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *SkillStateUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *SkillStateUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *SkillStateUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssu *SkillStateUpdate) check() error {
	if v, ok := ssu.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.SkillID(); ok {
		if err := skillstate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill_id": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.Status(); ok {
		if err := skillstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillState.status": %w`, err)}
		}
	}
	return nil
}

func (ssu *SkillStateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ssu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.LearnerID(); ok {
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := ssu.mutation.SkillID(); ok {
		_spec.SetField(skillstate.FieldSkillID, field.TypeString, value)
	}
	if value, ok := ssu.mutation.Status(); ok {
		_spec.SetField(skillstate.FieldStatus, field.TypeString, value)
	}
	if value, ok := ssu.mutation.Progress(); ok {
		_spec.SetField(skillstate.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedProgress(); ok {
		_spec.AddField(skillstate.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if ssu.mutation.MasteryScoreCleared() {
		_spec.ClearField(skillstate.FieldMasteryScore, field.TypeFloat64)
	}
	if value, ok := ssu.mutation.Stability(); ok {
		_spec.SetField(skillstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedStability(); ok {
		_spec.AddField(skillstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.Difficulty(); ok {
		_spec.SetField(skillstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedDifficulty(); ok {
		_spec.AddField(skillstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.Retrievability(); ok {
		_spec.SetField(skillstate.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedRetrievability(); ok {
		_spec.AddField(skillstate.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.Lapses(); ok {
		_spec.SetField(skillstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.AddedLapses(); ok {
		_spec.AddField(skillstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.Reps(); ok {
		_spec.SetField(skillstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.AddedReps(); ok {
		_spec.AddField(skillstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillstate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if ssu.mutation.LastReviewedAtCleared() {
		_spec.ClearField(skillstate.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := ssu.mutation.NextReviewAt(); ok {
		_spec.SetField(skillstate.FieldNextReviewAt, field.TypeTime, value)
	}
	if ssu.mutation.NextReviewAtCleared() {
		_spec.ClearField(skillstate.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := ssu.mutation.Activities(); ok {
		_spec.SetField(skillstate.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := ssu.mutation.Version(); ok {
		_spec.SetField(skillstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := ssu.mutation.AddedVersion(); ok {
		_spec.AddField(skillstate.FieldVersion, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// SkillStateUpdateOne is the builder for updating a single SkillState entity.
type SkillStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (ssuo *SkillStateUpdateOne) SetLearnerID(s string) *SkillStateUpdateOne {
	ssuo.mutation.SetLearnerID(s)
	return ssuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableLearnerID(s *string) *SkillStateUpdateOne {
	if s != nil {
		ssuo.SetLearnerID(*s)
	}
	return ssuo
}

// SetSkillID sets the "skill_id" field.
func (ssuo *SkillStateUpdateOne) SetSkillID(s string) *SkillStateUpdateOne {
	ssuo.mutation.SetSkillID(s)
	return ssuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableSkillID(s *string) *SkillStateUpdateOne {
	if s != nil {
		ssuo.SetSkillID(*s)
	}
	return ssuo
}

// SetStatus sets the "status" field.
func (ssuo *SkillStateUpdateOne) SetStatus(s string) *SkillStateUpdateOne {
	ssuo.mutation.SetStatus(s)
	return ssuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableStatus(s *string) *SkillStateUpdateOne {
	if s != nil {
		ssuo.SetStatus(*s)
	}
	return ssuo
}

// SetProgress sets the "progress" field.
func (ssuo *SkillStateUpdateOne) SetProgress(f float64) *SkillStateUpdateOne {
	ssuo.mutation.ResetProgress()
	ssuo.mutation.SetProgress(f)
	return ssuo
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableProgress(f *float64) *SkillStateUpdateOne {
	if f != nil {
		ssuo.SetProgress(*f)
	}
	return ssuo
}

// AddProgress adds f to the "progress" field.
func (ssuo *SkillStateUpdateOne) AddProgress(f float64) *SkillStateUpdateOne {
	ssuo.mutation.AddProgress(f)
	return ssuo
}

// SetMasteryScore sets the "mastery_score" field.
func (ssuo *SkillStateUpdateOne) SetMasteryScore(f float64) *SkillStateUpdateOne {
	ssuo.mutation.ResetMasteryScore()
	ssuo.mutation.SetMasteryScore(f)
	return ssuo
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableMasteryScore(f *float64) *SkillStateUpdateOne {
	if f != nil {
		ssuo.SetMasteryScore(*f)
	}
	return ssuo
}

// AddMasteryScore adds f to the "mastery_score" field.
func (ssuo *SkillStateUpdateOne) AddMasteryScore(f float64) *SkillStateUpdateOne {
	ssuo.mutation.AddMasteryScore(f)
	return ssuo
}

// ClearMasteryScore clears the value of the "mastery_score" field.
func (ssuo *SkillStateUpdateOne) ClearMasteryScore() *SkillStateUpdateOne {
	ssuo.mutation.ClearMasteryScore()
	return ssuo
}

// SetStability sets the "stability" field.
func (ssuo *SkillStateUpdateOne) SetStability(f float64) *SkillStateUpdateOne {
	ssuo.mutation.ResetStability()
	ssuo.mutation.SetStability(f)
	return ssuo
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableStability(f *float64) *SkillStateUpdateOne {
	if f != nil {
		ssuo.SetStability(*f)
	}
	return ssuo
}

// AddStability adds f to the "stability" field.
func (ssuo *SkillStateUpdateOne) AddStability(f float64) *SkillStateUpdateOne {
	ssuo.mutation.AddStability(f)
	return ssuo
}

// SetDifficulty sets the "difficulty" field.
func (ssuo *SkillStateUpdateOne) SetDifficulty(f float64) *SkillStateUpdateOne {
	ssuo.mutation.ResetDifficulty()
	ssuo.mutation.SetDifficulty(f)
	return ssuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableDifficulty(f *float64) *SkillStateUpdateOne {
	if f != nil {
		ssuo.SetDifficulty(*f)
	}
	return ssuo
}

// AddDifficulty adds f to the "difficulty" field.
func (ssuo *SkillStateUpdateOne) AddDifficulty(f float64) *SkillStateUpdateOne {
	ssuo.mutation.AddDifficulty(f)
	return ssuo
}

// SetRetrievability sets the "retrievability" field.
func (ssuo *SkillStateUpdateOne) SetRetrievability(f float64) *SkillStateUpdateOne {
	ssuo.mutation.ResetRetrievability()
	ssuo.mutation.SetRetrievability(f)
	return ssuo
}

// SetNillableRetrievability sets the "retrievability" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableRetrievability(f *float64) *SkillStateUpdateOne {
	if f != nil {
		ssuo.SetRetrievability(*f)
	}
	return ssuo
}

// AddRetrievability adds f to the "retrievability" field.
func (ssuo *SkillStateUpdateOne) AddRetrievability(f float64) *SkillStateUpdateOne {
	ssuo.mutation.AddRetrievability(f)
	return ssuo
}

// SetLapses sets the "lapses" field.
func (ssuo *SkillStateUpdateOne) SetLapses(i int) *SkillStateUpdateOne {
	ssuo.mutation.ResetLapses()
	ssuo.mutation.SetLapses(i)
	return ssuo
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableLapses(i *int) *SkillStateUpdateOne {
	if i != nil {
		ssuo.SetLapses(*i)
	}
	return ssuo
}

// AddLapses adds i to the "lapses" field.
func (ssuo *SkillStateUpdateOne) AddLapses(i int) *SkillStateUpdateOne {
	ssuo.mutation.AddLapses(i)
	return ssuo
}

// SetReps sets the "reps" field.
func (ssuo *SkillStateUpdateOne) SetReps(i int) *SkillStateUpdateOne {
	ssuo.mutation.ResetReps()
	ssuo.mutation.SetReps(i)
	return ssuo
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableReps(i *int) *SkillStateUpdateOne {
	if i != nil {
		ssuo.SetReps(*i)
	}
	return ssuo
}

// AddReps adds i to the "reps" field.
func (ssuo *SkillStateUpdateOne) AddReps(i int) *SkillStateUpdateOne {
	ssuo.mutation.AddReps(i)
	return ssuo
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (ssuo *SkillStateUpdateOne) SetLastReviewedAt(t time.Time) *SkillStateUpdateOne {
	ssuo.mutation.SetLastReviewedAt(t)
	return ssuo
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableLastReviewedAt(t *time.Time) *SkillStateUpdateOne {
	if t != nil {
		ssuo.SetLastReviewedAt(*t)
	}
	return ssuo
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (ssuo *SkillStateUpdateOne) ClearLastReviewedAt() *SkillStateUpdateOne {
	ssuo.mutation.ClearLastReviewedAt()
	return ssuo
}

// SetNextReviewAt sets the "next_review_at" field.
func (ssuo *SkillStateUpdateOne) SetNextReviewAt(t time.Time) *SkillStateUpdateOne {
	ssuo.mutation.SetNextReviewAt(t)
	return ssuo
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableNextReviewAt(t *time.Time) *SkillStateUpdateOne {
	if t != nil {
		ssuo.SetNextReviewAt(*t)
	}
	return ssuo
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (ssuo *SkillStateUpdateOne) ClearNextReviewAt() *SkillStateUpdateOne {
	ssuo.mutation.ClearNextReviewAt()
	return ssuo
}

// SetActivities sets the "activities" field.
func (ssuo *SkillStateUpdateOne) SetActivities(m map[string]interface{}) *SkillStateUpdateOne {
	ssuo.mutation.SetActivities(m)
	return ssuo
}

// SetVersion sets the "version" field.
func (ssuo *SkillStateUpdateOne) SetVersion(i int64) *SkillStateUpdateOne {
	ssuo.mutation.ResetVersion()
	ssuo.mutation.SetVersion(i)
	return ssuo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (ssuo *SkillStateUpdateOne) SetNillableVersion(i *int64) *SkillStateUpdateOne {
	if i != nil {
		ssuo.SetVersion(*i)
	}
	return ssuo
}

// AddVersion adds i to the "version" field.
func (ssuo *SkillStateUpdateOne) AddVersion(i int64) *SkillStateUpdateOne {
	ssuo.mutation.AddVersion(i)
	return ssuo
}

// Mutation returns the SkillStateMutation object of the builder.
func (ssuo *SkillStateUpdateOne) Mutation() *SkillStateMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (ssuo *SkillStateUpdateOne) Where(ps ...predicate.SkillState) *SkillStateUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *SkillStateUpdateOne) Select(field string, fields ...string) *SkillStateUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated SkillState entity.
func (ssuo *SkillStateUpdateOne) Save(ctx context.Context) (*SkillState, error) {
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *SkillStateUpdateOne) SaveX(ctx context.Context) *SkillState {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *SkillStateUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *SkillStateUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssuo *SkillStateUpdateOne) check() error {
	if v, ok := ssuo.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.SkillID(); ok {
		if err := skillstate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill_id": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.Status(); ok {
		if err := skillstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillState.status": %w`, err)}
		}
	}
	return nil
}

func (ssuo *SkillStateUpdateOne) sqlSave(ctx context.Context) (_node *SkillState, err error) {
	if err := ssuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillstate.FieldID)
		for _, f := range fields {
			if !skillstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.LearnerID(); ok {
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.SkillID(); ok {
		_spec.SetField(skillstate.FieldSkillID, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.Status(); ok {
		_spec.SetField(skillstate.FieldStatus, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.Progress(); ok {
		_spec.SetField(skillstate.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedProgress(); ok {
		_spec.AddField(skillstate.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if ssuo.mutation.MasteryScoreCleared() {
		_spec.ClearField(skillstate.FieldMasteryScore, field.TypeFloat64)
	}
	if value, ok := ssuo.mutation.Stability(); ok {
		_spec.SetField(skillstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedStability(); ok {
		_spec.AddField(skillstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.Difficulty(); ok {
		_spec.SetField(skillstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(skillstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.Retrievability(); ok {
		_spec.SetField(skillstate.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedRetrievability(); ok {
		_spec.AddField(skillstate.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.Lapses(); ok {
		_spec.SetField(skillstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.AddedLapses(); ok {
		_spec.AddField(skillstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.Reps(); ok {
		_spec.SetField(skillstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.AddedReps(); ok {
		_spec.AddField(skillstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillstate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if ssuo.mutation.LastReviewedAtCleared() {
		_spec.ClearField(skillstate.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := ssuo.mutation.NextReviewAt(); ok {
		_spec.SetField(skillstate.FieldNextReviewAt, field.TypeTime, value)
	}
	if ssuo.mutation.NextReviewAtCleared() {
		_spec.ClearField(skillstate.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := ssuo.mutation.Activities(); ok {
		_spec.SetField(skillstate.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := ssuo.mutation.Version(); ok {
		_spec.SetField(skillstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := ssuo.mutation.AddedVersion(); ok {
		_spec.AddField(skillstate.FieldVersion, field.TypeInt64, value)
	}
	_node = &SkillState{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
