// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunmb/cadence/ent/predicate"
	"github.com/arjunmb/cadence/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reu *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetAttemptID sets the "attempt_id" field.
func (reu *ReviewEventUpdate) SetAttemptID(s string) *ReviewEventUpdate {
	reu.mutation.SetAttemptID(s)
	return reu
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableAttemptID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetAttemptID(*s)
	}
	return reu
}

// SetLearnerID sets the "learner_id" field.
func (reu *ReviewEventUpdate) SetLearnerID(s string) *ReviewEventUpdate {
	reu.mutation.SetLearnerID(s)
	return reu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableLearnerID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetLearnerID(*s)
	}
	return reu
}

// SetSkillID sets the "skill_id" field.
func (reu *ReviewEventUpdate) SetSkillID(s string) *ReviewEventUpdate {
	reu.mutation.SetSkillID(s)
	return reu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableSkillID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetSkillID(*s)
	}
	return reu
}

// SetActivityID sets the "activity_id" field.
func (reu *ReviewEventUpdate) SetActivityID(s string) *ReviewEventUpdate {
	reu.mutation.SetActivityID(s)
	return reu
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableActivityID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetActivityID(*s)
	}
	return reu
}

// SetGrade sets the "grade" field.
func (reu *ReviewEventUpdate) SetGrade(s string) *ReviewEventUpdate {
	reu.mutation.SetGrade(s)
	return reu
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableGrade(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetGrade(*s)
	}
	return reu
}

// SetCorrect sets the "correct" field.
func (reu *ReviewEventUpdate) SetCorrect(b bool) *ReviewEventUpdate {
	reu.mutation.SetCorrect(b)
	return reu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableCorrect(b *bool) *ReviewEventUpdate {
	if b != nil {
		reu.SetCorrect(*b)
	}
	return reu
}

// SetScore sets the "score" field.
func (reu *ReviewEventUpdate) SetScore(f float64) *ReviewEventUpdate {
	reu.mutation.ResetScore()
	reu.mutation.SetScore(f)
	return reu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableScore(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetScore(*f)
	}
	return reu
}

// AddScore adds f to the "score" field.
func (reu *ReviewEventUpdate) AddScore(f float64) *ReviewEventUpdate {
	reu.mutation.AddScore(f)
	return reu
}

// ClearScore clears the value of the "score" field.
func (reu *ReviewEventUpdate) ClearScore() *ReviewEventUpdate {
	reu.mutation.ClearScore()
	return reu
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reu *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ReviewEventUpdate) check() error {
	if v, ok := reu.mutation.AttemptID(); ok {
		if err := reviewevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.SkillID(); ok {
		if err := reviewevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.ActivityID(); ok {
		if err := reviewevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (reu *ReviewEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.AttemptID(); ok {
		_spec.SetField(reviewevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := reu.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reu.mutation.SkillID(); ok {
		_spec.SetField(reviewevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := reu.mutation.ActivityID(); ok {
		_spec.SetField(reviewevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := reu.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := reu.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reu.mutation.Score(); ok {
		_spec.SetField(reviewevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedScore(); ok {
		_spec.AddField(reviewevent.FieldScore, field.TypeFloat64, value)
	}
	if reu.mutation.ScoreCleared() {
		_spec.ClearField(reviewevent.FieldScore, field.TypeFloat64)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (reuo *ReviewEventUpdateOne) SetAttemptID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetAttemptID(s)
	return reuo
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableAttemptID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetAttemptID(*s)
	}
	return reuo
}

// SetLearnerID sets the "learner_id" field.
func (reuo *ReviewEventUpdateOne) SetLearnerID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetLearnerID(s)
	return reuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableLearnerID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetLearnerID(*s)
	}
	return reuo
}

// SetSkillID sets the "skill_id" field.
func (reuo *ReviewEventUpdateOne) SetSkillID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetSkillID(s)
	return reuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableSkillID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetSkillID(*s)
	}
	return reuo
}

// SetActivityID sets the "activity_id" field.
func (reuo *ReviewEventUpdateOne) SetActivityID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetActivityID(s)
	return reuo
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableActivityID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetActivityID(*s)
	}
	return reuo
}

// SetGrade sets the "grade" field.
func (reuo *ReviewEventUpdateOne) SetGrade(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetGrade(s)
	return reuo
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableGrade(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetGrade(*s)
	}
	return reuo
}

// SetCorrect sets the "correct" field.
func (reuo *ReviewEventUpdateOne) SetCorrect(b bool) *ReviewEventUpdateOne {
	reuo.mutation.SetCorrect(b)
	return reuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableCorrect(b *bool) *ReviewEventUpdateOne {
	if b != nil {
		reuo.SetCorrect(*b)
	}
	return reuo
}

// SetScore sets the "score" field.
func (reuo *ReviewEventUpdateOne) SetScore(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetScore()
	reuo.mutation.SetScore(f)
	return reuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableScore(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetScore(*f)
	}
	return reuo
}

// AddScore adds f to the "score" field.
func (reuo *ReviewEventUpdateOne) AddScore(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddScore(f)
	return reuo
}

// ClearScore clears the value of the "score" field.
func (reuo *ReviewEventUpdateOne) ClearScore() *ReviewEventUpdateOne {
	reuo.mutation.ClearScore()
	return reuo
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reuo *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reuo *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ReviewEvent entity.
func (reuo *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ReviewEventUpdateOne) check() error {
	if v, ok := reuo.mutation.AttemptID(); ok {
		if err := reviewevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.SkillID(); ok {
		if err := reviewevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.ActivityID(); ok {
		if err := reviewevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (reuo *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.AttemptID(); ok {
		_spec.SetField(reviewevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.SkillID(); ok {
		_spec.SetField(reviewevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.ActivityID(); ok {
		_spec.SetField(reviewevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reuo.mutation.Score(); ok {
		_spec.SetField(reviewevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedScore(); ok {
		_spec.AddField(reviewevent.FieldScore, field.TypeFloat64, value)
	}
	if reuo.mutation.ScoreCleared() {
		_spec.ClearField(reviewevent.FieldScore, field.TypeFloat64)
	}
	_node = &ReviewEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
