// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunmb/cadence/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetOccurredAt sets the "occurred_at" field.
func (rec *ReviewEventCreate) SetOccurredAt(t time.Time) *ReviewEventCreate {
	rec.mutation.SetOccurredAt(t)
	return rec
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (rec *ReviewEventCreate) SetNillableOccurredAt(t *time.Time) *ReviewEventCreate {
	if t != nil {
		rec.SetOccurredAt(*t)
	}
	return rec
}

// SetAttemptID sets the "attempt_id" field.
func (rec *ReviewEventCreate) SetAttemptID(s string) *ReviewEventCreate {
	rec.mutation.SetAttemptID(s)
	return rec
}

// SetLearnerID sets the "learner_id" field.
func (rec *ReviewEventCreate) SetLearnerID(s string) *ReviewEventCreate {
	rec.mutation.SetLearnerID(s)
	return rec
}

// SetSkillID sets the "skill_id" field.
func (rec *ReviewEventCreate) SetSkillID(s string) *ReviewEventCreate {
	rec.mutation.SetSkillID(s)
	return rec
}

// SetActivityID sets the "activity_id" field.
func (rec *ReviewEventCreate) SetActivityID(s string) *ReviewEventCreate {
	rec.mutation.SetActivityID(s)
	return rec
}

// SetGrade sets the "grade" field.
func (rec *ReviewEventCreate) SetGrade(s string) *ReviewEventCreate {
	rec.mutation.SetGrade(s)
	return rec
}

// SetCorrect sets the "correct" field.
func (rec *ReviewEventCreate) SetCorrect(b bool) *ReviewEventCreate {
	rec.mutation.SetCorrect(b)
	return rec
}

// SetScore sets the "score" field.
func (rec *ReviewEventCreate) SetScore(f float64) *ReviewEventCreate {
	rec.mutation.SetScore(f)
	return rec
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (rec *ReviewEventCreate) SetNillableScore(f *float64) *ReviewEventCreate {
	if f != nil {
		rec.SetScore(*f)
	}
	return rec
}

// Mutation returns the ReviewEventMutation object of the builder.
func (rec *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return rec.mutation
}

// Save creates the ReviewEvent in the database.
func (rec *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *ReviewEventCreate) defaults() {
	if _, ok := rec.mutation.OccurredAt(); !ok {
		v := reviewevent.DefaultOccurredAt()
		rec.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *ReviewEventCreate) check() error {
	if _, ok := rec.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ReviewEvent.occurred_at"`)}
	}
	if _, ok := rec.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ReviewEvent.attempt_id"`)}
	}
	if v, ok := rec.mutation.AttemptID(); ok {
		if err := reviewevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewEvent.learner_id"`)}
	}
	if v, ok := rec.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ReviewEvent.skill_id"`)}
	}
	if v, ok := rec.mutation.SkillID(); ok {
		if err := reviewevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "ReviewEvent.activity_id"`)}
	}
	if v, ok := rec.mutation.ActivityID(); ok {
		if err := reviewevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ReviewEvent.grade"`)}
	}
	if v, ok := rec.mutation.Grade(); ok {
		if err := reviewevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.grade": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewEvent.correct"`)}
	}
	return nil
}

func (rec *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := rec.mutation.OccurredAt(); ok {
		_spec.SetField(reviewevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := rec.mutation.AttemptID(); ok {
		_spec.SetField(reviewevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := rec.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := rec.mutation.SkillID(); ok {
		_spec.SetField(reviewevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := rec.mutation.ActivityID(); ok {
		_spec.SetField(reviewevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := rec.mutation.Grade(); ok {
		_spec.SetField(reviewevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := rec.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := rec.mutation.Score(); ok {
		_spec.SetField(reviewevent.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (recb *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*ReviewEvent, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}
