// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunmb/cadence/ent/skillstate"
)

// SkillStateCreate is the builder for creating a SkillState entity.
type SkillStateCreate struct {
	config
	mutation *SkillStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (ssc *SkillStateCreate) SetLearnerID(s string) *SkillStateCreate {
	ssc.mutation.SetLearnerID(s)
	return ssc
}

// SetSkillID sets the "skill_id" field.
func (ssc *SkillStateCreate) SetSkillID(s string) *SkillStateCreate {
	ssc.mutation.SetSkillID(s)
	return ssc
}

// SetStatus sets the "status" field.
func (ssc *SkillStateCreate) SetStatus(s string) *SkillStateCreate {
	ssc.mutation.SetStatus(s)
	return ssc
}

// SetProgress sets the "progress" field.
func (ssc *SkillStateCreate) SetProgress(f float64) *SkillStateCreate {
	ssc.mutation.SetProgress(f)
	return ssc
}

// SetMasteryScore sets the "mastery_score" field.
func (ssc *SkillStateCreate) SetMasteryScore(f float64) *SkillStateCreate {
	ssc.mutation.SetMasteryScore(f)
	return ssc
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (ssc *SkillStateCreate) SetNillableMasteryScore(f *float64) *SkillStateCreate {
	if f != nil {
		ssc.SetMasteryScore(*f)
	}
	return ssc
}

// SetStability sets the "stability" field.
func (ssc *SkillStateCreate) SetStability(f float64) *SkillStateCreate {
	ssc.mutation.SetStability(f)
	return ssc
}

// SetDifficulty sets the "difficulty" field.
func (ssc *SkillStateCreate) SetDifficulty(f float64) *SkillStateCreate {
	ssc.mutation.SetDifficulty(f)
	return ssc
}

// SetRetrievability sets the "retrievability" field.
func (ssc *SkillStateCreate) SetRetrievability(f float64) *SkillStateCreate {
	ssc.mutation.SetRetrievability(f)
	return ssc
}

// SetLapses sets the "lapses" field.
func (ssc *SkillStateCreate) SetLapses(i int) *SkillStateCreate {
	ssc.mutation.SetLapses(i)
	return ssc
}

// SetReps sets the "reps" field.
func (ssc *SkillStateCreate) SetReps(i int) *SkillStateCreate {
	ssc.mutation.SetReps(i)
	return ssc
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (ssc *SkillStateCreate) SetLastReviewedAt(t time.Time) *SkillStateCreate {
	ssc.mutation.SetLastReviewedAt(t)
	return ssc
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (ssc *SkillStateCreate) SetNillableLastReviewedAt(t *time.Time) *SkillStateCreate {
	if t != nil {
		ssc.SetLastReviewedAt(*t)
	}
	return ssc
}

// SetNextReviewAt sets the "next_review_at" field.
func (ssc *SkillStateCreate) SetNextReviewAt(t time.Time) *SkillStateCreate {
	ssc.mutation.SetNextReviewAt(t)
	return ssc
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (ssc *SkillStateCreate) SetNillableNextReviewAt(t *time.Time) *SkillStateCreate {
	if t != nil {
		ssc.SetNextReviewAt(*t)
	}
	return ssc
}

// SetActivities sets the "activities" field.
func (ssc *SkillStateCreate) SetActivities(m map[string]interface{}) *SkillStateCreate {
	ssc.mutation.SetActivities(m)
	return ssc
}

// SetVersion sets the "version" field.
func (ssc *SkillStateCreate) SetVersion(i int64) *SkillStateCreate {
	ssc.mutation.SetVersion(i)
	return ssc
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (ssc *SkillStateCreate) SetNillableVersion(i *int64) *SkillStateCreate {
	if i != nil {
		ssc.SetVersion(*i)
	}
	return ssc
}

// Mutation returns the SkillStateMutation object of the builder.
func (ssc *SkillStateCreate) Mutation() *SkillStateMutation {
	return ssc.mutation
}

// Save creates the SkillState in the database.
func (ssc *SkillStateCreate) Save(ctx context.Context) (*SkillState, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *SkillStateCreate) SaveX(ctx context.Context) *SkillState {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *SkillStateCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *SkillStateCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *SkillStateCreate) defaults() {
	if _, ok := ssc.mutation.Version(); !ok {
		v := skillstate.DefaultVersion
		ssc.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *SkillStateCreate) check() error {
	if _, ok := ssc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SkillState.learner_id"`)}
	}
	if v, ok := ssc.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "SkillState.skill_id"`)}
	}
	if v, ok := ssc.mutation.SkillID(); ok {
		if err := skillstate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SkillState.status"`)}
	}
	if v, ok := ssc.mutation.Status(); ok {
		if err := skillstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillState.status": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "SkillState.progress"`)}
	}
	if _, ok := ssc.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "SkillState.stability"`)}
	}
	if _, ok := ssc.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "SkillState.difficulty"`)}
	}
	if _, ok := ssc.mutation.Retrievability(); !ok {
		return &ValidationError{Name: "retrievability", err: errors.New(`ent: missing required field "SkillState.retrievability"`)}
	}
	if _, ok := ssc.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "SkillState.lapses"`)}
	}
	if _, ok := ssc.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "SkillState.reps"`)}
	}
	if _, ok := ssc.mutation.Activities(); !ok {
		return &ValidationError{Name: "activities", err: errors.New(`ent: missing required field "SkillState.activities"`)}
	}
	if _, ok := ssc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SkillState.version"`)}
	}
	return nil
}

func (ssc *SkillStateCreate) sqlSave(ctx context.Context) (*SkillState, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *SkillStateCreate) createSpec() (*SkillState, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillState{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(skillstate.Table, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.LearnerID(); ok {
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := ssc.mutation.SkillID(); ok {
		_spec.SetField(skillstate.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := ssc.mutation.Status(); ok {
		_spec.SetField(skillstate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ssc.mutation.Progress(); ok {
		_spec.SetField(skillstate.FieldProgress, field.TypeFloat64, value)
		_node.Progress = value
	}
	if value, ok := ssc.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = &value
	}
	if value, ok := ssc.mutation.Stability(); ok {
		_spec.SetField(skillstate.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := ssc.mutation.Difficulty(); ok {
		_spec.SetField(skillstate.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := ssc.mutation.Retrievability(); ok {
		_spec.SetField(skillstate.FieldRetrievability, field.TypeFloat64, value)
		_node.Retrievability = value
	}
	if value, ok := ssc.mutation.Lapses(); ok {
		_spec.SetField(skillstate.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := ssc.mutation.Reps(); ok {
		_spec.SetField(skillstate.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := ssc.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillstate.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := ssc.mutation.NextReviewAt(); ok {
		_spec.SetField(skillstate.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := ssc.mutation.Activities(); ok {
		_spec.SetField(skillstate.FieldActivities, field.TypeJSON, value)
		_node.Activities = value
	}
	if value, ok := ssc.mutation.Version(); ok {
		_spec.SetField(skillstate.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// SkillStateCreateBulk is the builder for creating many SkillState entities in bulk.
type SkillStateCreateBulk struct {
	config
	err      error
	builders []*SkillStateCreate
}

// Save creates the SkillState entities in the database.
func (sscb *SkillStateCreateBulk) Save(ctx context.Context) ([]*SkillState, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*SkillState, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillStateMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *SkillStateCreateBulk) SaveX(ctx context.Context) []*SkillState {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *SkillStateCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *SkillStateCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
