// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjunmb/cadence/ent/skillstate"
)

// SkillState is the model entity for the SkillState schema.
type SkillState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress float64 `json:"progress,omitempty"`
	// Last observed score, if any
	MasteryScore *float64 `json:"mastery_score,omitempty"`
	// Stability holds the value of the "stability" field.
	Stability float64 `json:"stability,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty float64 `json:"difficulty,omitempty"`
	// Retrievability holds the value of the "retrievability" field.
	Retrievability float64 `json:"retrievability,omitempty"`
	// Lapses holds the value of the "lapses" field.
	Lapses int `json:"lapses,omitempty"`
	// Reps holds the value of the "reps" field.
	Reps int `json:"reps,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// Per-activity repetition state keyed by activity ID
	Activities map[string]interface{} `json:"activities,omitempty"`
	// Optimistic-concurrency counter, bumped on every save
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillstate.FieldActivities:
			values[i] = new([]byte)
		case skillstate.FieldProgress, skillstate.FieldMasteryScore, skillstate.FieldStability, skillstate.FieldDifficulty, skillstate.FieldRetrievability:
			values[i] = new(sql.NullFloat64)
		case skillstate.FieldID, skillstate.FieldLapses, skillstate.FieldReps, skillstate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case skillstate.FieldLearnerID, skillstate.FieldSkillID, skillstate.FieldStatus:
			values[i] = new(sql.NullString)
		case skillstate.FieldLastReviewedAt, skillstate.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillState fields.
func (ss *SkillState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ss.ID = int(value.Int64)
		case skillstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				ss.LearnerID = value.String
			}
		case skillstate.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				ss.SkillID = value.String
			}
		case skillstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ss.Status = value.String
			}
		case skillstate.FieldProgress:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				ss.Progress = value.Float64
			}
		case skillstate.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				ss.MasteryScore = new(float64)
				*ss.MasteryScore = value.Float64
			}
		case skillstate.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				ss.Stability = value.Float64
			}
		case skillstate.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				ss.Difficulty = value.Float64
			}
		case skillstate.FieldRetrievability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field retrievability", values[i])
			} else if value.Valid {
				ss.Retrievability = value.Float64
			}
		case skillstate.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				ss.Lapses = int(value.Int64)
			}
		case skillstate.FieldReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reps", values[i])
			} else if value.Valid {
				ss.Reps = int(value.Int64)
			}
		case skillstate.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				ss.LastReviewedAt = new(time.Time)
				*ss.LastReviewedAt = value.Time
			}
		case skillstate.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				ss.NextReviewAt = new(time.Time)
				*ss.NextReviewAt = value.Time
			}
		case skillstate.FieldActivities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ss.Activities); err != nil {
					return fmt.Errorf("unmarshal field activities: %w", err)
				}
			}
		case skillstate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				ss.Version = value.Int64
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillState.
// This includes values selected through modifiers, order, etc.
func (ss *SkillState) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this SkillState.
// Note that you need to call SkillState.Unwrap() before calling this method if this SkillState
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *SkillState) Update() *SkillStateUpdateOne {
	return NewSkillStateClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the SkillState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *SkillState) Unwrap() *SkillState {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillState is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *SkillState) String() string {
	var builder strings.Builder
	builder.WriteString("SkillState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(ss.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(ss.SkillID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ss.Status)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", ss.Progress))
	builder.WriteString(", ")
	if v := ss.MasteryScore; v != nil {
		builder.WriteString("mastery_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", ss.Stability))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", ss.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("retrievability=")
	builder.WriteString(fmt.Sprintf("%v", ss.Retrievability))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", ss.Lapses))
	builder.WriteString(", ")
	builder.WriteString("reps=")
	builder.WriteString(fmt.Sprintf("%v", ss.Reps))
	builder.WriteString(", ")
	if v := ss.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ss.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("activities=")
	builder.WriteString(fmt.Sprintf("%v", ss.Activities))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", ss.Version))
	builder.WriteByte(')')
	return builder.String()
}

// SkillStates is a parsable slice of SkillState.
type SkillStates []*SkillState
