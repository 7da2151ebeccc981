// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_learner_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
		},
	}
	// SkillStatesColumns holds the columns for the "skill_states" table.
	SkillStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "progress", Type: field.TypeFloat64},
		{Name: "mastery_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "retrievability", Type: field.TypeFloat64},
		{Name: "lapses", Type: field.TypeInt},
		{Name: "reps", Type: field.TypeInt},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "activities", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// SkillStatesTable holds the schema information for the "skill_states" table.
	SkillStatesTable = &schema.Table{
		Name:       "skill_states",
		Columns:    SkillStatesColumns,
		PrimaryKey: []*schema.Column{SkillStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillstate_learner_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{SkillStatesColumns[1], SkillStatesColumns[2]},
			},
			{
				Name:    "skillstate_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SkillStatesColumns[1]},
			},
			{
				Name:    "skillstate_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{SkillStatesColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReviewEventsTable,
		SkillStatesTable,
	}
)

func init() {
}
