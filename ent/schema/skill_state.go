package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillState persists one learner-skill pair: coarse status and
// progress, the flattened memory-model card, and the per-activity
// repetition states as a JSON map keyed by activity ID.
type SkillState struct {
	ent.Schema
}

func (SkillState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("status").NotEmpty(),
		field.Float("progress"),
		field.Float("mastery_score").Optional().Nillable().
			Comment("Last observed score, if any"),
		field.Float("stability"),
		field.Float("difficulty"),
		field.Float("retrievability"),
		field.Int("lapses"),
		field.Int("reps"),
		field.Time("last_reviewed_at").Optional().Nillable(),
		field.Time("next_review_at").Optional().Nillable(),
		field.JSON("activities", map[string]any{}).
			Comment("Per-activity repetition state keyed by activity ID"),
		field.Int64("version").Default(1).
			Comment("Optimistic-concurrency counter, bumped on every save"),
	}
}

func (SkillState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_id").Unique(),
		index.Fields("learner_id"),
		index.Fields("next_review_at"),
	}
}
