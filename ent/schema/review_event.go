package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one graded attempt for audit and analytics.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").Unique().NotEmpty().
			Comment("UUID assigned when the attempt is recorded"),
		field.String("learner_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("activity_id").NotEmpty(),
		field.String("grade").NotEmpty(),
		field.Bool("correct"),
		field.Float("score").Optional().Nillable(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_id"),
		index.Fields("activity_id"),
	}
}
