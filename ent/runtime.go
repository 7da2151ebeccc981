// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arjunmb/cadence/ent/reviewevent"
	"github.com/arjunmb/cadence/ent/schema"
	"github.com/arjunmb/cadence/ent/skillstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescOccurredAt is the schema descriptor for occurred_at field.
	revieweventDescOccurredAt := revieweventMixinFields0[0].Descriptor()
	// reviewevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	reviewevent.DefaultOccurredAt = revieweventDescOccurredAt.Default.(func() time.Time)
	// revieweventDescAttemptID is the schema descriptor for attempt_id field.
	revieweventDescAttemptID := revieweventFields[0].Descriptor()
	// reviewevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	reviewevent.AttemptIDValidator = revieweventDescAttemptID.Validators[0].(func(string) error)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[1].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescSkillID is the schema descriptor for skill_id field.
	revieweventDescSkillID := revieweventFields[2].Descriptor()
	// reviewevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	reviewevent.SkillIDValidator = revieweventDescSkillID.Validators[0].(func(string) error)
	// revieweventDescActivityID is the schema descriptor for activity_id field.
	revieweventDescActivityID := revieweventFields[3].Descriptor()
	// reviewevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	reviewevent.ActivityIDValidator = revieweventDescActivityID.Validators[0].(func(string) error)
	// revieweventDescGrade is the schema descriptor for grade field.
	revieweventDescGrade := revieweventFields[4].Descriptor()
	// reviewevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	reviewevent.GradeValidator = revieweventDescGrade.Validators[0].(func(string) error)
	skillstateFields := schema.SkillState{}.Fields()
	_ = skillstateFields
	// skillstateDescLearnerID is the schema descriptor for learner_id field.
	skillstateDescLearnerID := skillstateFields[0].Descriptor()
	// skillstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	skillstate.LearnerIDValidator = skillstateDescLearnerID.Validators[0].(func(string) error)
	// skillstateDescSkillID is the schema descriptor for skill_id field.
	skillstateDescSkillID := skillstateFields[1].Descriptor()
	// skillstate.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skillstate.SkillIDValidator = skillstateDescSkillID.Validators[0].(func(string) error)
	// skillstateDescStatus is the schema descriptor for status field.
	skillstateDescStatus := skillstateFields[2].Descriptor()
	// skillstate.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	skillstate.StatusValidator = skillstateDescStatus.Validators[0].(func(string) error)
	// skillstateDescVersion is the schema descriptor for version field.
	skillstateDescVersion := skillstateFields[13].Descriptor()
	// skillstate.DefaultVersion holds the default value on creation for the version field.
	skillstate.DefaultVersion = skillstateDescVersion.Default.(int64)
}
