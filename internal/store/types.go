package store

import (
	"encoding/json"
	"fmt"

	"github.com/arjunmb/cadence/ent"
	"github.com/arjunmb/cadence/internal/levels"
	"github.com/arjunmb/cadence/internal/memory"
	"github.com/arjunmb/cadence/internal/progress"
)

// SkillStateRecord is the typed, validated form of one persisted
// learner-skill row. The card and activity states live in explicit
// structures rather than opaque JSON; decoding and validation happen
// here, at the storage boundary, so the core never sees malformed state.
type SkillStateRecord struct {
	ID           int
	LearnerID    string
	SkillID      string
	Status       progress.Status
	Progress     float64
	MasteryScore *float64
	Card         memory.CardState
	Activities   map[string]levels.State
	Version      int64
}

// NewSkillStateRecord returns the first-time default for a learner-skill
// pair: a fresh card, not-started status, and no activity state.
func NewSkillStateRecord(learnerID, skillID string) *SkillStateRecord {
	return &SkillStateRecord{
		LearnerID:  learnerID,
		SkillID:    skillID,
		Status:     progress.StatusNotStarted,
		Card:       memory.NewCard(),
		Activities: make(map[string]levels.State),
	}
}

// Validate checks the row invariants before it is trusted by the core.
func (r *SkillStateRecord) Validate() error {
	if r.LearnerID == "" || r.SkillID == "" {
		return fmt.Errorf("skill state %s/%s: empty learner or skill id", r.LearnerID, r.SkillID)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("skill state %s/%s: unknown status %q", r.LearnerID, r.SkillID, r.Status)
	}
	if r.Progress < 0 || r.Progress > 1 {
		return fmt.Errorf("skill state %s/%s: progress %f out of [0, 1]", r.LearnerID, r.SkillID, r.Progress)
	}
	if r.MasteryScore != nil && (*r.MasteryScore < 0 || *r.MasteryScore > 1) {
		return fmt.Errorf("skill state %s/%s: mastery score %f out of [0, 1]", r.LearnerID, r.SkillID, *r.MasteryScore)
	}
	if r.Card.Stability <= 0 {
		return fmt.Errorf("skill state %s/%s: stability %f must be positive", r.LearnerID, r.SkillID, r.Card.Stability)
	}
	if r.Card.Retrievability < 0 || r.Card.Retrievability > 1 {
		return fmt.Errorf("skill state %s/%s: retrievability %f out of [0, 1]", r.LearnerID, r.SkillID, r.Card.Retrievability)
	}
	if r.Card.Lapses < 0 || r.Card.Reps < 0 {
		return fmt.Errorf("skill state %s/%s: negative lapse or rep count", r.LearnerID, r.SkillID)
	}
	for id, st := range r.Activities {
		if id == "" {
			return fmt.Errorf("skill state %s/%s: empty activity id", r.LearnerID, r.SkillID)
		}
		if st.Level < 0 || st.Level > levels.MaxLevel {
			return fmt.Errorf("skill state %s/%s: activity %q level %d out of [0, %d]",
				r.LearnerID, r.SkillID, id, st.Level, levels.MaxLevel)
		}
		if st.ConsecutiveCorrect < 0 {
			return fmt.Errorf("skill state %s/%s: activity %q negative consecutive-correct",
				r.LearnerID, r.SkillID, id)
		}
	}
	return nil
}

// activitiesToMap converts the typed activity map to the loose JSON map
// stored in the ent column.
func activitiesToMap(activities map[string]levels.State) (map[string]any, error) {
	b, err := json.Marshal(activities)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// activitiesFromMap decodes the stored JSON map into typed states.
func activitiesFromMap(m map[string]any) (map[string]levels.State, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var activities map[string]levels.State
	if err := json.Unmarshal(b, &activities); err != nil {
		return nil, err
	}
	if activities == nil {
		activities = make(map[string]levels.State)
	}
	return activities, nil
}

// recordFromEnt converts an ent row into a validated record.
func recordFromEnt(row *ent.SkillState) (*SkillStateRecord, error) {
	activities, err := activitiesFromMap(row.Activities)
	if err != nil {
		return nil, fmt.Errorf("decode activities for %s/%s: %w", row.LearnerID, row.SkillID, err)
	}

	rec := &SkillStateRecord{
		ID:           row.ID,
		LearnerID:    row.LearnerID,
		SkillID:      row.SkillID,
		Status:       progress.Status(row.Status),
		Progress:     row.Progress,
		MasteryScore: row.MasteryScore,
		Card: memory.CardState{
			Stability:      row.Stability,
			Difficulty:     row.Difficulty,
			Retrievability: row.Retrievability,
			Lapses:         row.Lapses,
			Reps:           row.Reps,
			LastReviewedAt: row.LastReviewedAt,
			NextReviewAt:   row.NextReviewAt,
		},
		Activities: activities,
		Version:    row.Version,
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("load skill state: %w", err)
	}
	return rec, nil
}
