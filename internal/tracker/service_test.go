package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/arjunmb/cadence/internal/catalog"
	"github.com/arjunmb/cadence/internal/memory"
	"github.com/arjunmb/cadence/internal/progress"
	"github.com/arjunmb/cadence/internal/store"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// mockStateRepo is an in-memory SkillStateRepo. conflictsLeft makes the
// next N saves fail with a version conflict.
type mockStateRepo struct {
	records       map[string]*store.SkillStateRecord
	gets          int
	conflictsLeft int
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{records: make(map[string]*store.SkillStateRecord)}
}

func stateKey(learnerID, skillID string) string {
	return learnerID + "/" + skillID
}

func (m *mockStateRepo) Get(_ context.Context, learnerID, skillID string) (*store.SkillStateRecord, error) {
	m.gets++
	rec, ok := m.records[stateKey(learnerID, skillID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockStateRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.SkillStateRecord, error) {
	var out []*store.SkillStateRecord
	for _, rec := range m.records {
		if rec.LearnerID == learnerID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockStateRepo) Save(_ context.Context, rec *store.SkillStateRecord) error {
	if m.conflictsLeft > 0 {
		m.conflictsLeft--
		return store.ErrVersionConflict
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ID == 0 {
		rec.ID = len(m.records) + 1
		rec.Version = 1
	} else {
		rec.Version++
	}
	cp := *rec
	m.records[stateKey(rec.LearnerID, rec.SkillID)] = &cp
	return nil
}

func (m *mockStateRepo) DeleteByLearner(_ context.Context, learnerID string) (int, error) {
	n := 0
	for k, rec := range m.records {
		if rec.LearnerID == learnerID {
			delete(m.records, k)
			n++
		}
	}
	return n, nil
}

// mockEventRepo records appended events.
type mockEventRepo struct {
	events []store.ReviewEventData
}

func (m *mockEventRepo) Append(_ context.Context, data store.ReviewEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockEventRepo) LatestAttemptTime(_ context.Context, learnerID, skillID string) (time.Time, error) {
	var latest time.Time
	for _, e := range m.events {
		if e.LearnerID == learnerID && e.SkillID == skillID && e.OccurredAt.After(latest) {
			latest = e.OccurredAt
		}
	}
	return latest, nil
}

func newTestService(t *testing.T) (*Service, *mockStateRepo, *mockEventRepo) {
	t.Helper()
	engine, err := memory.NewEngine(memory.DefaultParams())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	states := newMockStateRepo()
	events := &mockEventRepo{}
	return NewService(states, events, engine), states, events
}

func oneActivityCatalog() *catalog.Catalog {
	return &catalog.Catalog{Skills: []catalog.Skill{
		{ID: "skill-1", Name: "Skill One", Units: []catalog.Unit{
			{ID: "unit-1", Name: "Unit One", Order: 1, Activities: []catalog.Activity{
				{ID: "act-1", Name: "Activity One", Order: 1},
			}},
		}},
	}}
}

// A brand-new learner reviews a brand-new skill's only activity with
// grade good.
func TestRecordReview_FirstReview(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	out, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, nil, t0)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}

	card := out.Skill.Card
	if card.Reps != 1 || card.Lapses != 0 {
		t.Errorf("Reps/Lapses = %d/%d, want 1/0", card.Reps, card.Lapses)
	}
	// Difficulty starts at 0, so stability is exactly w[0].
	if card.Stability != memory.DefaultWeights[0] {
		t.Errorf("Stability = %v, want w[0] = %v", card.Stability, memory.DefaultWeights[0])
	}
	if out.Skill.Status != progress.StatusInProgress {
		t.Errorf("Status = %v, want in_progress", out.Skill.Status)
	}
	if !card.NextReviewAt.After(t0) {
		t.Errorf("NextReviewAt = %v, want after %v", card.NextReviewAt, t0)
	}

	if len(events.events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Grade != "good" || !e.Correct || e.AttemptID == "" {
		t.Errorf("event = %+v", e)
	}
	if e.AttemptID != out.AttemptID {
		t.Errorf("event attempt id %q != outcome %q", e.AttemptID, out.AttemptID)
	}
}

// Two correct answers in a row on a level-0 activity: the first keeps
// level 0, the second promotes to level 1 with a one-hour cooldown.
func TestRecordReview_LevelPromotionSequence(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, nil, t0)
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if out.Activity.Level != 0 || out.Activity.ConsecutiveCorrect != 1 {
		t.Fatalf("after first correct: %+v, want level 0 streak 1", out.Activity)
	}

	second := t0.Add(time.Minute)
	out, err = svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, nil, second)
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if out.Activity.Level != 1 {
		t.Fatalf("after second correct: level %d, want 1", out.Activity.Level)
	}
	wantNext := second.Add(time.Hour)
	if !out.Activity.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", out.Activity.NextReviewAt, wantNext)
	}
}

func TestRecordReview_AgainDemotesActivityAndCountsLapse(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	for _, now := range []time.Time{t0, t0.Add(time.Minute), t0.Add(2 * time.Minute)} {
		if _, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, nil, now); err != nil {
			t.Fatalf("setup review: %v", err)
		}
	}

	out, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Again, nil, t0.Add(3*time.Minute))
	if err != nil {
		t.Fatalf("again review: %v", err)
	}
	if out.Skill.Card.Lapses != 1 {
		t.Errorf("Lapses = %d, want 1", out.Skill.Card.Lapses)
	}
	if out.Activity.Level != 1 || out.Activity.ConsecutiveCorrect != 0 {
		t.Errorf("activity = %+v, want demoted to level 1 with reset streak", out.Activity)
	}
	if got := events.events[len(events.events)-1]; got.Correct {
		t.Error("again must be recorded as incorrect")
	}
}

func TestRecordReview_RetriesOnVersionConflict(t *testing.T) {
	svc, states, _ := newTestService(t)
	ctx := context.Background()
	states.conflictsLeft = 1

	out, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, nil, t0)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	if out.Skill.Card.Reps != 1 {
		t.Errorf("Reps = %d, want 1 after replay", out.Skill.Card.Reps)
	}
	if states.gets != 2 {
		t.Errorf("gets = %d, want 2 (re-read after conflict)", states.gets)
	}
}

func TestRecordReview_GivesUpAfterRepeatedConflicts(t *testing.T) {
	svc, states, _ := newTestService(t)
	states.conflictsLeft = 10

	_, err := svc.RecordReview(context.Background(), "learner-1", "skill-1", "act-1", memory.Good, nil, t0)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestRecordReview_ValidatesInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RecordReview(ctx, "", "skill-1", "act-1", memory.Good, nil, t0); err == nil {
		t.Error("expected error for empty learner id")
	}
	bad := 1.5
	if _, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, &bad, t0); err == nil {
		t.Error("expected error for out-of-range score")
	}
}

func TestRecordReview_MasteryAfterStrongScores(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	high := 0.95

	var (
		out *ReviewOutcome
		err error
	)
	now := t0
	for i := 0; i < 3; i++ {
		out, err = svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Good, &high, now)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		now = now.Add(time.Minute)
	}

	// Three reps, high score, and near-full retrievability (reviews in
	// quick succession) satisfy the mastery rule.
	if out.Skill.Status != progress.StatusMastered {
		t.Errorf("Status = %v, want mastered", out.Skill.Status)
	}
	if out.Skill.MasteryScore == nil || *out.Skill.MasteryScore != high {
		t.Errorf("MasteryScore = %v, want %v", out.Skill.MasteryScore, high)
	}
}

func TestNextActivity_EndToEnd(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	cat := oneActivityCatalog()

	// With no recorded state every activity defaults to due level 0.
	cand, err := svc.NextActivity(ctx, "learner-1", cat, t0)
	if err != nil {
		t.Fatalf("next activity: %v", err)
	}
	if cand == nil || cand.ActivityID != "act-1" {
		t.Fatalf("candidate = %+v, want act-1", cand)
	}

	// Empty catalog: a nil candidate, not an error.
	cand, err = svc.NextActivity(ctx, "learner-1", &catalog.Catalog{}, t0)
	if err != nil {
		t.Fatalf("next activity: %v", err)
	}
	if cand != nil {
		t.Errorf("candidate = %+v, want nil for empty catalog", cand)
	}
}

func TestNextActivity_PrefersLowerLevelAmongDue(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	cat := &catalog.Catalog{Skills: []catalog.Skill{
		{ID: "skill-1", Name: "Skill One", Units: []catalog.Unit{
			{ID: "unit-1", Name: "Unit One", Order: 1, Activities: []catalog.Activity{
				{ID: "act-a", Name: "Activity A", Order: 1},
				{ID: "act-b", Name: "Activity B", Order: 2},
			}},
		}},
	}}

	// Push act-b to level 1 with two quick correct answers; act-a stays
	// at level 0 untouched.
	for _, now := range []time.Time{t0, t0.Add(time.Minute)} {
		if _, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-b", memory.Good, nil, now); err != nil {
			t.Fatalf("setup review: %v", err)
		}
	}

	// Both are due well past their cooldowns; the level-0 item wins even
	// though act-b has the earlier schedule slot.
	later := t0.Add(48 * time.Hour)
	cand, err := svc.NextActivity(ctx, "learner-1", cat, later)
	if err != nil {
		t.Fatalf("next activity: %v", err)
	}
	if cand == nil || cand.ActivityID != "act-a" {
		t.Fatalf("candidate = %+v, want level-0 act-a", cand)
	}
}

func TestLastAttempt(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.LastAttempt(ctx, "learner-1", "skill-1")
	if err != nil {
		t.Fatalf("last attempt: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("LastAttempt = %v, want zero time", got)
	}

	if _, err := svc.RecordReview(ctx, "learner-1", "skill-1", "act-1", memory.Hard, nil, t0); err != nil {
		t.Fatalf("record review: %v", err)
	}
	got, err = svc.LastAttempt(ctx, "learner-1", "skill-1")
	if err != nil {
		t.Fatalf("last attempt: %v", err)
	}
	if !got.Equal(t0) {
		t.Errorf("LastAttempt = %v, want %v", got, t0)
	}
}
