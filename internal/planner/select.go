package planner

import (
	"time"

	"github.com/arjunmb/cadence/internal/catalog"
	"github.com/arjunmb/cadence/internal/levels"
)

// ActivityStates maps skill ID → activity ID → level-scheduler state.
// Missing entries resolve to the never-attempted default, which is
// immediately due.
type ActivityStates map[string]map[string]levels.State

// Resolve returns the state for one activity, falling back to the default.
func (s ActivityStates) Resolve(skillID, activityID string) levels.State {
	if byActivity, ok := s[skillID]; ok {
		if st, ok := byActivity[activityID]; ok {
			return st
		}
	}
	return levels.Default()
}

// SelectNext builds one candidate per catalog (skill, unit, activity)
// triple and returns the minimal one under the total order, or nil when
// the catalog holds no activities. A nil result is the normal "no
// activities available" outcome, not an error. Selection is read-only
// and side-effect-free: repeated calls on unchanged state return the
// identical candidate.
func SelectNext(states ActivityStates, cat *catalog.Catalog, now time.Time) *Candidate {
	var best *Candidate

	for _, skill := range cat.Skills {
		for _, unit := range skill.Units {
			for _, act := range unit.Activities {
				st := states.Resolve(skill.ID, act.ID)
				cand := &Candidate{
					SkillID:       skill.ID,
					UnitID:        unit.ID,
					ActivityID:    act.ID,
					ActivityName:  act.Name,
					Level:         st.Level,
					NextReviewAt:  st.NextReviewAt,
					Due:           levels.IsDue(st.NextReviewAt, now),
					UnitOrder:     unit.Order,
					ActivityOrder: act.Order,
				}
				if best == nil || Compare(cand, best) < 0 {
					best = cand
				}
			}
		}
	}

	return best
}
