package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog wraps all catalog validation failures.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Validate checks structural integrity: non-empty IDs and names, unique
// IDs at every nesting level, and non-negative order fields.
func (c *Catalog) Validate() error {
	skillIDs := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("%w: skill with empty id or name", ErrInvalidCatalog)
		}
		if skillIDs[s.ID] {
			return fmt.Errorf("%w: duplicate skill id %q", ErrInvalidCatalog, s.ID)
		}
		skillIDs[s.ID] = true

		unitIDs := make(map[string]bool, len(s.Units))
		for _, u := range s.Units {
			if u.ID == "" || u.Name == "" {
				return fmt.Errorf("%w: skill %q: unit with empty id or name", ErrInvalidCatalog, s.ID)
			}
			if unitIDs[u.ID] {
				return fmt.Errorf("%w: skill %q: duplicate unit id %q", ErrInvalidCatalog, s.ID, u.ID)
			}
			unitIDs[u.ID] = true
			if u.Order < 0 {
				return fmt.Errorf("%w: unit %q: negative order %d", ErrInvalidCatalog, u.ID, u.Order)
			}

			activityIDs := make(map[string]bool, len(u.Activities))
			for _, a := range u.Activities {
				if a.ID == "" || a.Name == "" {
					return fmt.Errorf("%w: unit %q: activity with empty id or name", ErrInvalidCatalog, u.ID)
				}
				if activityIDs[a.ID] {
					return fmt.Errorf("%w: unit %q: duplicate activity id %q", ErrInvalidCatalog, u.ID, a.ID)
				}
				activityIDs[a.ID] = true
				if a.Order < 0 {
					return fmt.Errorf("%w: activity %q: negative order %d", ErrInvalidCatalog, a.ID, a.Order)
				}
			}
		}
	}
	return nil
}
