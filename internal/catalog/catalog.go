// Package catalog defines the static skills → units → activities tree
// that candidate selection runs over. Order fields are declared by the
// catalog author and drive deterministic tie-breaking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Activity is a single discrete learning activity.
type Activity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Unit groups activities inside a skill.
type Unit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Order      int        `json:"order"`
	Activities []Activity `json:"activities"`
}

// Skill is a learnable skill with its unit tree.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Units []Unit `json:"units"`
}

// Catalog is the full activity tree for one course.
type Catalog struct {
	Skills []Skill `json:"skills"`
}

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(b, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Skill returns the skill with the given ID, or nil.
func (c *Catalog) Skill(id string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}
