package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_Sample(t *testing.T) {
	if err := Sample().Validate(); err != nil {
		t.Fatalf("sample catalog invalid: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		cat  Catalog
	}{
		{
			"empty skill id",
			Catalog{Skills: []Skill{{ID: "", Name: "x"}}},
		},
		{
			"duplicate skill id",
			Catalog{Skills: []Skill{{ID: "a", Name: "x"}, {ID: "a", Name: "y"}}},
		},
		{
			"duplicate unit id",
			Catalog{Skills: []Skill{{ID: "a", Name: "x", Units: []Unit{
				{ID: "u", Name: "u1"}, {ID: "u", Name: "u2"},
			}}}},
		},
		{
			"negative unit order",
			Catalog{Skills: []Skill{{ID: "a", Name: "x", Units: []Unit{
				{ID: "u", Name: "u1", Order: -1},
			}}}},
		},
		{
			"duplicate activity id",
			Catalog{Skills: []Skill{{ID: "a", Name: "x", Units: []Unit{
				{ID: "u", Name: "u1", Activities: []Activity{
					{ID: "act", Name: "one"}, {ID: "act", Name: "two"},
				}},
			}}}},
		},
		{
			"empty activity name",
			Catalog{Skills: []Skill{{ID: "a", Name: "x", Units: []Unit{
				{ID: "u", Name: "u1", Activities: []Activity{{ID: "act", Name: ""}}},
			}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cat.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	data := `{
		"skills": [
			{"id": "s1", "name": "Skill One", "units": [
				{"id": "u1", "name": "Unit One", "order": 1, "activities": [
					{"id": "a1", "name": "Activity One", "order": 1}
				]}
			]}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cat.Skill("s1"); got == nil || got.Name != "Skill One" {
		t.Errorf("Skill(s1) = %+v", got)
	}
	if cat.Skill("missing") != nil {
		t.Error("expected nil for unknown skill")
	}

	if _, err := Load(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"skills": [{"id": "", "name": ""}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error")
	}
}
