package catalog

// Sample returns a small built-in catalog used by the CLI when no
// catalog file is supplied.
func Sample() *Catalog {
	return &Catalog{
		Skills: []Skill{
			{
				ID:   "fractions-basics",
				Name: "Fraction Basics",
				Units: []Unit{
					{
						ID: "fb-recognize", Name: "Recognizing Fractions", Order: 1,
						Activities: []Activity{
							{ID: "fb-r-quiz", Name: "Fraction quiz", Order: 1},
							{ID: "fb-r-match", Name: "Match the fraction", Order: 2},
						},
					},
					{
						ID: "fb-compare", Name: "Comparing Fractions", Order: 2,
						Activities: []Activity{
							{ID: "fb-c-quiz", Name: "Comparison quiz", Order: 1},
						},
					},
				},
			},
			{
				ID:   "decimals-intro",
				Name: "Introduction to Decimals",
				Units: []Unit{
					{
						ID: "di-place", Name: "Decimal Place Value", Order: 1,
						Activities: []Activity{
							{ID: "di-p-quiz", Name: "Place value quiz", Order: 1},
							{ID: "di-p-build", Name: "Build a decimal", Order: 2},
						},
					},
				},
			},
		},
	}
}
