package memory

import "fmt"

// Grade is the four-outcome review rating.
type Grade int

const (
	Again Grade = iota + 1 // failed recall
	Hard
	Good
	Easy
)

// String returns the lowercase grade name.
func (g Grade) String() string {
	switch g {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}

// ParseGrade converts a grade name into a Grade. Used at the CLI and
// storage boundaries; the core only ever sees the typed value.
func ParseGrade(s string) (Grade, error) {
	switch s {
	case "again":
		return Again, nil
	case "hard":
		return Hard, nil
	case "good":
		return Good, nil
	case "easy":
		return Easy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
}
