package memory

import "errors"

var (
	// ErrInvalidParams is returned by NewEngine for out-of-range parameters.
	ErrInvalidParams = errors.New("memory: invalid parameters")

	// ErrInvalidGrade is returned by ParseGrade for unknown grade names.
	ErrInvalidGrade = errors.New("memory: invalid grade")
)
