package temporal

import "errors"

var (
	// ErrEndBeforeStart is returned when a period's end precedes its start.
	ErrEndBeforeStart = errors.New("temporal: end must not be before start")

	// ErrNoOverlap is returned when merging periods that do not overlap.
	ErrNoOverlap = errors.New("temporal: cannot merge non-overlapping periods")

	// ErrInvalidDateRange is returned when a random date is requested from
	// an inverted range.
	ErrInvalidDateRange = errors.New("temporal: range end must not be before start")
)
