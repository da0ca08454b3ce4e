package distribution

import "errors"

var (
	// ErrInvalidConfig is the common kind wrapped by every construction
	// error in this package, so callers can match any misconfiguration
	// with a single errors.Is check.
	ErrInvalidConfig = errors.New("distribution: invalid configuration")

	// ErrInvalidRange is returned when a range's minimum exceeds its maximum.
	ErrInvalidRange = errors.New("distribution: min must not exceed max")

	// ErrInvalidStdDev is returned when a normal distribution is constructed
	// with a non-positive standard deviation.
	ErrInvalidStdDev = errors.New("distribution: std dev must be positive")

	// ErrNoOptions is returned when a weighted choice has no options.
	ErrNoOptions = errors.New("distribution: no options to select from")

	// ErrNegativeWeight is returned when any option weight is negative.
	ErrNegativeWeight = errors.New("distribution: weights must be non-negative")

	// ErrZeroTotalWeight is returned when all option weights are zero.
	ErrZeroTotalWeight = errors.New("distribution: total weight must be positive")

	// ErrNotEnoughOptions is returned when a unique multi-select asks for
	// more values than there are options.
	ErrNotEnoughOptions = errors.New("distribution: not enough options for unique selection")

	// ErrUnknownPreset is returned for an unrecognized age preset name.
	ErrUnknownPreset = errors.New("distribution: unknown age preset")
)
