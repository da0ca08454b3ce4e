package cohort

import "errors"

var (
	// ErrInvalidConfig is the common kind wrapped by constraint validation
	// errors, mirroring the distribution package's configuration errors.
	ErrInvalidConfig = errors.New("cohort: invalid configuration")

	// ErrInvalidSize is returned when a cohort is requested with a
	// non-positive size.
	ErrInvalidSize = errors.New("cohort: size must be positive")

	// ErrInvalidRetries is returned when the retry bound is negative and not
	// the NoRetries sentinel.
	ErrInvalidRetries = errors.New("cohort: invalid retry bound")

	// ErrNilGenerator is returned when a Runner is constructed without a
	// generator.
	ErrNilGenerator = errors.New("cohort: generator must not be nil")

	// ErrNilSeedManager is returned when a Runner is constructed without a
	// seed manager.
	ErrNilSeedManager = errors.New("cohort: seed manager must not be nil")

	// ErrFiltered marks an attempt whose entity was produced successfully
	// but rejected by the constraints filter.
	ErrFiltered = errors.New("cohort: entity rejected by filter")
)
