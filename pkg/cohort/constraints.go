package cohort

import (
	"errors"
	"fmt"
)

// DefaultMaxRetries is the retry bound applied when Constraints.MaxRetries
// is zero. It counts retries after the first attempt, so a slot is tried at
// most DefaultMaxRetries+1 times before it is recorded as failed.
const DefaultMaxRetries = 3

// NoRetries disables retrying: every slot gets exactly one attempt.
const NoRetries = -1

// Constraints is the immutable configuration for one cohort run.
type Constraints[T any] struct {
	// Size is the number of entities requested. Must be positive.
	Size int

	// Filter optionally rejects generated entities. A rejected entity
	// counts as a failed attempt and is retried like a generation error.
	Filter func(T) bool

	// MaxRetries bounds retries per slot. Zero selects DefaultMaxRetries;
	// NoRetries disables retrying. Other negative values are invalid.
	MaxRetries int
}

// Validate checks the constraints before any generation work starts.
func (c Constraints[T]) Validate() error {
	if c.Size <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size))
	}
	if c.MaxRetries < NoRetries {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("%w: got %d", ErrInvalidRetries, c.MaxRetries))
	}
	return nil
}

// retries resolves the effective retry bound.
func (c Constraints[T]) retries() int {
	switch c.MaxRetries {
	case 0:
		return DefaultMaxRetries
	case NoRetries:
		return 0
	default:
		return c.MaxRetries
	}
}
