package distribution

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// WeightedOption pairs a candidate value with its selection weight. Weights
// need not sum to one; only their ratios matter.
type WeightedOption[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice selects from an ordered option list with probability
// proportional to each option's weight.
type WeightedChoice[T any] struct {
	options []WeightedOption[T]
	total   float64
}

// NewWeightedChoice validates and freezes the option list. It fails when the
// list is empty, any weight is negative, or all weights are zero.
func NewWeightedChoice[T any](options []WeightedOption[T]) (WeightedChoice[T], error) {
	if len(options) == 0 {
		return WeightedChoice[T]{}, errors.Join(ErrInvalidConfig, ErrNoOptions)
	}

	var total float64
	for i, opt := range options {
		if opt.Weight < 0 {
			return WeightedChoice[T]{}, errors.Join(ErrInvalidConfig,
				fmt.Errorf("%w: option %d has weight %v", ErrNegativeWeight, i, opt.Weight))
		}
		total += opt.Weight
	}
	if total == 0 {
		return WeightedChoice[T]{}, errors.Join(ErrInvalidConfig, ErrZeroTotalWeight)
	}

	return WeightedChoice[T]{options: slices.Clone(options), total: total}, nil
}

// Len returns the number of options.
func (wc WeightedChoice[T]) Len() int {
	return len(wc.options)
}

// Select returns one option value. Selection uses a single uniform draw over
// the total weight followed by a cumulative scan; a draw landing exactly on a
// boundary resolves to the earlier option in list order.
func (wc WeightedChoice[T]) Select(rng *rand.Rand) T {
	draw := rng.Float64() * wc.total
	var cum float64
	for _, opt := range wc.options {
		cum += opt.Weight
		if draw < cum {
			return opt.Value
		}
	}
	// Float accumulation can leave draw == total; attribute it to the last
	// option with non-zero weight.
	for i := len(wc.options) - 1; i >= 0; i-- {
		if wc.options[i].Weight > 0 {
			return wc.options[i].Value
		}
	}
	return wc.options[len(wc.options)-1].Value
}

// SelectN returns n option values drawn with replacement.
func (wc WeightedChoice[T]) SelectN(rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = wc.Select(rng)
	}
	return out
}

// SelectUnique returns n distinct option values, removing each selected
// option from the candidate pool before the next draw. It fails when n
// exceeds the number of options.
func (wc WeightedChoice[T]) SelectUnique(rng *rand.Rand, n int) ([]T, error) {
	if n > len(wc.options) {
		return nil, fmt.Errorf("%w: want %d of %d", ErrNotEnoughOptions, n, len(wc.options))
	}

	remaining := slices.Clone(wc.options)
	total := wc.total
	out := make([]T, 0, n)

	for len(out) < n {
		draw := rng.Float64() * total
		idx := len(remaining) - 1
		var cum float64
		for i, opt := range remaining {
			cum += opt.Weight
			if draw < cum {
				idx = i
				break
			}
		}
		out = append(out, remaining[idx].Value)
		total -= remaining[idx].Weight
		remaining = slices.Delete(remaining, idx, idx+1)
	}
	return out, nil
}
