package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Distribution is the capability shared by continuous samplers: a pure
// function of the caller's RNG state and the distribution's own immutable
// parameters.
type Distribution interface {
	Sample(rng *rand.Rand) float64
}

// Uniform draws values with equal probability from [Min, Max].
type Uniform struct {
	min float64
	max float64
}

// NewUniform returns a uniform distribution over the inclusive range
// [min, max]. It fails if min > max.
func NewUniform(min, max float64) (Uniform, error) {
	if min > max {
		return Uniform{}, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: min=%v max=%v", ErrInvalidRange, min, max))
	}
	return Uniform{min: min, max: max}, nil
}

// Min returns the lower bound of the range.
func (u Uniform) Min() float64 { return u.min }

// Max returns the upper bound of the range.
func (u Uniform) Max() float64 { return u.max }

// Sample returns a value in [Min, Max].
func (u Uniform) Sample(rng *rand.Rand) float64 {
	return u.min + rng.Float64()*(u.max-u.min)
}

// SampleInt returns an integer drawn uniformly from the inclusive range
// [Min, Max] with both bounds truncated to integers.
func (u Uniform) SampleInt(rng *rand.Rand) int {
	lo, hi := int(u.min), int(u.max)
	if lo >= hi {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Normal draws values from a Gaussian law with the given mean and standard
// deviation.
type Normal struct {
	mean   float64
	stdDev float64
}

// NewNormal returns a normal distribution. It fails if stdDev <= 0.
func NewNormal(mean, stdDev float64) (Normal, error) {
	if stdDev <= 0 {
		return Normal{}, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: got %v", ErrInvalidStdDev, stdDev))
	}
	return Normal{mean: mean, stdDev: stdDev}, nil
}

// Mean returns the distribution mean.
func (n Normal) Mean() float64 { return n.mean }

// StdDev returns the distribution standard deviation.
func (n Normal) StdDev() float64 { return n.stdDev }

// Sample returns a value drawn from the normal law.
func (n Normal) Sample(rng *rand.Rand) float64 {
	return n.mean + rng.NormFloat64()*n.stdDev
}

// SampleInt samples and rounds to the nearest integer.
func (n Normal) SampleInt(rng *rand.Rand) int {
	return int(math.Round(n.Sample(rng)))
}

// boundedAttempts caps rejection sampling in SampleBounded before falling
// back to clamping.
const boundedAttempts = 1000

// SampleBounded samples with rejection until the value lands in
// [min, max], falling back to a clamped draw after a fixed attempt budget.
// Use math.Inf bounds to leave a side open.
func (n Normal) SampleBounded(rng *rand.Rand, min, max float64) float64 {
	for i := 0; i < boundedAttempts; i++ {
		v := n.Sample(rng)
		if v >= min && v <= max {
			return v
		}
	}
	return math.Min(math.Max(n.Sample(rng), min), max)
}
