package distribution

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// AgeBand is an inclusive integer age range with a selection weight.
type AgeBand struct {
	Min    int
	Max    int
	Weight float64
}

// Named age presets. These tables are the documented defaults; products
// needing different demographics pass their own bands to NewAge.
var (
	// AdultBands covers working-age adults with a lighter retirement tail.
	AdultBands = []AgeBand{
		{Min: 18, Max: 30, Weight: 0.25},
		{Min: 31, Max: 45, Weight: 0.30},
		{Min: 46, Max: 65, Weight: 0.30},
		{Min: 66, Max: 85, Weight: 0.15},
	}

	// PediatricBands covers ages 0 through 17.
	PediatricBands = []AgeBand{
		{Min: 0, Max: 2, Weight: 0.20},
		{Min: 3, Max: 5, Weight: 0.20},
		{Min: 6, Max: 12, Weight: 0.35},
		{Min: 13, Max: 17, Weight: 0.25},
	}

	// GeriatricBands covers ages 65 and up.
	GeriatricBands = []AgeBand{
		{Min: 65, Max: 74, Weight: 0.45},
		{Min: 75, Max: 84, Weight: 0.35},
		{Min: 85, Max: 99, Weight: 0.20},
	}

	// GeneralPopulationBands approximates a full population pyramid.
	GeneralPopulationBands = []AgeBand{
		{Min: 0, Max: 17, Weight: 0.22},
		{Min: 18, Max: 34, Weight: 0.23},
		{Min: 35, Max: 54, Weight: 0.26},
		{Min: 55, Max: 74, Weight: 0.21},
		{Min: 75, Max: 99, Weight: 0.08},
	}
)

// presets maps preset names accepted by NewAgePreset.
var presets = map[string][]AgeBand{
	"adult":      AdultBands,
	"pediatric":  PediatricBands,
	"geriatric":  GeriatricBands,
	"general":    GeneralPopulationBands,
	"population": GeneralPopulationBands,
}

// Age samples integer ages by first weighted-selecting a band, then drawing
// uniformly within the band's inclusive range.
type Age struct {
	bands  []AgeBand
	choice WeightedChoice[AgeBand]
}

// NewAge builds an age distribution from explicit bands. Band weights follow
// WeightedChoice rules; a band with Min > Max is rejected.
func NewAge(bands []AgeBand) (Age, error) {
	opts := make([]WeightedOption[AgeBand], len(bands))
	for i, b := range bands {
		if b.Min > b.Max {
			return Age{}, errors.Join(ErrInvalidConfig,
				fmt.Errorf("%w: band %d has min=%d max=%d", ErrInvalidRange, i, b.Min, b.Max))
		}
		opts[i] = WeightedOption[AgeBand]{Value: b, Weight: b.Weight}
	}

	choice, err := NewWeightedChoice(opts)
	if err != nil {
		return Age{}, err
	}
	return Age{bands: bands, choice: choice}, nil
}

// NewAgePreset builds an age distribution from a named preset table.
func NewAgePreset(name string) (Age, error) {
	bands, ok := presets[name]
	if !ok {
		return Age{}, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: %q", ErrUnknownPreset, name))
	}
	return NewAge(bands)
}

// Bands returns the distribution's band table.
func (a Age) Bands() []AgeBand {
	return a.bands
}

// Sample returns an integer age from a weighted band.
func (a Age) Sample(rng *rand.Rand) int {
	band := a.choice.Select(rng)
	if band.Min == band.Max {
		return band.Min
	}
	return band.Min + rng.IntN(band.Max-band.Min+1)
}
