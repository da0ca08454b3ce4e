package distribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simkit/simkit/pkg/distribution"
	"github.com/simkit/simkit/pkg/seed"
)

func TestWeightedChoiceConstruction(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty options", func(t *testing.T) {
		t.Parallel()
		_, err := distribution.NewWeightedChoice[string](nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, distribution.ErrInvalidConfig)
		assert.ErrorIs(t, err, distribution.ErrNoOptions)
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		t.Parallel()
		_, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
			{Value: "a", Weight: 1},
			{Value: "b", Weight: -0.5},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, distribution.ErrNegativeWeight)
	})

	t.Run("rejects all-zero weights", func(t *testing.T) {
		t.Parallel()
		_, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
			{Value: "a", Weight: 0},
			{Value: "b", Weight: 0},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, distribution.ErrZeroTotalWeight)
	})

	t.Run("weights need not sum to one", func(t *testing.T) {
		t.Parallel()
		wc, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
			{Value: "a", Weight: 10},
			{Value: "b", Weight: 30},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, wc.Len())
	})
}

func TestWeightedChoiceSelect(t *testing.T) {
	t.Parallel()

	t.Run("ratio fidelity", func(t *testing.T) {
		t.Parallel()
		wc, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
			{Value: "A", Weight: 1},
			{Value: "B", Weight: 3},
		})
		require.NoError(t, err)

		rng := seed.New(42).RNG()
		counts := map[string]int{}
		const trials = 100000
		for i := 0; i < trials; i++ {
			counts[wc.Select(rng)]++
		}

		// Expect B:A near 3:1. With 100k trials the B share should be
		// within one percentage point of 75%.
		assert.InDelta(t, 0.75, float64(counts["B"])/trials, 0.01)
		assert.Equal(t, trials, counts["A"]+counts["B"])
	})

	t.Run("zero-weight options are never selected", func(t *testing.T) {
		t.Parallel()
		wc, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
			{Value: "never", Weight: 0},
			{Value: "always", Weight: 1},
		})
		require.NoError(t, err)

		rng := seed.New(42).RNG()
		for i := 0; i < 1000; i++ {
			require.Equal(t, "always", wc.Select(rng))
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		t.Parallel()
		wc, err := distribution.NewWeightedChoice([]distribution.WeightedOption[int]{
			{Value: 1, Weight: 0.2},
			{Value: 2, Weight: 0.3},
			{Value: 3, Weight: 0.5},
		})
		require.NoError(t, err)

		draw := func() []int {
			return wc.SelectN(seed.New(7).RNG(), 50)
		}
		assert.Equal(t, draw(), draw())
	})
}

func TestWeightedChoiceSelectN(t *testing.T) {
	t.Parallel()

	wc, err := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 1},
		{Value: "c", Weight: 1},
	})
	require.NoError(t, err)

	t.Run("with replacement", func(t *testing.T) {
		t.Parallel()
		got := wc.SelectN(seed.New(42).RNG(), 5)
		require.Len(t, got, 5)
		for _, v := range got {
			assert.Contains(t, []string{"a", "b", "c"}, v)
		}
	})

	t.Run("unique selection exhausts options", func(t *testing.T) {
		t.Parallel()
		got, err := wc.SelectUnique(seed.New(42).RNG(), 3)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
	})

	t.Run("unique selection over-ask fails", func(t *testing.T) {
		t.Parallel()
		_, err := wc.SelectUnique(seed.New(42).RNG(), 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, distribution.ErrNotEnoughOptions)
	})
}
