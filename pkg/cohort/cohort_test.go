package cohort_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simkit/simkit/pkg/cohort"
	"github.com/simkit/simkit/pkg/seed"
)

// intGen produces one bounded integer per call, optionally failing on demand.
func intGen(failOn func(call int) bool) cohort.Generator[int] {
	calls := 0
	return cohort.Func[int](func(sm *seed.Manager) (int, error) {
		calls++
		if failOn != nil && failOn(calls) {
			return 0, errors.New("synthetic generator failure")
		}
		return sm.Int(1, 1000), nil
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil generator", func(t *testing.T) {
		t.Parallel()
		_, err := cohort.New[int](nil, seed.New(1))
		assert.ErrorIs(t, err, cohort.ErrNilGenerator)
	})

	t.Run("rejects nil seed manager", func(t *testing.T) {
		t.Parallel()
		_, err := cohort.New(intGen(nil), nil)
		assert.ErrorIs(t, err, cohort.ErrNilSeedManager)
	})

	t.Run("starts idle", func(t *testing.T) {
		t.Parallel()
		r, err := cohort.New(intGen(nil), seed.New(1))
		require.NoError(t, err)
		assert.Equal(t, cohort.StateIdle, r.State())
	})
}

func TestConstraintsValidation(t *testing.T) {
	t.Parallel()

	t.Run("zero size rejected before any sampling", func(t *testing.T) {
		t.Parallel()
		sampled := false
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			sampled = true
			return 0, nil
		})
		r, err := cohort.New(gen, seed.New(1))
		require.NoError(t, err)

		_, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, cohort.ErrInvalidConfig)
		assert.ErrorIs(t, err, cohort.ErrInvalidSize)
		assert.False(t, sampled)
		assert.Equal(t, cohort.StateIdle, progress.State)
	})

	t.Run("negative size rejected", func(t *testing.T) {
		t.Parallel()
		r, err := cohort.New(intGen(nil), seed.New(1))
		require.NoError(t, err)

		_, _, err = r.Generate(context.Background(), cohort.Constraints[int]{Size: -5})
		assert.ErrorIs(t, err, cohort.ErrInvalidSize)
	})

	t.Run("invalid retry bound rejected", func(t *testing.T) {
		t.Parallel()
		r, err := cohort.New(intGen(nil), seed.New(1))
		require.NoError(t, err)

		_, _, err = r.Generate(context.Background(), cohort.Constraints[int]{Size: 1, MaxRetries: -2})
		assert.ErrorIs(t, err, cohort.ErrInvalidRetries)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("size invariant", func(t *testing.T) {
		t.Parallel()
		r, err := cohort.New(intGen(nil), seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 50})
		require.NoError(t, err)

		assert.Equal(t, 50, progress.TotalRequested)
		assert.Equal(t, 50, progress.Completed+progress.Failed)
		assert.Len(t, entities, progress.Completed)
		assert.Equal(t, cohort.StateCompleted, progress.State)
		assert.True(t, progress.Succeeded())
	})

	t.Run("deterministic replay", func(t *testing.T) {
		t.Parallel()
		run := func() []int {
			r, err := cohort.New(intGen(nil), seed.New(42))
			require.NoError(t, err)
			entities, _, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 20})
			require.NoError(t, err)
			return entities
		}
		assert.Equal(t, run(), run())
	})

	t.Run("failure is contained to its slot", func(t *testing.T) {
		t.Parallel()
		// Fail every attempt so one slot exhausts its retries.
		failing := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			failing++
			if failing >= 11 && failing <= 14 { // slot index 10, all 4 attempts
				return 0, errors.New("boom")
			}
			return sm.Int(1, 1000), nil
		})
		r, err := cohort.New(gen, seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 20})
		require.NoError(t, err)

		assert.Equal(t, 19, progress.Completed)
		assert.Equal(t, 1, progress.Failed)
		assert.Len(t, entities, 19)
		require.Len(t, progress.Failures, 1)
		assert.Equal(t, 10, progress.Failures[0].Index)
		assert.Equal(t, cohort.FailureGenerator, progress.Failures[0].Kind)
		assert.Equal(t, "boom", progress.Failures[0].Message)
		assert.True(t, progress.Partial())
	})

	t.Run("retry succeeds with a fresh seed", func(t *testing.T) {
		t.Parallel()
		var seeds []int64
		attempts := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			attempts++
			seeds = append(seeds, sm.Seed())
			if attempts == 4 { // first attempt of slot 3
				return 0, errors.New("transient")
			}
			return sm.Int(1, 1000), nil
		})
		r, err := cohort.New(gen, seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 10})
		require.NoError(t, err)

		assert.Equal(t, 10, progress.Completed)
		assert.Zero(t, progress.Failed)
		assert.Len(t, entities, 10)

		// Slot 3 was attempted twice; the retry used a distinct child seed.
		require.Len(t, seeds, 11)
		assert.NotEqual(t, seeds[3], seeds[4])
	})

	t.Run("retry does not shift later slots relative to their own seeds", func(t *testing.T) {
		t.Parallel()
		// A run with one transient failure must still assign entities in
		// ascending index order with completed+failed == size.
		attempts := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			attempts++
			if attempts == 1 {
				return 0, errors.New("transient")
			}
			return sm.Int(1, 1000), nil
		})
		r, err := cohort.New(gen, seed.New(7))
		require.NoError(t, err)

		entities, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 5})
		require.NoError(t, err)
		assert.Len(t, entities, 5)
		assert.Equal(t, 5, progress.Completed)
	})

	t.Run("no retries when disabled", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			attempts++
			return 0, errors.New("always fails")
		})
		r, err := cohort.New(gen, seed.New(1))
		require.NoError(t, err)

		_, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{
			Size:       5,
			MaxRetries: cohort.NoRetries,
		})
		require.NoError(t, err)

		assert.Equal(t, 5, attempts)
		assert.Equal(t, 5, progress.Failed)
	})

	t.Run("default retry bound", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			attempts++
			return 0, errors.New("always fails")
		})
		r, err := cohort.New(gen, seed.New(1))
		require.NoError(t, err)

		_, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 1})
		require.NoError(t, err)

		// One attempt plus DefaultMaxRetries retries.
		assert.Equal(t, cohort.DefaultMaxRetries+1, attempts)
		assert.Equal(t, 1, progress.Failed)
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("rejection is retried then recorded as filtered", func(t *testing.T) {
		t.Parallel()
		gen := intGen(nil)
		r, err := cohort.New(gen, seed.New(42))
		require.NoError(t, err)

		_, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{
			Size:   5,
			Filter: func(int) bool { return false },
		})
		require.NoError(t, err)

		assert.Zero(t, progress.Completed)
		assert.Equal(t, 5, progress.Failed)
		for _, f := range progress.Failures {
			assert.Equal(t, cohort.FailureFiltered, f.Kind)
		}
	})

	t.Run("accepted entities satisfy the filter", func(t *testing.T) {
		t.Parallel()
		r, err := cohort.New(intGen(nil), seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(context.Background(), cohort.Constraints[int]{
			Size:       30,
			Filter:     func(v int) bool { return v%2 == 0 },
			MaxRetries: 20,
		})
		require.NoError(t, err)

		for _, v := range entities {
			assert.Zero(t, v%2)
		}
		assert.Equal(t, 30, progress.Completed+progress.Failed)
	})
}

func TestAbort(t *testing.T) {
	t.Parallel()

	t.Run("partial results survive cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())

		generated := 0
		gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
			generated++
			if generated == 20 {
				cancel() // observed at the next index boundary
			}
			return sm.Int(1, 1000), nil
		})
		r, err := cohort.New(gen, seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(ctx, cohort.Constraints[int]{Size: 50})
		require.NoError(t, err)

		assert.Len(t, entities, 20)
		assert.Equal(t, 20, progress.Completed)
		assert.Equal(t, 50, progress.TotalRequested)
		assert.Equal(t, cohort.StateAborted, progress.State)
		assert.Equal(t, cohort.StateAborted, r.State())
		assert.True(t, progress.Aborted())
	})

	t.Run("pre-canceled context yields an empty aborted run", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r, err := cohort.New(intGen(nil), seed.New(42))
		require.NoError(t, err)

		entities, progress, err := r.Generate(ctx, cohort.Constraints[int]{Size: 10})
		require.NoError(t, err)

		assert.Empty(t, entities)
		assert.Zero(t, progress.Completed)
		assert.Equal(t, 10, progress.TotalRequested)
		assert.Equal(t, cohort.StateAborted, progress.State)
	})
}

func TestProgressSnapshotIsolation(t *testing.T) {
	t.Parallel()

	gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
		return 0, errors.New("always fails")
	})
	r, err := cohort.New(gen, seed.New(1))
	require.NoError(t, err)

	_, first, err := r.Generate(context.Background(), cohort.Constraints[int]{Size: 2, MaxRetries: cohort.NoRetries})
	require.NoError(t, err)
	require.Len(t, first.Failures, 2)

	// A second run must not mutate the snapshot from the first.
	_, _, err = r.Generate(context.Background(), cohort.Constraints[int]{Size: 3, MaxRetries: cohort.NoRetries})
	require.NoError(t, err)
	assert.Len(t, first.Failures, 2)
}
