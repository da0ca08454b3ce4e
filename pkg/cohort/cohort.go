package cohort

import (
	"context"

	"github.com/simkit/simkit/pkg/seed"
)

// Runner orchestrates batch generation: it owns the seed lineage for a
// cohort and drives the wrapped generator once per requested index.
//
// A Runner is not safe for concurrent use; determinism depends on a serial
// derivation order. Construct independent Runners over pre-split seed
// managers (seed.Split) to parallelize across cohort partitions.
type Runner[T any] struct {
	gen   Generator[T]
	seeds *seed.Manager
	state State
}

// New returns a Runner over the given generator and seed manager. The Runner
// takes ownership of the manager; callers must not keep deriving from it.
func New[T any](gen Generator[T], sm *seed.Manager) (*Runner[T], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if sm == nil {
		return nil, ErrNilSeedManager
	}
	return &Runner[T]{gen: gen, seeds: sm, state: StateIdle}, nil
}

// State returns the lifecycle state of the most recent run.
func (r *Runner[T]) State() State {
	return r.state
}

// Generate produces up to constraints.Size entities and the final progress
// snapshot.
//
// Per index it derives a child seed, hands the generator a manager scoped to
// that seed, and applies the constraints filter to the result. A generator
// error or a filter rejection consumes one attempt; retries use fresh child
// seeds so no attempt is ever seed-identical to an earlier one. When retries
// are exhausted the failure is recorded and the run continues with the next
// index.
//
// Cancellation of ctx is observed only between indices. An aborted run
// returns the entities accumulated so far with StateAborted progress and a
// nil error; only invalid constraints produce a non-nil error, before any
// generation work starts.
func (r *Runner[T]) Generate(ctx context.Context, constraints Constraints[T]) ([]T, Progress, error) {
	if err := constraints.Validate(); err != nil {
		return nil, Progress{State: StateIdle}, err
	}

	progress := Progress{
		TotalRequested: constraints.Size,
		State:          StateRunning,
	}
	r.state = StateRunning

	entities := make([]T, 0, constraints.Size)
	maxRetries := constraints.retries()

	for index := 0; index < constraints.Size; index++ {
		select {
		case <-ctx.Done():
			r.state = StateAborted
			progress.State = StateAborted
			return entities, progress.snapshot(), nil
		default:
		}

		entity, failure, ok := r.attempt(index, constraints.Filter, maxRetries)
		if ok {
			entities = append(entities, entity)
			progress.Completed++
			continue
		}
		progress.Failed++
		progress.Failures = append(progress.Failures, failure)
	}

	r.state = StateCompleted
	progress.State = StateCompleted
	return entities, progress.snapshot(), nil
}

// attempt runs one cohort slot through the retry policy. Each attempt,
// including retries, derives its own child seed.
func (r *Runner[T]) attempt(index int, filter func(T) bool, maxRetries int) (T, Failure, bool) {
	var lastFailure Failure

	for attempt := 0; attempt <= maxRetries; attempt++ {
		child := seed.New(r.seeds.ChildSeed())

		entity, err := r.gen.GenerateOne(child)
		if err != nil {
			lastFailure = Failure{Index: index, Kind: FailureGenerator, Message: err.Error()}
			continue
		}
		if filter != nil && !filter(entity) {
			lastFailure = Failure{Index: index, Kind: FailureFiltered, Message: ErrFiltered.Error()}
			continue
		}
		return entity, Failure{}, true
	}

	var zero T
	return zero, lastFailure, false
}
