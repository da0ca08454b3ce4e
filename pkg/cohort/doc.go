// Package cohort orchestrates batch generation of synthetic entities under
// shared constraints and a shared seed lineage.
//
// A Runner couples an entity generator with a seed.Manager. For each
// requested index it derives a child seed, invokes the generator with a
// manager scoped to that seed, and records the outcome in a Progress value.
// A failed or filtered attempt is retried with a fresh child seed up to a
// configurable bound; exhausted retries record a failure entry and the run
// moves on, so one bad slot never aborts the batch.
//
// # Architecture
//
//   - The generator capability is an interface (or the Func adapter for
//     closures): GenerateOne receives a dedicated seed manager so every
//     attempt is independently reproducible from the master seed alone.
//   - Runs are single-threaded by design; deterministic replay depends on a
//     serial derivation order. For parallel fan-out, pre-derive one child
//     manager per worker with seed.Split and run independent Runners.
//   - Cancellation is cooperative and only observed between indices, never
//     mid-attempt. An aborted run returns the entities accumulated so far
//     along with a Progress snapshot in StateAborted; partial results are
//     always valid.
//
// # Usage
//
//	gen := cohort.Func[int](func(sm *seed.Manager) (int, error) {
//	    return sm.Int(1, 100), nil
//	})
//	r := cohort.New(gen, seed.New(42))
//	entities, progress, err := r.Generate(ctx, cohort.Constraints[int]{Size: 50})
//
// Callers distinguish "fully succeeded", "partially succeeded with N
// failures", and "aborted early" by inspecting the returned Progress.
package cohort
