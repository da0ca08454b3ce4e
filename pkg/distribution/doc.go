// Package distribution provides stateless statistical samplers for synthetic
// data generation: uniform and normal distributions, weighted choice over
// arbitrary option sets, and banded age distributions with named presets.
//
// Every sampler is immutable once constructed and pure in the RNG passed to
// its sampling method: sampling mutates only the caller's generator, never
// the distribution. This makes a single distribution value safe to share
// across goroutines as long as each goroutine draws from its own RNG (see
// the seed package for deriving independent generators).
//
// # Architecture
//
//   - Constructors validate parameters eagerly and return errors wrapping
//     ErrInvalidConfig, so a misconfigured sampler can never reach a
//     generation run.
//   - WeightedChoice selects with a single uniform draw over the total weight
//     followed by a cumulative scan; ties resolve to the first matching
//     option in list order, keeping selection deterministic for a given draw.
//   - Age distributions compose weighted band selection with a uniform
//     integer draw inside the chosen band. Presets are plain exported tables,
//     not hidden constants.
//
// # Usage
//
//	sm := seed.New(42)
//	u, _ := distribution.NewUniform(0, 100)
//	v := u.Sample(sm.RNG())
//
//	wc, _ := distribution.NewWeightedChoice([]distribution.WeightedOption[string]{
//	    {Value: "common", Weight: 0.7},
//	    {Value: "rare", Weight: 0.3},
//	})
//	s := wc.Select(sm.RNG())
package distribution
