package cohort

import "github.com/simkit/simkit/pkg/seed"

// Generator produces one entity per call using the provided seed manager as
// its only randomness source. Implementations must not consult ambient
// random state: every draw flows through sm or a distribution sampled with
// sm's RNG, which is what makes whole runs replayable from the master seed.
type Generator[T any] interface {
	GenerateOne(sm *seed.Manager) (T, error)
}

// Func adapts a closure to the Generator capability.
type Func[T any] func(sm *seed.Manager) (T, error)

// GenerateOne calls the wrapped closure.
func (f Func[T]) GenerateOne(sm *seed.Manager) (T, error) {
	return f(sm)
}
