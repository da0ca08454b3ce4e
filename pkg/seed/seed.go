package seed

import (
	"math/rand/v2"
	"slices"
)

// goldenGamma is the 64-bit golden ratio constant used to decorrelate
// derived seeds from their parent.
const goldenGamma = 0x9e3779b97f4a7c15

// Manager derives reproducible child seeds from a master seed and exposes a
// deterministic RNG for direct sampling. The two concerns use independent
// internal state: consuming entropy from the RNG does not affect seed
// derivation, and vice versa.
//
// A Manager is not safe for concurrent use. Derive independent managers
// (one per goroutine) instead of sharing one.
type Manager struct {
	masterSeed int64
	rng        *rand.Rand
	path       []uint64
}

// New returns a Manager seeded with masterSeed. Any integer is a valid seed,
// including zero and negative values supplied by upstream callers for exact
// cross-run reproducibility.
func New(masterSeed int64) *Manager {
	return &Manager{
		masterSeed: masterSeed,
		rng:        newRand(masterSeed),
		path:       []uint64{0},
	}
}

// newRand builds a rand/v2 PCG generator from a single int64, mixing it into
// the two 64-bit states the source requires.
func newRand(s int64) *rand.Rand {
	u := uint64(s)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenGamma)))
}

// mix is the splitmix64 finalizer. It spreads low-entropy inputs (small or
// sequential seeds) across the full 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Seed returns the master seed the manager was constructed with.
func (m *Manager) Seed() int64 {
	return m.masterSeed
}

// DerivationPath returns a copy of the per-level child counters. The last
// element is the number of child seeds issued at the current nesting level.
func (m *Manager) DerivationPath() []uint64 {
	return slices.Clone(m.path)
}

// ChildSeed deterministically derives the next child seed from the master
// seed and the current derivation path, then advances the path. Successive
// calls return distinct values; replaying the same call sequence on a fresh
// manager with the same master seed reproduces the identical sequence.
func (m *Manager) ChildSeed() int64 {
	h := mix(uint64(m.masterSeed) ^ goldenGamma)
	for _, c := range m.path {
		h = mix(h ^ (c + goldenGamma))
	}
	m.path[len(m.path)-1]++
	return int64(h)
}

// Child derives the next child seed and wraps it in a new Manager.
func (m *Manager) Child() *Manager {
	return New(m.ChildSeed())
}

// Descend pushes a new derivation level so nested generators get their own
// counter lane. Pair with Ascend.
func (m *Manager) Descend() {
	m.path = append(m.path, 0)
}

// Ascend pops the current derivation level. Popping the root level is a
// no-op.
func (m *Manager) Ascend() {
	if len(m.path) > 1 {
		m.path = m.path[:len(m.path)-1]
	}
}

// Reset restores the manager to its freshly constructed state: the sampling
// RNG is re-seeded and the derivation path is cleared.
func (m *Manager) Reset() {
	m.rng = newRand(m.masterSeed)
	m.path = []uint64{0}
}

// RNG exposes the manager's sampling generator for use with distributions.
// Draws consume entropy from the manager's own stream only.
func (m *Manager) RNG() *rand.Rand {
	return m.rng
}

// Int returns a random integer in [low, high] inclusive. low > high is
// treated as an empty range and returns low.
func (m *Manager) Int(low, high int) int {
	if low >= high {
		return low
	}
	return low + m.rng.IntN(high-low+1)
}

// Float64 returns a random float in [0, 1).
func (m *Manager) Float64() float64 {
	return m.rng.Float64()
}

// Bool returns true with probability p. Values outside [0, 1] are clamped.
func (m *Manager) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return m.rng.Float64() < p
}

// Pick returns a uniformly chosen element of items. Panics if items is empty,
// mirroring slice indexing semantics.
func Pick[T any](m *Manager, items []T) T {
	return items[m.rng.IntN(len(items))]
}

// Sample returns n elements drawn from items without replacement, in random
// order. If n exceeds len(items) the whole collection is returned shuffled;
// n <= 0 returns an empty slice.
func Sample[T any](m *Manager, items []T, n int) []T {
	out := slices.Clone(items)
	m.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Split serially derives n independent child managers. This is the supported
// pattern for parallel generation: derivation happens on the caller's
// goroutine, then each worker owns one manager outright and no state is
// shared.
func Split(m *Manager, n int) []*Manager {
	children := make([]*Manager, n)
	for i := range children {
		children[i] = m.Child()
	}
	return children
}
