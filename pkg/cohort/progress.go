package cohort

import "slices"

// State tracks the lifecycle of a cohort run.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateAborted   State = "aborted"
)

// FailureKind classifies why a slot's attempts were exhausted.
type FailureKind string

const (
	// FailureGenerator means the generator returned an error.
	FailureGenerator FailureKind = "generator_error"
	// FailureFiltered means the entity was generated but rejected by the
	// constraints filter.
	FailureFiltered FailureKind = "filtered"
)

// Failure records one exhausted slot: its cohort index, the kind of the
// final attempt's failure, and the failure message.
type Failure struct {
	Index   int
	Kind    FailureKind
	Message string
}

// Progress is the per-run accounting handed back to the caller. During a run
// it is owned exclusively by the Runner; the returned value is a snapshot
// safe to retain.
type Progress struct {
	TotalRequested int
	Completed      int
	Failed         int
	Failures       []Failure
	State          State
}

// Succeeded reports whether every requested entity was generated.
func (p Progress) Succeeded() bool {
	return p.State == StateCompleted && p.Failed == 0
}

// Partial reports whether the run completed with at least one failed slot.
func (p Progress) Partial() bool {
	return p.State == StateCompleted && p.Failed > 0
}

// Aborted reports whether the run stopped at a caller-initiated checkpoint.
func (p Progress) Aborted() bool {
	return p.State == StateAborted
}

// snapshot returns a defensive copy so later runs cannot mutate a value the
// caller already holds.
func (p Progress) snapshot() Progress {
	p.Failures = slices.Clone(p.Failures)
	return p
}
