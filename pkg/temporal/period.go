package temporal

import "time"

// Period is a span of time with a start and an optional end. A nil end means
// the period is ongoing.
type Period struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// NewPeriod validates and returns a period. end may be nil for an open-ended
// span; a non-nil end must not precede start.
func NewPeriod(start time.Time, end *time.Time) (Period, error) {
	if end != nil && end.Before(start) {
		return Period{}, ErrEndBeforeStart
	}
	return Period{Start: start, End: end}, nil
}

// Closed is a convenience constructor for a bounded period.
func Closed(start, end time.Time) (Period, error) {
	return NewPeriod(start, &end)
}

// Open returns an ongoing period starting at start.
func Open(start time.Time) Period {
	return Period{Start: start}
}

// Duration returns the period's length and true, or zero and false when the
// period is open-ended.
func (p Period) Duration() (time.Duration, bool) {
	if p.End == nil {
		return 0, false
	}
	return p.End.Sub(p.Start), true
}

// Hours returns the duration in hours, or false for open-ended periods.
func (p Period) Hours() (float64, bool) {
	d, ok := p.Duration()
	if !ok {
		return 0, false
	}
	return d.Hours(), true
}

// Days returns the duration in days, or false for open-ended periods.
func (p Period) Days() (float64, bool) {
	d, ok := p.Duration()
	if !ok {
		return 0, false
	}
	return d.Hours() / 24, true
}

// IsActive reports whether the period contains the current time, or has
// started and never ends.
func (p Period) IsActive() bool {
	return p.Contains(time.Now())
}

// Contains reports whether t falls within the period, bounds inclusive.
func (p Period) Contains(t time.Time) bool {
	if t.Before(p.Start) {
		return false
	}
	return p.End == nil || !t.After(*p.End)
}

// Overlaps reports whether two periods share any instant. Open-ended
// periods extend indefinitely.
func (p Period) Overlaps(other Period) bool {
	pEnd := endOrMax(p.End)
	oEnd := endOrMax(other.End)
	return p.Start.Before(oEnd) && other.Start.Before(pEnd)
}

// Merge returns a period spanning both inputs. It fails when the periods do
// not overlap; merging with an open-ended period yields an open-ended
// result.
func (p Period) Merge(other Period) (Period, error) {
	if !p.Overlaps(other) {
		return Period{}, ErrNoOverlap
	}

	start := p.Start
	if other.Start.Before(start) {
		start = other.Start
	}

	if p.End == nil || other.End == nil {
		return Period{Start: start}, nil
	}
	end := *p.End
	if other.End.After(end) {
		end = *other.End
	}
	return Period{Start: start, End: &end}, nil
}

// endOrMax substitutes a far-future sentinel for open ends so interval
// arithmetic stays uniform.
func endOrMax(end *time.Time) time.Time {
	if end == nil {
		return time.Unix(1<<62, 0)
	}
	return *end
}
