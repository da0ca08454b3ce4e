package temporal

import (
	"slices"
	"time"
)

// Event is a point-in-time occurrence on a timeline.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Timeline is a chronologically ordered event sequence scoped to one entity.
// The zero value is not usable; construct with NewTimeline.
type Timeline struct {
	entityID string
	events   []Event
}

// NewTimeline returns an empty timeline for the given entity.
func NewTimeline(entityID string) *Timeline {
	return &Timeline{entityID: entityID}
}

// EntityID returns the owning entity's identifier.
func (tl *Timeline) EntityID() string {
	return tl.entityID
}

// AddEvent inserts an event, keeping the sequence sorted by timestamp.
// Events with equal timestamps keep insertion order.
func (tl *Timeline) AddEvent(e Event) {
	idx, _ := slices.BinarySearchFunc(tl.events, e, func(a, b Event) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	// BinarySearchFunc returns the first matching index; advance past equal
	// timestamps to keep insertion order stable.
	for idx < len(tl.events) && tl.events[idx].Timestamp.Equal(e.Timestamp) {
		idx++
	}
	tl.events = slices.Insert(tl.events, idx, e)
}

// Events returns the events in chronological order. The slice is a copy;
// mutating it does not affect the timeline.
func (tl *Timeline) Events() []Event {
	return slices.Clone(tl.events)
}

// EventsByType returns all events of the given type in chronological order.
func (tl *Timeline) EventsByType(eventType string) []Event {
	var out []Event
	for _, e := range tl.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// EventsInRange returns all events with start <= timestamp <= end.
func (tl *Timeline) EventsInRange(start, end time.Time) []Event {
	var out []Event
	for _, e := range tl.events {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// EventByID returns the event with the given ID and true, or false when no
// such event exists.
func (tl *Timeline) EventByID(id string) (Event, bool) {
	for _, e := range tl.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// First returns the earliest event, or false when the timeline is empty.
func (tl *Timeline) First() (Event, bool) {
	if len(tl.events) == 0 {
		return Event{}, false
	}
	return tl.events[0], true
}

// Last returns the most recent event, or false when the timeline is empty.
func (tl *Timeline) Last() (Event, bool) {
	if len(tl.events) == 0 {
		return Event{}, false
	}
	return tl.events[len(tl.events)-1], true
}

// Remove deletes the event with the given ID and reports whether it existed.
func (tl *Timeline) Remove(id string) bool {
	for i, e := range tl.events {
		if e.ID == id {
			tl.events = slices.Delete(tl.events, i, i+1)
			return true
		}
	}
	return false
}

// Has reports whether an event with the given ID exists.
func (tl *Timeline) Has(id string) bool {
	_, ok := tl.EventByID(id)
	return ok
}

// Clear removes all events.
func (tl *Timeline) Clear() {
	tl.events = nil
}

// Len returns the number of events.
func (tl *Timeline) Len() int {
	return len(tl.events)
}
