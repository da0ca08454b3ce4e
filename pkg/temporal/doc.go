// Package temporal provides time-period and timeline primitives for
// entities that accumulate events over time, plus small date utilities used
// by generators.
//
// A Period is a span with a start and an optional end; an open-ended period
// represents something still in progress. A Timeline is an entity-scoped,
// chronologically ordered event sequence with query helpers by type, range,
// and identifier.
//
// # Usage
//
//	p, err := temporal.NewPeriod(start, &end)
//	if p.Contains(t) { ... }
//
//	tl := temporal.NewTimeline("person-123")
//	tl.AddEvent(temporal.Event{ID: "evt-1", Type: "registration", Timestamp: ts})
//	first := tl.First()
//
// The random date helpers draw through a caller-supplied RNG so generated
// timelines stay seed-reproducible.
package temporal
