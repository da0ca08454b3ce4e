// Package person provides a minimal person schema and a seed-reproducible
// generator for synthetic demographics: names, gender, birth dates, postal
// addresses, and contact details.
//
// The generator is the reference implementation of the cohort.Generator
// capability: every draw flows through its bound seed manager, so a person
// (or an entire cohort of them) is fully determined by one integer seed.
// Identifiers are the one deliberate exception: they are minted with UUIDs
// for global uniqueness and are not part of the reproducible surface.
//
// # Usage
//
//	gen := person.NewGenerator(42)
//	p, err := gen.GeneratePerson(
//	    person.WithAgeRange(25, 35),
//	    person.WithGender(person.Female),
//	    person.WithAddress(),
//	)
//
// Batch generation goes through the cohort package:
//
//	r, _ := cohort.New[person.Person](gen, seed.New(42))
//	people, progress, _ := r.Generate(ctx, cohort.Constraints[person.Person]{Size: 100})
package person
