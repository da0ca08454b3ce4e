package person

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simkit/simkit/pkg/distribution"
	"github.com/simkit/simkit/pkg/seed"
)

// Option configures a single GeneratePerson call.
type Option func(*config)

type config struct {
	ageMin, ageMax int
	useAgeRange    bool
	gender         Gender
	useGender      bool
	withAddress    bool
}

// WithAgeRange constrains the generated age to [min, max] inclusive.
func WithAgeRange(min, max int) Option {
	return func(c *config) {
		c.ageMin, c.ageMax = min, max
		c.useAgeRange = true
	}
}

// WithGender fixes the generated gender instead of drawing it.
func WithGender(g Gender) Option {
	return func(c *config) {
		c.gender = g
		c.useGender = true
	}
}

// WithAddress attaches a generated postal address.
func WithAddress() Option {
	return func(c *config) {
		c.withAddress = true
	}
}

// Generator produces synthetic persons from a bound seed manager. It
// implements cohort.Generator[Person], so a single value serves both
// standalone and batch generation.
type Generator struct {
	sm   *seed.Manager
	ages distribution.Age
}

// NewGenerator returns a Generator over its own seed manager. Generators
// with the same seed produce identical persons in the same call order.
func NewGenerator(masterSeed int64) *Generator {
	// The preset tables are literal and known-valid.
	ages, err := distribution.NewAgePreset("general")
	if err != nil {
		panic(err)
	}
	return &Generator{sm: seed.New(masterSeed), ages: ages}
}

// Seed returns the master seed the generator was constructed with.
func (g *Generator) Seed() int64 {
	return g.sm.Seed()
}

// Reset restores the generator's seed manager to its initial state.
func (g *Generator) Reset() {
	g.sm.Reset()
}

// GenerateID mints a globally unique identifier, prefixed when prefix is
// non-empty (e.g. "PERSON-8a2f..."). IDs are intentionally not seeded.
func (g *Generator) GenerateID(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// GeneratePerson produces one person from the generator's own seed stream.
func (g *Generator) GeneratePerson(opts ...Option) (Person, error) {
	return g.generate(g.sm, opts...)
}

// GenerateOne satisfies cohort.Generator: the cohort runner hands each
// attempt its own child seed manager.
func (g *Generator) GenerateOne(sm *seed.Manager) (Person, error) {
	return g.generate(sm)
}

func (g *Generator) generate(sm *seed.Manager, opts ...Option) (Person, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.useAgeRange && (cfg.ageMin < 0 || cfg.ageMin > cfg.ageMax) {
		return Person{}, fmt.Errorf("%w: min=%d max=%d", ErrInvalidAgeRange, cfg.ageMin, cfg.ageMax)
	}

	gender := cfg.gender
	if !cfg.useGender {
		gender = Male
		if sm.Bool(0.5) {
			gender = Female
		}
	}
	if gender != Male && gender != Female {
		return Person{}, fmt.Errorf("%w: %q", ErrInvalidGender, gender)
	}

	age := g.ages.Sample(sm.RNG())
	if cfg.useAgeRange {
		age = sm.Int(cfg.ageMin, cfg.ageMax)
	}

	name := g.generateName(sm, gender)
	p := Person{
		ID:        g.GenerateID("PERSON"),
		Name:      name,
		Gender:    gender,
		Age:       age,
		BirthDate: birthDate(sm, age),
		Contact:   g.generateContact(sm, name),
	}
	if cfg.withAddress {
		addr := g.generateAddress(sm)
		p.Address = &addr
	}
	return p, nil
}

// GenerateName draws a gendered given name and a family name.
func (g *Generator) GenerateName(gender Gender) Name {
	return g.generateName(g.sm, gender)
}

func (g *Generator) generateName(sm *seed.Manager, gender Gender) Name {
	given := seed.Pick(sm, maleGivenNames)
	if gender == Female {
		given = seed.Pick(sm, femaleGivenNames)
	}
	return Name{Given: given, Family: seed.Pick(sm, familyNames)}
}

// GenerateAddress draws a synthetic US postal address.
func (g *Generator) GenerateAddress() Address {
	return g.generateAddress(g.sm)
}

func (g *Generator) generateAddress(sm *seed.Manager) Address {
	return Address{
		Street: fmt.Sprintf("%d %s %s",
			sm.Int(1, 9999), seed.Pick(sm, streetNames), seed.Pick(sm, streetSuffixes)),
		City:       seed.Pick(sm, cities),
		State:      seed.Pick(sm, states),
		PostalCode: fmt.Sprintf("%05d", sm.Int(10000, 99999)),
		Country:    "US",
	}
}

// GenerateContact draws phone and email details for the given name.
func (g *Generator) GenerateContact(name Name) Contact {
	return g.generateContact(g.sm, name)
}

func (g *Generator) generateContact(sm *seed.Manager, name Name) Contact {
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(name.Given), strings.ToLower(name.Family),
		sm.Int(1, 999), seed.Pick(sm, emailDomains))
	phone := fmt.Sprintf("(%d) %03d-%04d", sm.Int(200, 999), sm.Int(0, 999), sm.Int(0, 9999))
	return Contact{Phone: phone, Email: email}
}

// birthDate derives a date of birth consistent with the given age: the
// person's last birthday falls within the past year from the reference time.
func birthDate(sm *seed.Manager, age int) time.Time {
	now := time.Now().UTC()
	latest := now.AddDate(-age, 0, 0)
	earliest := now.AddDate(-age-1, 0, 1)
	days := int(latest.Sub(earliest).Hours() / 24)
	return earliest.AddDate(0, 0, sm.Int(0, days)).Truncate(24 * time.Hour)
}
