package life

import "lifemap/pkg/core"

// DefaultDensity is the alive probability used when callers ask for a random
// board without choosing one.
const DefaultDensity = 0.2

// SeedPolicy decides the state of cells materialized at grid construction or
// when a resize grows the board. The zero value seeds every cell dead.
type SeedPolicy struct {
	// Density is the probability a materialized cell starts alive. Zero
	// means all cells start dead and the RNG is never consulted.
	Density float64

	// BornAge is the age assigned to cells that start alive. The grid's
	// first Commit normalizes either choice, so 0 and 1 only differ in
	// what CellAt reports before the first Step.
	BornAge int

	rng *core.RNG
}

// SeedDead returns a policy that materializes every cell dead.
func SeedDead() SeedPolicy {
	return SeedPolicy{}
}

// SeedRandom returns a policy that materializes cells alive with probability
// p, drawn from the provided RNG. Alive cells start at age 1.
func SeedRandom(p float64, rng *core.RNG) SeedPolicy {
	return SeedPolicy{Density: p, BornAge: 1, rng: rng}
}

// Reseed returns a copy of the policy whose random source is rebuilt from
// seed, leaving density and born-age untouched. Policies without randomness
// are returned unchanged.
func (s SeedPolicy) Reseed(seed int64) SeedPolicy {
	if s.Density <= 0 {
		return s
	}
	s.rng = core.NewRNG(seed)
	return s
}

// cell materializes one cell according to the policy.
func (s SeedPolicy) cell() Cell {
	if s.Density <= 0 || s.rng == nil {
		return Cell{}
	}
	if !s.rng.Chance(s.Density) {
		return Cell{}
	}
	return Cell{Alive: true, Age: s.BornAge}
}
