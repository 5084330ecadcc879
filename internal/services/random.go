package services

import (
	"errors"
	"math/rand/v2"
)

var ErrEmptyChoice = errors.New("pick random: nothing to choose from")

// RandomSource returns a float in [0, 1). It is the only source of
// randomness in the simulation, so a fixed source makes runs repeatable.
type RandomSource func() float64

// defaultSeed replaces a zero seed so that "no seed" is still reproducible.
const defaultSeed uint64 = 1

// Return a deterministic source. A zero seed uses a fixed default.
func NewSeededSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = defaultSeed
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Float64
}

// Return a source backed by the runtime's random generator.
func SystemSource() RandomSource { return rand.Float64 }

// Pick a uniformly random element of items.
func PickRandom[T any](src RandomSource, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyChoice
	}

	i := int(src() * float64(len(items)))
	// Guard against sources that return exactly 1.
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i], nil
}
