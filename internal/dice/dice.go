// Package dice provides the deterministic random stream used by the game
// engine: dice rolls, uniform floats, biased booleans and shuffles. All
// randomness in a simulation flows through one Roller so that a seed fully
// determines a game.
package dice

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source is the subset of random operations the game engine consumes. Tests
// substitute a scripted implementation to force particular rolls.
type Source interface {
	// DoubleRoll rolls two dice, returning the total and whether it was a double.
	DoubleRoll() (total int, isDouble bool)
	// SingleRoll rolls one die, returning 1-6.
	SingleRoll() int
	// UnitFloat returns a float in [0, 1).
	UnitFloat() float64
	// BiasedBool returns true with the given probability.
	BiasedBool(trueProbability float64) bool
	// Shuffle performs a Fisher-Yates shuffle via the swap callback.
	Shuffle(n int, swap func(i, j int))
}

// Roller is the production Source, backed by a PCG generator seeded
// deterministically so that all call sites get reproducible sequences.
type Roller struct {
	rng *rand.Rand
}

// New returns a Roller seeded from the provided int64. The mixer derives the
// two 64-bit seeds required by rand/v2 from a single seed value.
func New(seed int64) *Roller {
	u := uint64(seed)
	return &Roller{rng: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func (r *Roller) DoubleRoll() (int, bool) {
	d1 := r.rng.IntN(6) + 1
	d2 := r.rng.IntN(6) + 1
	return d1 + d2, d1 == d2
}

func (r *Roller) SingleRoll() int {
	return r.rng.IntN(6) + 1
}

func (r *Roller) UnitFloat() float64 {
	return r.rng.Float64()
}

func (r *Roller) BiasedBool(trueProbability float64) bool {
	return r.rng.Float64() < trueProbability
}

func (r *Roller) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
