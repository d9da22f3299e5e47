// Package ou - increment-stream utilities shared by ensemble runs.
//
// This file centralizes deterministic noise generation for boundary forcing.
//
// Goals:
//   - Determinism: same (seed, stream) ⇒ identical increments across platforms.
//   - Independence: realizations never share or advance a common source.
//   - Safety: no panics or logging; only sentinel errors.
package ou

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoSteps indicates a requested increment path of zero length.
var ErrNoSteps = errors.New("ou: increment path needs at least one step")

// DeriveSeed mixes a base seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Each realization of an ensemble needs its own reproducible stream; naive
//     seed+stream arithmetic leaves neighbouring streams correlated.
//   - A SplitMix64-style avalanche mix diffuses every input bit, so stream k
//     and stream k+1 produce unrelated sequences.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
//
// Complexity: O(1).
func DeriveSeed(base, stream uint64) uint64 {
	x := base ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Increments draws one boundary increment path: steps rows of two
// independent standard-normal values, column 0 for the lower boundary and
// column 1 for the upper. Draws come from a gonum distuv.Normal over a
// dedicated source, so a path is fully determined by its seed.
//
// Errors:
//   - ErrNoSteps — steps < 1.
//
// Complexity: O(steps) time and space.
func Increments(steps int, seed uint64) ([][2]float64, error) {
	if steps < 1 {
		return nil, ErrNoSteps
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	path := make([][2]float64, steps)
	for n := range path {
		path[n][0] = normal.Rand()
		path[n][1] = normal.Rand()
	}

	return path, nil
}
