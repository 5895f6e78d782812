// Package train drives a network with an oracle: it draws random inputs,
// asks the oracle for the expected output and trains on the pair, then
// scores the network on held-out samples.
package train

import (
	"math/rand/v2"

	"github.com/born-ml/bpnet/internal/matrix"
)

// Oracle returns the expected network output for an input.
//
// Oracles must be pure: Evaluate calls them on inputs drawn up front and
// compares the network output against the result.
type Oracle[T matrix.Float] func(input *matrix.Matrix[T]) *matrix.Matrix[T]

// Sampler draws one input column vector from rng.
type Sampler[T matrix.Float] func(rng *rand.Rand) *matrix.Matrix[T]

// Uniform returns a sampler of (n×1) vectors with components uniform in [0, 1).
func Uniform[T matrix.Float](n int) Sampler[T] {
	return func(rng *rand.Rand) *matrix.Matrix[T] {
		return matrix.Random[T](n, 1, rng, 0, 1)
	}
}

// Label converts a predicate into the single-output oracle 1 (true) / 0 (false).
func Label[T matrix.Float](predicate func(input *matrix.Matrix[T]) bool) Oracle[T] {
	return func(input *matrix.Matrix[T]) *matrix.Matrix[T] {
		if predicate(input) {
			return matrix.Vector[T](1)
		}
		return matrix.Vector[T](0)
	}
}
