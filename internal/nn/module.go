// Package nn implements the recursive layer chain behind bpnet networks.
//
// A network is a chain of dense layers ending in a terminal node:
//
//	dense(2→4) → dense(4→1) → terminal(1)
//
// Each dense layer owns its weight, its bias and, by value, the rest of the
// chain (its tail). Forward inference and training are recursions over that
// chain: Get descends to the terminal and returns, Train descends computing
// activations and then unwinds, updating every layer in place on the way
// back and returning the error signal in the caller's input space.
//
// The terminal node is the base case: it passes its input through on the
// forward path and seeds the backward path with target − output.
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/bpnet/internal/matrix"
)

// node is one link of the layer chain.
//
// Every input and output is a column vector; a node whose inputs() is n
// accepts (n×1) inputs, and train returns an (n×1) error.
type node[T matrix.Float] interface {
	// get runs inference from this node to the end of the chain.
	get(input *matrix.Matrix[T]) *matrix.Matrix[T]

	// train runs one backpropagation step from this node to the end of
	// the chain and returns the error propagated to this node's input.
	train(input, target *matrix.Matrix[T]) *matrix.Matrix[T]

	// randomize draws every parameter from this node onwards uniformly
	// from [low, high).
	randomize(rng *rand.Rand, low, high T)

	// inputs is the width of the column vector this node accepts.
	inputs() int
}
