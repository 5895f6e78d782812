package nn

import (
	"math/rand/v2"

	"github.com/born-ml/bpnet/internal/matrix"
)

// terminal is the base case of the layer chain: the network output.
// It has no parameters; its input width equals its output width.
type terminal[T matrix.Float] struct {
	width int
}

// get returns a copy of the input: the output of the network.
func (t *terminal[T]) get(input *matrix.Matrix[T]) *matrix.Matrix[T] {
	return input.Clone()
}

// train seeds backpropagation with target − input, the derivative of the
// squared error without the conventional ½ factor.
func (t *terminal[T]) train(input, target *matrix.Matrix[T]) *matrix.Matrix[T] {
	return target.Sub(input)
}

func (t *terminal[T]) randomize(*rand.Rand, T, T) {}

func (t *terminal[T]) inputs() int {
	return t.width
}
