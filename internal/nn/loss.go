package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

// MSE computes the Mean Squared Error between an output and a target.
//
// Loss = mean((output - target)²)
//
// MSE is what Train descends: the error seeded by the terminal node,
// target − output, is the negative gradient of ½·Σ(output − target)².
//
// Parameters:
//   - output: Network output with shape [outputs, 1]
//   - target: Expected output with the same shape
//
// Returns the mean of the squared differences.
//
// Panics with matrix.ErrShapeMismatch if the shapes differ.
func MSE[T matrix.Float](output, target *matrix.Matrix[T]) T {
	return SquaredError(output, target) / T(output.Shape().Size())
}

// SquaredError returns Σ(output - target)².
func SquaredError[T matrix.Float](output, target *matrix.Matrix[T]) T {
	if output.Shape() != target.Shape() {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "nn.SquaredError: output %s, target %s", output.Shape(), target.Shape()))
	}
	diff := output.Sub(target)
	var sum T
	for _, v := range diff.HadamardInPlace(diff).Data() {
		sum += v
	}
	return sum
}
