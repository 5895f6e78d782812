package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

// SGD implements plain Stochastic Gradient Descent with batch size 1.
//
// The error signal fed to a layer is target − output, i.e. the negative
// gradient of the squared error, so the update ADDS the scaled gradient:
//
//	gradient = lr * delta
//	weight   = weight + gradient · inputᵀ
//	bias     = bias + gradient
//
// The learning rate can be changed between steps with SetLR. An SGD value
// is shared by every layer of a network so that one call retunes them all.
type SGD[T matrix.Float] struct {
	lr T
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig[T matrix.Float] struct {
	LR T // Learning rate (default: DefaultLR)
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - config: SGD configuration; a zero LR selects DefaultLR
//
// Returns a new SGD optimizer.
func NewSGD[T matrix.Float](config SGDConfig[T]) *SGD[T] {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD[T]{lr: config.LR}
}

// Gradient returns a new matrix lr * delta.
func (s *SGD[T]) Gradient(delta *matrix.Matrix[T]) *matrix.Matrix[T] {
	return delta.Scale(s.lr)
}

// Step applies one update in place:
//
//	weight += gradient · inputᵀ
//	bias   += gradient
//
// Shapes: weight (out×in), bias (out×1), gradient (out×1), input (in×1).
// A shape mismatch panics with matrix.ErrShapeMismatch before either
// parameter is modified.
func (s *SGD[T]) Step(weight, bias, gradient, input *matrix.Matrix[T]) {
	if bias.Shape() != gradient.Shape() {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "SGD.Step: bias %s vs gradient %s", bias.Shape(), gradient.Shape()))
	}
	delta := gradient.MatMul(input.Transpose())
	weight.AddInPlace(delta)
	bias.AddInPlace(gradient)
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Zero is accepted here: it freezes the parameters without changing the
// forward behaviour of Train.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
