package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
	"github.com/born-ml/bpnet/internal/optim"
)

// Dense is a fully connected layer of the chain.
//
// Performs the transformation: y = f(W · x + b)
// where:
//   - x is the input column vector with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features, 1]
//   - f is the layer activation applied elementwise
//
// A Dense owns its weight and bias exclusively. Weight and Bias return
// copies; SetWeight and SetBias copy values in.
type Dense[T matrix.Float] struct {
	inFeatures  int
	outFeatures int
	weight      *matrix.Matrix[T] // [out_features, in_features]
	bias        *matrix.Matrix[T] // [out_features, 1]

	tail        node[T]
	activation  Activation[T]
	sgd         *optim.SGD[T] // shared by the whole chain
	propagation Propagation
}

// newDense creates a dense layer feeding tail. Parameters start at zero.
func newDense[T matrix.Float](inFeatures int, tail node[T], activation Activation[T],
	sgd *optim.SGD[T], propagation Propagation) *Dense[T] {
	outFeatures := tail.inputs()
	return &Dense[T]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      matrix.New[T](outFeatures, inFeatures),
		bias:        matrix.New[T](outFeatures, 1),
		tail:        tail,
		activation:  activation,
		sgd:         sgd,
		propagation: propagation,
	}
}

// forward returns f(W · x + b).
func (d *Dense[T]) forward(input *matrix.Matrix[T]) *matrix.Matrix[T] {
	return d.weight.MatMul(input).AddInPlace(d.bias).MapInPlace(d.activation.Func)
}

func (d *Dense[T]) get(input *matrix.Matrix[T]) *matrix.Matrix[T] {
	return d.tail.get(d.forward(input))
}

// train performs one backpropagation step for this layer and its tail.
//
//  1. activated = f(W · x + b)
//  2. tailErr   = tail.train(activated, target)
//  3. delta     = tailErr ⊙ f'(activated); gradient = lr · delta
//     W += gradient · xᵀ; b += gradient
//  4. return the propagated error, see Propagation.
func (d *Dense[T]) train(input, target *matrix.Matrix[T]) *matrix.Matrix[T] {
	activated := d.forward(input)
	tailErr := d.tail.train(activated, target)

	delta := tailErr.Hadamard(activated.MapInPlace(d.activation.Derivative))
	gradient := d.sgd.Gradient(delta)

	if d.propagation == PropagateCanonical {
		propagated := d.weight.Transpose().MatMul(delta)
		d.sgd.Step(d.weight, d.bias, gradient, input)
		return propagated
	}

	d.sgd.Step(d.weight, d.bias, gradient, input)
	return d.weight.Transpose().MatMul(tailErr)
}

// randomize draws this layer's weight then bias, then recurses into the tail.
func (d *Dense[T]) randomize(rng *rand.Rand, low, high T) {
	d.weight.Randomize(rng, low, high)
	d.bias.Randomize(rng, low, high)
	d.tail.randomize(rng, low, high)
}

func (d *Dense[T]) inputs() int {
	return d.inFeatures
}

// InFeatures returns the number of input features.
func (d *Dense[T]) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense[T]) OutFeatures() int {
	return d.outFeatures
}

// Activation returns the layer activation.
func (d *Dense[T]) Activation() Activation[T] {
	return d.activation
}

// Weight returns a copy of the weight matrix [out_features, in_features].
func (d *Dense[T]) Weight() *matrix.Matrix[T] {
	return d.weight.Clone()
}

// Bias returns a copy of the bias vector [out_features, 1].
func (d *Dense[T]) Bias() *matrix.Matrix[T] {
	return d.bias.Clone()
}

// SetWeight copies w into the layer weight.
// Returns an error wrapping matrix.ErrShapeMismatch if w is not [out_features, in_features].
func (d *Dense[T]) SetWeight(w *matrix.Matrix[T]) error {
	if w.Shape() != d.weight.Shape() {
		return errors.Wrapf(matrix.ErrShapeMismatch, "Dense.SetWeight: expected %s, got %s", d.weight.Shape(), w.Shape())
	}
	d.weight.CopyFrom(w)
	return nil
}

// SetBias copies b into the layer bias.
// Returns an error wrapping matrix.ErrShapeMismatch if b is not [out_features, 1].
func (d *Dense[T]) SetBias(b *matrix.Matrix[T]) error {
	if b.Shape() != d.bias.Shape() {
		return errors.Wrapf(matrix.ErrShapeMismatch, "Dense.SetBias: expected %s, got %s", d.bias.Shape(), b.Shape())
	}
	d.bias.CopyFrom(b)
	return nil
}
