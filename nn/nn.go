// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/matrix"
)

// Network is a feed-forward network trained by single-sample backpropagation.
type Network[T matrix.Float] = nn.Network[T]

// Config describes a network: widths, activation, learning rate and
// propagation mode.
type Config[T matrix.Float] = nn.Config[T]

// Dense is one fully connected layer of a Network, see Network.Layer.
type Dense[T matrix.Float] = nn.Dense[T]

// DefaultLearningRate is used when Config.LearningRate is zero.
const DefaultLearningRate = nn.DefaultLearningRate

// New builds a network from config.
//
// Example:
//
//	net, err := nn.New(nn.Config[float64]{Widths: []int{2, 4, 4, 1}, LearningRate: 0.01})
func New[T matrix.Float](config Config[T]) (*Network[T], error) {
	return nn.New(config)
}

// Errors

var (
	// ErrInvalidTopology indicates fewer than two widths or a non-positive width.
	ErrInvalidTopology = nn.ErrInvalidTopology

	// ErrInvalidActivation indicates an incomplete or unknown activation.
	ErrInvalidActivation = nn.ErrInvalidActivation

	// ErrUnknownPropagation indicates an unknown propagation mode.
	ErrUnknownPropagation = nn.ErrUnknownPropagation
)

// Activations

// Activation is an elementwise nonlinearity with its derivative, the latter
// taking the activated value.
type Activation[T matrix.Float] = nn.Activation[T]

// DefaultLeakyAlpha is the negative slope of the "leaky_relu" activation.
const DefaultLeakyAlpha = nn.DefaultLeakyAlpha

// Sigmoid returns the logistic activation, the default.
func Sigmoid[T matrix.Float]() Activation[T] { return nn.Sigmoid[T]() }

// Tanh returns the hyperbolic tangent activation.
func Tanh[T matrix.Float]() Activation[T] { return nn.Tanh[T]() }

// ReLU returns the rectified linear activation.
func ReLU[T matrix.Float]() Activation[T] { return nn.ReLU[T]() }

// LeakyReLU returns the leaky rectified linear activation with slope alpha > 0.
func LeakyReLU[T matrix.Float](alpha T) Activation[T] { return nn.LeakyReLU(alpha) }

// Identity returns f(x) = x.
func Identity[T matrix.Float]() Activation[T] { return nn.Identity[T]() }

// ActivationByName returns a built-in activation by name.
func ActivationByName[T matrix.Float](name string) (Activation[T], error) {
	return nn.ActivationByName[T](name)
}

// ActivationNames lists the names accepted by ActivationByName.
func ActivationNames() []string { return nn.ActivationNames() }

// Propagation

// Propagation selects the error a layer hands back during Train.
type Propagation = nn.Propagation

const (
	// PropagatePostUpdate propagates through the weights after the update.
	PropagatePostUpdate = nn.PropagatePostUpdate

	// PropagateCanonical propagates the exact gradient through the weights
	// used in the forward pass.
	PropagateCanonical = nn.PropagateCanonical
)

// ParsePropagation parses "post-update" or "canonical".
func ParsePropagation(name string) (Propagation, error) { return nn.ParsePropagation(name) }

// Loss

// MSE returns mean((output - target)²).
func MSE[T matrix.Float](output, target *matrix.Matrix[T]) T { return nn.MSE(output, target) }

// SquaredError returns Σ(output - target)².
func SquaredError[T matrix.Float](output, target *matrix.Matrix[T]) T {
	return nn.SquaredError(output, target)
}

// XavierBound returns sqrt(6 / (fanIn + fanOut)).
func XavierBound(fanIn, fanOut int) float64 { return nn.XavierBound(fanIn, fanOut) }
