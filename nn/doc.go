// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward networks trained by backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: a chain of dense layers built from a width list
//   - Activations: Sigmoid, Tanh, ReLU, LeakyReLU, Identity, or your own
//   - Propagation modes: PropagatePostUpdate (default), PropagateCanonical
//   - Loss helpers: MSE, SquaredError
//   - Initialization: Network.Randomize, Network.RandomizeXavier
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/bpnet/matrix"
//	    "github.com/born-ml/bpnet/nn"
//	)
//
//	func main() {
//	    net, err := nn.New(nn.Config[float64]{
//	        Widths:       []int{2, 4, 1},
//	        Activation:   nn.Sigmoid[float64](),
//	        LearningRate: 0.005,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    net.Randomize(rand.New(rand.NewPCG(1, 2)), 0, 1)
//
//	    // One training cycle
//	    net.Train(matrix.Vector(0.2, 0.7), matrix.Vector(1.0))
//
//	    // Inference
//	    output := net.Get(matrix.Vector(0.2, 0.7))
//	}
//
// # Training
//
// Train performs a single-sample stochastic gradient step on every layer,
// with error target − output, and returns the error propagated back to the
// input. Each layer updates its parameters with
//
//	gradient = lr · (error ⊙ f'(activated))
//	W += gradient · inputᵀ
//	b += gradient
//
// Activation derivatives are expressed in terms of the activated value:
// Sigmoid's derivative is y(1 − y).
//
// # Shapes
//
// Inputs and targets are column vectors. Get and Train panic with
// matrix.ErrShapeMismatch on a wrong shape; wrap calls in matrix.Check to
// receive an error instead.
package nn
