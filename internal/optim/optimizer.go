// Package optim implements the parameter update rule used by bpnet layers.
//
// This package provides:
//   - SGD: plain stochastic gradient descent, one sample per step
//
// The update is applied in place on the layer's own weight and bias
// matrices; no gradient buffers or optimizer state outlive a step.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig[float64]{LR: 0.005})
//
//	// inside a layer's backward pass
//	gradient := sgd.Gradient(delta)          // lr * delta
//	sgd.Step(weight, bias, gradient, input)  // W += gradient·xᵀ, b += gradient
package optim

// DefaultLR is the learning rate used when a config leaves it unset.
const DefaultLR = 0.01
