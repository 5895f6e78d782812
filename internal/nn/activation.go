package nn

import (
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

// Activation is the elementwise nonlinearity of a dense layer together
// with its derivative.
//
// Derivative is expressed in terms of the ACTIVATED value y = Func(x),
// not the pre-activation x. For the sigmoid this is y * (1 - y), for tanh
// 1 - y². Backpropagation only ever has the activated output at hand, so
// every built-in follows this convention and custom activations must too.
//
// Example:
//
//	softsign := nn.Activation[float64]{
//	    Name:       "softsign",
//	    Func:       func(x float64) float64 { return x / (1 + math.Abs(x)) },
//	    Derivative: func(y float64) float64 { return (1 - math.Abs(y)) * (1 - math.Abs(y)) },
//	}
type Activation[T matrix.Float] struct {
	Name       string
	Func       func(x T) T
	Derivative func(activated T) T
}

// IsZero reports whether neither function is set.
func (a Activation[T]) IsZero() bool {
	return a.Func == nil && a.Derivative == nil
}

func (a Activation[T]) validate() error {
	if a.Func == nil || a.Derivative == nil {
		return errors.Wrapf(ErrInvalidActivation, "activation %q needs both Func and Derivative", a.Name)
	}
	return nil
}

// String returns the activation name.
func (a Activation[T]) String() string {
	if a.Name == "" {
		return "custom"
	}
	return a.Name
}

// Sigmoid returns σ(x) = 1 / (1 + exp(-x)) with σ' = y(1 - y).
//
// Sigmoid squashes values to the range (0, 1), which suits binary targets.
func Sigmoid[T matrix.Float]() Activation[T] {
	return Activation[T]{
		Name: "sigmoid",
		Func: func(x T) T {
			return T(1 / (1 + math.Exp(-float64(x))))
		},
		Derivative: func(y T) T {
			return y * (1 - y)
		},
	}
}

// Tanh returns tanh(x) with tanh' = 1 - y².
//
// Tanh squashes values to (-1, 1) and is zero-centered.
func Tanh[T matrix.Float]() Activation[T] {
	return Activation[T]{
		Name: "tanh",
		Func: func(x T) T {
			return T(math.Tanh(float64(x)))
		},
		Derivative: func(y T) T {
			return 1 - y*y
		},
	}
}

// ReLU returns max(0, x). Its derivative is 1 for y > 0 and 0 otherwise.
func ReLU[T matrix.Float]() Activation[T] {
	return Activation[T]{
		Name: "relu",
		Func: func(x T) T {
			if x > 0 {
				return x
			}
			return 0
		},
		Derivative: func(y T) T {
			if y > 0 {
				return 1
			}
			return 0
		},
	}
}

// LeakyReLU returns x for x > 0 and alpha*x otherwise.
// alpha must be positive so that the sign of y identifies the branch.
func LeakyReLU[T matrix.Float](alpha T) Activation[T] {
	return Activation[T]{
		Name: "leaky_relu",
		Func: func(x T) T {
			if x > 0 {
				return x
			}
			return alpha * x
		},
		Derivative: func(y T) T {
			if y > 0 {
				return 1
			}
			return alpha
		},
	}
}

// Identity returns f(x) = x with f' = 1.
func Identity[T matrix.Float]() Activation[T] {
	return Activation[T]{
		Name:       "identity",
		Func:       func(x T) T { return x },
		Derivative: func(T) T { return 1 },
	}
}

// DefaultLeakyAlpha is the negative slope used by ActivationByName("leaky_relu").
const DefaultLeakyAlpha = 0.01

var activationNames = []string{"identity", "leaky_relu", "relu", "sigmoid", "tanh"}

// ActivationByName returns the built-in activation with the given name.
// Known names are listed by ActivationNames.
func ActivationByName[T matrix.Float](name string) (Activation[T], error) {
	switch name {
	case "sigmoid":
		return Sigmoid[T](), nil
	case "tanh":
		return Tanh[T](), nil
	case "relu":
		return ReLU[T](), nil
	case "leaky_relu":
		return LeakyReLU[T](DefaultLeakyAlpha), nil
	case "identity", "linear":
		return Identity[T](), nil
	}
	return Activation[T]{}, errors.Wrapf(ErrInvalidActivation, "unknown activation %q, valid names: %v", name, ActivationNames())
}

// ActivationNames returns the sorted names accepted by ActivationByName.
// "linear" is also accepted as an alias of "identity".
func ActivationNames() []string {
	return slices.Clone(activationNames)
}
