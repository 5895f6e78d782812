package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/bpnet/internal/nn"
)

func TestSigmoid_Values(t *testing.T) {
	sigmoid := nn.Sigmoid[float64]()

	assert.InDelta(t, 0.5, sigmoid.Func(0), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-2)), sigmoid.Func(2), 1e-12)
	assert.InDelta(t, 0.25, sigmoid.Derivative(0.5), 1e-12)
	assert.InDelta(t, 0.09, sigmoid.Derivative(0.9), 1e-12)
}

// TestActivation_DerivativeOfActivated checks every built-in derivative
// against a central difference, evaluated at the activated value.
func TestActivation_DerivativeOfActivated(t *testing.T) {
	const h = 1e-6
	activations := []nn.Activation[float64]{
		nn.Sigmoid[float64](),
		nn.Tanh[float64](),
		nn.ReLU[float64](),
		nn.LeakyReLU[float64](0.1),
		nn.Identity[float64](),
	}
	// Away from the ReLU kink at 0.
	points := []float64{-2.5, -0.7, 0.3, 1.1, 3}

	for _, act := range activations {
		t.Run(act.Name, func(t *testing.T) {
			for _, x := range points {
				numeric := (act.Func(x+h) - act.Func(x-h)) / (2 * h)
				assert.InDelta(t, numeric, act.Derivative(act.Func(x)), 1e-6, "x=%g", x)
			}
		})
	}
}

func TestActivation_Float32(t *testing.T) {
	tanh := nn.Tanh[float32]()
	assert.InDelta(t, float32(math.Tanh(0.5)), tanh.Func(0.5), 1e-6)
	assert.InDelta(t, 0.75, tanh.Derivative(0.5), 1e-6)
}

func TestActivationByName(t *testing.T) {
	for _, name := range nn.ActivationNames() {
		act, err := nn.ActivationByName[float64](name)
		require.NoError(t, err, name)
		assert.Equal(t, name, act.Name)
		assert.Equal(t, name, act.String())
	}

	linear, err := nn.ActivationByName[float64]("linear")
	require.NoError(t, err)
	assert.Equal(t, "identity", linear.Name)

	leaky, err := nn.ActivationByName[float64]("leaky_relu")
	require.NoError(t, err)
	assert.InDelta(t, -nn.DefaultLeakyAlpha, leaky.Func(-1), 1e-12)

	_, err = nn.ActivationByName[float64]("softmax")
	require.ErrorIs(t, err, nn.ErrInvalidActivation)
}

func TestActivationNames_Sorted(t *testing.T) {
	names := nn.ActivationNames()
	assert.IsNonDecreasing(t, names)

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", nn.ActivationNames()[0], "ActivationNames must return a copy")
}

func TestActivation_IsZeroAndString(t *testing.T) {
	assert.True(t, nn.Activation[float64]{}.IsZero())
	assert.False(t, nn.Identity[float64]().IsZero())

	custom := nn.Activation[float64]{Func: func(x float64) float64 { return x }}
	assert.False(t, custom.IsZero())
	assert.Equal(t, "custom", custom.String())
}
