package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/bpnet/internal/matrix"
	"github.com/born-ml/bpnet/internal/nn"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func mustNew(t *testing.T, cfg nn.Config[float64]) *nn.Network[float64] {
	t.Helper()
	net, err := nn.New(cfg)
	require.NoError(t, err)
	return net
}

// singleNeuron is the 1→1 identity network with weight 0.5 and bias 0.
func singleNeuron(t *testing.T, propagation nn.Propagation) *nn.Network[float64] {
	t.Helper()
	net := mustNew(t, nn.Config[float64]{
		Widths:       []int{1, 1},
		Activation:   nn.Identity[float64](),
		LearningRate: 0.1,
		Propagation:  propagation,
	})
	require.NoError(t, net.Layer(0).SetWeight(matrix.Vector(0.5)))
	return net
}

func TestNew_Defaults(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 4, 1}})

	assert.Equal(t, 2, net.Inputs())
	assert.Equal(t, 1, net.Outputs())
	assert.Equal(t, 2, net.NumLayers())
	assert.Equal(t, []int{2, 4, 1}, net.Widths())
	assert.Equal(t, "sigmoid", net.Activation().Name)
	assert.InDelta(t, nn.DefaultLearningRate, net.LearningRate(), 1e-12)
	assert.Equal(t, nn.PropagatePostUpdate, net.Propagation())
	assert.Equal(t, 4*2+4+1*4+1, net.NumParameters())

	assert.Equal(t, matrix.Shape{Rows: 4, Cols: 2}, net.Layer(0).Weight().Shape())
	assert.Equal(t, matrix.Shape{Rows: 1, Cols: 4}, net.Layer(1).Weight().Shape())
	assert.Equal(t, matrix.Shape{Rows: 1, Cols: 1}, net.Layer(1).Bias().Shape())

	widths := net.Widths()
	widths[0] = 99
	assert.Equal(t, 2, net.Inputs(), "Widths must return a copy")
}

func TestNew_ChainShapes(t *testing.T) {
	widths := []int{3, 7, 5, 2, 4}
	net := mustNew(t, nn.Config[float64]{Widths: widths})
	require.Equal(t, len(widths)-1, net.NumLayers())

	for i := range net.NumLayers() {
		layer := net.Layer(i)
		assert.Equal(t, widths[i], layer.InFeatures(), "layer #%d", i)
		assert.Equal(t, widths[i+1], layer.OutFeatures(), "layer #%d", i)
		assert.Equal(t, matrix.Shape{Rows: widths[i+1], Cols: widths[i]}, layer.Weight().Shape())
	}

	out := net.Get(matrix.New[float64](3, 1))
	assert.Equal(t, matrix.Shape{Rows: 4, Cols: 1}, out.Shape())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  nn.Config[float64]
		want error
	}{
		{"no widths", nn.Config[float64]{}, nn.ErrInvalidTopology},
		{"single width", nn.Config[float64]{Widths: []int{3}}, nn.ErrInvalidTopology},
		{"zero width", nn.Config[float64]{Widths: []int{2, 0, 1}}, nn.ErrInvalidTopology},
		{"negative width", nn.Config[float64]{Widths: []int{-1, 1}}, nn.ErrInvalidTopology},
		{
			"activation without derivative",
			nn.Config[float64]{
				Widths:     []int{1, 1},
				Activation: nn.Activation[float64]{Func: func(x float64) float64 { return x }},
			},
			nn.ErrInvalidActivation,
		},
		{"unknown propagation", nn.Config[float64]{Widths: []int{1, 1}, Propagation: 7}, nn.ErrUnknownPropagation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := nn.New(tt.cfg)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, net)
		})
	}
}

func TestNetwork_ZeroWeightsBeforeRandomize(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{3, 1}})

	// sigmoid(0) everywhere.
	out := net.Get(matrix.Vector(1.0, -2.0, 3.0))
	assert.InDelta(t, 0.5, out.At(0, 0), 1e-12)
}

func TestNetwork_GetIsPure(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 4, 4, 1}})
	net.Randomize(newRNG(1), 0, 1)

	input := matrix.Vector(0.3, 0.7)
	first := net.Get(input)
	second := net.Get(input)

	assert.True(t, first.Equal(second))
	assert.Equal(t, []float64{0.3, 0.7}, input.Data(), "Get must not modify its input")
	assert.Equal(t, matrix.Shape{Rows: 1, Cols: 1}, first.Shape())
}

// TestNetwork_EndToEnd follows one training step of the single neuron
// w=0.5, b=0 with identity activation and lr=0.1 on input 2, target 1.5.
func TestNetwork_EndToEnd(t *testing.T) {
	tests := []struct {
		propagation nn.Propagation
		returned    float64
	}{
		// W_newᵀ · tailErr = 0.6 · 0.5
		{nn.PropagatePostUpdate, 0.3},
		// W_oldᵀ · (tailErr ⊙ 1) = 0.5 · 0.5
		{nn.PropagateCanonical, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.propagation.String(), func(t *testing.T) {
			net := singleNeuron(t, tt.propagation)

			out := net.Get(matrix.Vector(2.0))
			assert.InDelta(t, 1.0, out.At(0, 0), 1e-12)

			inputErr := net.Train(matrix.Vector(2.0), matrix.Vector(1.5))
			require.Equal(t, matrix.Shape{Rows: 1, Cols: 1}, inputErr.Shape())
			assert.InDelta(t, tt.returned, inputErr.At(0, 0), 1e-12)

			// gradient = 0.1 · 0.5 · 1 = 0.05; W += 0.05 · 2; b += 0.05
			assert.InDelta(t, 0.6, net.Layer(0).Weight().At(0, 0), 1e-12)
			assert.InDelta(t, 0.05, net.Layer(0).Bias().At(0, 0), 1e-12)
			assert.InDelta(t, 1.25, net.Get(matrix.Vector(2.0)).At(0, 0), 1e-12)
		})
	}
}

func TestNetwork_TrainReturnsInputShape(t *testing.T) {
	for _, widths := range [][]int{{1, 1}, {2, 1}, {2, 4, 1}, {4, 8, 8, 3}, {5, 2, 7}} {
		net := mustNew(t, nn.Config[float64]{Widths: widths})
		net.Randomize(newRNG(3), 0, 1)

		input := matrix.New[float64](widths[0], 1).Fill(0.5)
		target := matrix.New[float64](widths[len(widths)-1], 1).Fill(1)
		inputErr := net.Train(input, target)

		assert.Equal(t, input.Shape(), inputErr.Shape(), "widths=%v", widths)
	}
}

func TestNetwork_ShapeMismatchPanics(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 3, 1}})

	err := matrix.Check(func() { net.Get(matrix.Vector(1.0, 2.0, 3.0)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	// Row vector instead of column vector.
	err = matrix.Check(func() { net.Get(matrix.New[float64](1, 2)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	err = matrix.Check(func() { net.Train(matrix.Vector(1.0, 2.0), matrix.Vector(1.0, 0.0)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	err = matrix.Check(func() { net.Train(matrix.Vector(1.0), matrix.Vector(1.0)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestNetwork_RandomizeDeterministic(t *testing.T) {
	a := mustNew(t, nn.Config[float64]{Widths: []int{2, 4, 1}})
	b := mustNew(t, nn.Config[float64]{Widths: []int{2, 4, 1}})
	a.Randomize(newRNG(42), 0, 1)
	b.Randomize(newRNG(42), 0, 1)

	for i := range a.NumLayers() {
		assert.True(t, a.Layer(i).Weight().Equal(b.Layer(i).Weight()), "layer %d weight", i)
		assert.True(t, a.Layer(i).Bias().Equal(b.Layer(i).Bias()), "layer %d bias", i)
		for _, v := range a.Layer(i).Weight().Data() {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}

	c := mustNew(t, nn.Config[float64]{Widths: []int{2, 4, 1}})
	c.Randomize(newRNG(43), 0, 1)
	assert.False(t, a.Layer(0).Weight().Equal(c.Layer(0).Weight()))
}

func TestNetwork_RandomizeXavier(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{4, 8, 2}})
	net.Randomize(newRNG(5), 1, 2)
	net.RandomizeXavier(newRNG(5))

	for i := range net.NumLayers() {
		layer := net.Layer(i)
		bound := nn.XavierBound(layer.InFeatures(), layer.OutFeatures())
		for _, v := range layer.Weight().Data() {
			assert.LessOrEqual(t, v, bound)
			assert.GreaterOrEqual(t, v, -bound)
		}
		assert.True(t, layer.Bias().Equal(matrix.New[float64](layer.OutFeatures(), 1)))
	}
}

func TestNetwork_SetLearningRate(t *testing.T) {
	net := singleNeuron(t, nn.PropagatePostUpdate)
	net.SetLearningRate(0)
	assert.Zero(t, net.LearningRate())

	net.Train(matrix.Vector(2.0), matrix.Vector(1.5))
	assert.InDelta(t, 0.5, net.Layer(0).Weight().At(0, 0), 1e-12, "lr 0 must freeze the weights")

	net.SetLearningRate(0.1)
	net.Train(matrix.Vector(2.0), matrix.Vector(1.5))
	assert.InDelta(t, 0.6, net.Layer(0).Weight().At(0, 0), 1e-12)
}

func TestDense_SetParametersShape(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 3}})
	layer := net.Layer(0)

	require.ErrorIs(t, layer.SetWeight(matrix.New[float64](2, 3)), matrix.ErrShapeMismatch)
	require.ErrorIs(t, layer.SetBias(matrix.New[float64](1, 3)), matrix.ErrShapeMismatch)

	w := matrix.Full[float64](3, 2, 0.25)
	require.NoError(t, layer.SetWeight(w))
	w.Set(0, 0, 9)
	assert.InDelta(t, 0.25, layer.Weight().At(0, 0), 1e-12, "SetWeight must copy")

	layer.Weight().Set(0, 0, 7)
	assert.InDelta(t, 0.25, layer.Weight().At(0, 0), 1e-12, "Weight must return a copy")
}

// TestNetwork_CanonicalGradient checks that, in canonical mode, the error
// returned by Train is the negative gradient of ½‖target − output‖² with
// respect to the input, estimated by central differences on Get.
func TestNetwork_CanonicalGradient(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{
		Widths:       []int{3, 4, 2},
		Activation:   nn.Tanh[float64](),
		LearningRate: 0.05,
		Propagation:  nn.PropagateCanonical,
	})
	net.Randomize(newRNG(9), -1, 1)

	input := matrix.Vector(0.2, -0.4, 0.9)
	target := matrix.Vector(0.5, -0.3)
	loss := func(x *matrix.Matrix[float64]) float64 {
		return nn.SquaredError(net.Get(x), target) / 2
	}

	const h = 1e-6
	numeric := make([]float64, input.Rows())
	for i := range numeric {
		plus, minus := input.Clone(), input.Clone()
		plus.Set(i, 0, plus.At(i, 0)+h)
		minus.Set(i, 0, minus.At(i, 0)-h)
		numeric[i] = -(loss(plus) - loss(minus)) / (2 * h)
	}

	inputErr := net.Train(input, target)
	for i, want := range numeric {
		assert.InDelta(t, want, inputErr.At(i, 0), 1e-7, "component %d", i)
	}
}

func TestNetwork_TrainReducesError(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 3, 2}, Activation: nn.Tanh[float64](), LearningRate: 0.05})
	net.Randomize(newRNG(11), -0.5, 0.5)

	input := matrix.Vector(0.4, -0.6)
	target := matrix.Vector(0.3, -0.2)
	before := nn.MSE(net.Get(input), target)
	for range 200 {
		net.Train(input, target)
	}
	after := nn.MSE(net.Get(input), target)

	assert.Less(t, after, before/10)
}

// TestNetwork_LearnsLinearBoundary trains a single sigmoid neuron on the
// classic "y > 0.42·x" problem over the unit square.
func TestNetwork_LearnsLinearBoundary(t *testing.T) {
	net := mustNew(t, nn.Config[float64]{Widths: []int{2, 1}, LearningRate: 0.5})
	rng := newRNG(2024)
	net.Randomize(rng, 0, 1)

	sample := func() (*matrix.Matrix[float64], float64) {
		x, y := rng.Float64(), rng.Float64()
		if y > 0.42*x {
			return matrix.Vector(x, y), 1
		}
		return matrix.Vector(x, y), 0
	}

	for range 50_000 {
		input, label := sample()
		net.Train(input, matrix.Vector(label))
	}

	correct := 0
	const control = 1000
	for range control {
		input, label := sample()
		out := net.Get(input).At(0, 0)
		if (out > 0.5) == (label == 1) {
			correct++
		}
	}
	assert.Greater(t, correct, control*9/10, "accuracy %d/%d", correct, control)
}

func TestLoss(t *testing.T) {
	output := matrix.Vector(1.0, 2.0, 4.0)
	target := matrix.Vector(1.0, 0.0, 1.0)

	assert.InDelta(t, 13.0, nn.SquaredError(output, target), 1e-12)
	assert.InDelta(t, 13.0/3, nn.MSE(output, target), 1e-12)

	err := matrix.Check(func() { nn.MSE(output, matrix.Vector(1.0)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestPropagation_Parse(t *testing.T) {
	for _, p := range []nn.Propagation{nn.PropagatePostUpdate, nn.PropagateCanonical} {
		parsed, err := nn.ParsePropagation(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	parsed, err := nn.ParsePropagation("")
	require.NoError(t, err)
	assert.Equal(t, nn.PropagatePostUpdate, parsed)

	_, err = nn.ParsePropagation("sideways")
	require.ErrorIs(t, err, nn.ErrUnknownPropagation)
	assert.Equal(t, "unknown", nn.Propagation(9).String())
}

func TestNetwork_Float32(t *testing.T) {
	net, err := nn.New(nn.Config[float32]{Widths: []int{2, 2, 1}, LearningRate: 0.1})
	require.NoError(t, err)
	net.Randomize(rand.New(rand.NewPCG(1, 1)), 0, 1)

	inputErr := net.Train(matrix.Vector[float32](0.1, 0.9), matrix.Vector[float32](1))
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 1}, inputErr.Shape())
	assert.InDelta(t, float32(0.1), net.LearningRate(), 1e-7)
}
