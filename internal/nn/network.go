package nn

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/bpnet/internal/matrix"
	"github.com/born-ml/bpnet/internal/optim"
)

// DefaultLearningRate is used when Config.LearningRate is zero.
const DefaultLearningRate = optim.DefaultLR

// Config describes a network.
type Config[T matrix.Float] struct {
	// Widths lists the layer widths, input first and output last.
	// At least two entries, all positive. The network has len(Widths)-1
	// dense layers.
	Widths []int

	// Activation is shared by every dense layer. A zero value selects Sigmoid.
	Activation Activation[T]

	// LearningRate is the initial learning rate (default: DefaultLearningRate).
	// It can be changed later with Network.SetLearningRate.
	LearningRate T

	// Propagation selects the error handed back by each layer during Train
	// (default: PropagatePostUpdate).
	Propagation Propagation
}

// Network is a feed-forward network trained by single-sample backpropagation.
//
// The layers form a recursive chain (see the package documentation) that is
// built once by New. Shapes are validated at construction; afterwards Get and
// Train only check that their arguments are column vectors of the declared
// input and output widths.
//
// A Network is not safe for concurrent use while training. Get does not
// mutate the network, so concurrent Get calls are safe as long as no Train,
// Randomize or Set* call runs at the same time.
//
// Example:
//
//	net, err := nn.New(nn.Config[float64]{
//	    Widths:       []int{2, 4, 1},
//	    Activation:   nn.Sigmoid[float64](),
//	    LearningRate: 0.005,
//	})
//	if err != nil {
//	    return err
//	}
//	net.Randomize(rand.New(rand.NewPCG(1, 2)), 0, 1)
//	inputErr := net.Train(matrix.Vector(0.3, 0.9), matrix.Vector(1.0))
//	output := net.Get(matrix.Vector(0.3, 0.9))
type Network[T matrix.Float] struct {
	widths      []int
	head        node[T]
	layers      []*Dense[T] // head first; same objects as the chain
	sgd         *optim.SGD[T]
	activation  Activation[T]
	propagation Propagation
}

// New builds a network from config.
//
// Returns an error wrapping ErrInvalidTopology for a bad width list,
// ErrInvalidActivation for an activation missing one of its functions,
// or ErrUnknownPropagation for an out-of-range propagation mode.
func New[T matrix.Float](config Config[T]) (*Network[T], error) {
	if len(config.Widths) < 2 {
		return nil, errors.Wrapf(ErrInvalidTopology, "need at least 2 widths (input and output), got %v", config.Widths)
	}
	for i, w := range config.Widths {
		if w <= 0 {
			return nil, errors.Wrapf(ErrInvalidTopology, "width #%d is %d, widths must be > 0", i, w)
		}
	}
	if config.Activation.IsZero() {
		config.Activation = Sigmoid[T]()
	}
	if err := config.Activation.validate(); err != nil {
		return nil, err
	}
	if config.Propagation != PropagatePostUpdate && config.Propagation != PropagateCanonical {
		return nil, errors.Wrapf(ErrUnknownPropagation, "mode %d", int(config.Propagation))
	}

	net := &Network[T]{
		widths:      slices.Clone(config.Widths),
		sgd:         optim.NewSGD(optim.SGDConfig[T]{LR: config.LearningRate}),
		activation:  config.Activation,
		propagation: config.Propagation,
	}
	// Build from the output backwards: each layer wraps the chain after it.
	numLayers := len(net.widths) - 1
	net.layers = make([]*Dense[T], numLayers)
	var tail node[T] = &terminal[T]{width: net.widths[numLayers]}
	for i := numLayers - 1; i >= 0; i-- {
		layer := newDense(net.widths[i], tail, net.activation, net.sgd, net.propagation)
		net.layers[i] = layer
		tail = layer
	}
	net.head = tail

	klog.V(1).Infof("nn.New: widths=%v activation=%s lr=%g propagation=%s parameters=%d",
		net.widths, net.activation, float64(net.sgd.GetLR()), net.propagation, net.NumParameters())
	return net, nil
}

// Get runs inference: the input (Inputs()×1) flows through every layer and
// the network output (Outputs()×1) is returned. Get does not modify the
// network, so repeated calls with the same input return identical outputs.
//
// Panics with matrix.ErrShapeMismatch if input is not (Inputs()×1).
func (n *Network[T]) Get(input *matrix.Matrix[T]) *matrix.Matrix[T] {
	expectShape("Network.Get", "input", input.Shape(), matrix.Shape{Rows: n.Inputs(), Cols: 1})
	return n.head.get(input)
}

// Train performs one backpropagation step on a single (input, target) pair,
// updating every weight and bias in place, and returns the error propagated
// back to the input space. The result always has the input's shape.
//
// Panics with matrix.ErrShapeMismatch if input is not (Inputs()×1) or
// target is not (Outputs()×1).
func (n *Network[T]) Train(input, target *matrix.Matrix[T]) *matrix.Matrix[T] {
	expectShape("Network.Train", "input", input.Shape(), matrix.Shape{Rows: n.Inputs(), Cols: 1})
	expectShape("Network.Train", "target", target.Shape(), matrix.Shape{Rows: n.Outputs(), Cols: 1})
	return n.head.train(input, target)
}

// Randomize overwrites every weight and bias with values drawn uniformly
// from [low, high), layer by layer from input to output (weight before bias).
// The same seed therefore always produces the same network.
func (n *Network[T]) Randomize(rng *rand.Rand, low, high T) {
	n.head.randomize(rng, low, high)
	klog.V(2).Infof("nn.Network.Randomize: widths=%v range=[%g, %g)", n.widths, float64(low), float64(high))
}

// LearningRate returns the current learning rate.
func (n *Network[T]) LearningRate() T {
	return n.sgd.GetLR()
}

// SetLearningRate changes the learning rate of every layer.
func (n *Network[T]) SetLearningRate(lr T) {
	n.sgd.SetLR(lr)
}

// Propagation returns the error propagation mode.
func (n *Network[T]) Propagation() Propagation {
	return n.propagation
}

// Activation returns the activation shared by all layers.
func (n *Network[T]) Activation() Activation[T] {
	return n.activation
}

// Inputs returns the input width.
func (n *Network[T]) Inputs() int {
	return n.widths[0]
}

// Outputs returns the output width.
func (n *Network[T]) Outputs() int {
	return n.widths[len(n.widths)-1]
}

// Widths returns a copy of the layer widths.
func (n *Network[T]) Widths() []int {
	return slices.Clone(n.widths)
}

// NumLayers returns the number of dense layers, len(Widths())-1.
func (n *Network[T]) NumLayers() int {
	return len(n.layers)
}

// Layer returns the i-th dense layer, 0 being the one fed by the input.
// Panics if i is out of range.
func (n *Network[T]) Layer(i int) *Dense[T] {
	return n.layers[i]
}

// NumParameters returns the total number of weights and biases.
func (n *Network[T]) NumParameters() int {
	total := 0
	for _, l := range n.layers {
		total += l.outFeatures*l.inFeatures + l.outFeatures
	}
	return total
}
