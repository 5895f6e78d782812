package nn

import (
	"math"
	"math/rand/v2"

	"k8s.io/klog/v2"
)

// XavierBound returns the Xavier (Glorot) uniform bound for a layer.
//
// bound = sqrt(6 / (fan_in + fan_out))
//
// Weights drawn from U(-bound, bound) keep the variance of activations
// roughly constant across layers.
func XavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// RandomizeXavier initializes every layer with Xavier (Glorot) uniform
// weights and zero biases, layer by layer from input to output.
//
// Randomize(rng, 0, 1) reproduces the classic demo setup; RandomizeXavier
// is the better starting point for deep or wide networks, where all-positive
// weights saturate sigmoid layers.
func (n *Network[T]) RandomizeXavier(rng *rand.Rand) {
	for i, layer := range n.layers {
		bound := T(XavierBound(layer.inFeatures, layer.outFeatures))
		layer.weight.Randomize(rng, -bound, bound)
		layer.bias.Fill(0)
		klog.V(2).Infof("nn.RandomizeXavier: layer #%d (%d→%d) bound=%g", i, layer.inFeatures, layer.outFeatures, float64(bound))
	}
}
