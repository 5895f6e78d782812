// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/bpnet/matrix"
	"github.com/born-ml/bpnet/nn"
)

func TestPublicAPI(t *testing.T) {
	act, err := nn.ActivationByName[float64]("tanh")
	require.NoError(t, err)

	net, err := nn.New(nn.Config[float64]{
		Widths:      []int{2, 3, 1},
		Activation:  act,
		Propagation: nn.PropagateCanonical,
	})
	require.NoError(t, err)
	net.Randomize(rand.New(rand.NewPCG(1, 2)), -1, 1)

	var layer *nn.Dense[float64] = net.Layer(0)
	assert.Equal(t, 3, layer.OutFeatures())

	inputErr := net.Train(matrix.Vector(0.1, 0.2), matrix.Vector(0.5))
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 1}, inputErr.Shape())

	err = matrix.Check(func() { net.Get(matrix.Vector(1.0)) })
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = nn.New(nn.Config[float64]{Widths: []int{1}})
	require.ErrorIs(t, err, nn.ErrInvalidTopology)
}
