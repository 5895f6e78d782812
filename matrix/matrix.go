// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/bpnet/internal/matrix"
)

// Float is the element type constraint: float32 or float64.
type Float = matrix.Float

// Matrix is a dense row-major matrix.
type Matrix[T Float] = matrix.Matrix[T]

// Shape is the (rows, cols) pair of a matrix.
type Shape = matrix.Shape

// Errors

var (
	// ErrShapeMismatch indicates incompatible operand shapes.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrInvalidShape indicates a non-positive row or column count.
	ErrInvalidShape = matrix.ErrInvalidShape
)

// Check runs fn and converts a panic raised by a matrix operation into an error.
func Check(fn func()) error {
	return matrix.Check(fn)
}

// Constructors

// New creates a rows×cols matrix of zeros.
//
// Example:
//
//	m := matrix.New[float64](4, 2)
func New[T Float](rows, cols int) *Matrix[T] {
	return matrix.New[T](rows, cols)
}

// Full creates a rows×cols matrix with every element set to v.
func Full[T Float](rows, cols int, v T) *Matrix[T] {
	return matrix.Full(rows, cols, v)
}

// FromFunc creates a rows×cols matrix with element (r, c) set to f(r, c).
func FromFunc[T Float](rows, cols int, f func(row, col int) T) *Matrix[T] {
	return matrix.FromFunc(rows, cols, f)
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// Vector creates a column vector (len(values)×1).
func Vector[T Float](values ...T) *Matrix[T] {
	return matrix.Vector(values...)
}

// Identity creates the n×n identity matrix.
func Identity[T Float](n int) *Matrix[T] {
	return matrix.Identity[T](n)
}

// Random creates a rows×cols matrix with elements uniform in [low, high).
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	w := matrix.Random(4, 2, rng, -1.0, 1.0)
func Random[T Float](rows, cols int, rng *rand.Rand, low, high T) *Matrix[T] {
	return matrix.Random(rows, cols, rng, low, high)
}

// Gonum interop

// ToGonum copies m into a new gonum dense matrix.
func ToGonum[T Float](m *Matrix[T]) *mat.Dense {
	return matrix.ToGonum(m)
}

// FromGonum copies a gonum matrix into a new Matrix.
func FromGonum[T Float](src mat.Matrix) *Matrix[T] {
	return matrix.FromGonum[T](src)
}
