package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum converts m into a gonum dense matrix.
// Elements are converted to float64 and copied.
func ToGonum[T Float](m *Matrix[T]) *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum converts any gonum matrix into a Matrix[T].
// Elements are converted from float64 and copied.
func FromGonum[T Float](src mat.Matrix) *Matrix[T] {
	rows, cols := src.Dims()
	return FromFunc[T](rows, cols, func(r, c int) T {
		return T(src.At(r, c))
	})
}
