// Package cpu implements the pure Go kernels behind dense matrix arithmetic.
//
// Kernels operate on flat row-major slices and never allocate; callers own
// the buffers and are responsible for passing slices of matching length.
// Shape validation happens one level up, in the matrix package, before any
// kernel runs.
package cpu

import (
	"golang.org/x/exp/constraints"
)

// Fill sets every element of dst to v.
func Fill[T constraints.Float](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// AddInplace performs dst[i] += src[i].
func AddInplace[T constraints.Float](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubInplace performs dst[i] -= src[i].
func SubInplace[T constraints.Float](dst, src []T) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

// MulInplace performs the Hadamard product dst[i] *= src[i].
func MulInplace[T constraints.Float](dst, src []T) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

// ScaleInplace performs dst[i] *= s.
func ScaleInplace[T constraints.Float](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

// AddScalarInplace performs dst[i] += s.
func AddScalarInplace[T constraints.Float](dst []T, s T) {
	for i := range dst {
		dst[i] += s
	}
}

// MapInplace replaces every element with f(element).
func MapInplace[T constraints.Float](dst []T, f func(T) T) {
	for i, v := range dst {
		dst[i] = f(v)
	}
}

// Transpose writes the transpose of the m×n matrix src into the n×m matrix dst.
func Transpose[T constraints.Float](dst, src []T, m, n int) {
	for i := 0; i < m; i++ {
		row := src[i*n : (i+1)*n]
		for j, v := range row {
			dst[j*m+i] = v
		}
	}
}
