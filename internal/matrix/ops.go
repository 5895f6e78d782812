package matrix

import (
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/backend/cpu"
)

// Fill sets every element to v and returns the receiver.
func (m *Matrix[T]) Fill(v T) *Matrix[T] {
	cpu.Fill(m.data, v)
	return m
}

// Scale returns a new matrix with every element multiplied by s.
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	return m.Clone().ScaleInPlace(s)
}

// ScaleInPlace multiplies every element by s and returns the receiver.
func (m *Matrix[T]) ScaleInPlace(s T) *Matrix[T] {
	cpu.ScaleInplace(m.data, s)
	return m
}

// AddScalar returns a new matrix with s added to every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.Clone().AddScalarInPlace(s)
}

// AddScalarInPlace adds s to every element and returns the receiver.
func (m *Matrix[T]) AddScalarInPlace(s T) *Matrix[T] {
	cpu.AddScalarInplace(m.data, s)
	return m
}

// Hadamard returns the elementwise product of m and other.
// Both matrices must have the same shape.
func (m *Matrix[T]) Hadamard(other *Matrix[T]) *Matrix[T] {
	sameShape("Hadamard", m.Shape(), other.Shape())
	return m.Clone().HadamardInPlace(other)
}

// HadamardInPlace multiplies the receiver elementwise by other and returns
// the receiver. Both matrices must have the same shape.
func (m *Matrix[T]) HadamardInPlace(other *Matrix[T]) *Matrix[T] {
	sameShape("HadamardInPlace", m.Shape(), other.Shape())
	cpu.MulInplace(m.data, other.data)
	return m
}

// Add returns m + other. Both matrices must have the same shape.
func (m *Matrix[T]) Add(other *Matrix[T]) *Matrix[T] {
	sameShape("Add", m.Shape(), other.Shape())
	return m.Clone().AddInPlace(other)
}

// AddInPlace adds other to the receiver and returns the receiver.
func (m *Matrix[T]) AddInPlace(other *Matrix[T]) *Matrix[T] {
	sameShape("AddInPlace", m.Shape(), other.Shape())
	cpu.AddInplace(m.data, other.data)
	return m
}

// Sub returns m - other. Both matrices must have the same shape.
func (m *Matrix[T]) Sub(other *Matrix[T]) *Matrix[T] {
	sameShape("Sub", m.Shape(), other.Shape())
	return m.Clone().SubInPlace(other)
}

// SubInPlace subtracts other from the receiver and returns the receiver.
func (m *Matrix[T]) SubInPlace(other *Matrix[T]) *Matrix[T] {
	sameShape("SubInPlace", m.Shape(), other.Shape())
	cpu.SubInplace(m.data, other.data)
	return m
}

// Map returns a new matrix with f applied to every element.
//
// Example:
//
//	activated := z.Map(func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	return m.Clone().MapInPlace(f)
}

// MapInPlace applies f to every element of the receiver and returns it.
func (m *Matrix[T]) MapInPlace(f func(T) T) *Matrix[T] {
	cpu.MapInplace(m.data, f)
	return m
}

// Transpose returns a new Cols×Rows matrix t with t(c, r) = m(r, c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := New[T](m.cols, m.rows)
	cpu.Transpose(out.data, m.data, m.rows, m.cols)
	return out
}

// MatMul returns the matrix product m @ rhs.
//
// Requirements:
//   - m is (M×N) and rhs is (N×K); the result is (M×K).
//
// Panics with ErrShapeMismatch if m.Cols() != rhs.Rows().
func (m *Matrix[T]) MatMul(rhs *Matrix[T]) *Matrix[T] {
	if m.cols != rhs.rows {
		panic(errors.Wrapf(ErrShapeMismatch, "matrix.MatMul: %s @ %s", m.Shape(), rhs.Shape()))
	}
	out := New[T](m.rows, rhs.cols)
	cpu.MatMul(out.data, m.data, rhs.data, m.rows, m.cols, rhs.cols)
	return out
}
