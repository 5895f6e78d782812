package matrix

import (
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/backend/cpu"
)

// Matrix is a dense, row-major matrix with a fixed shape.
//
// The shape is set at construction and never changes. Every Matrix owns its
// storage: value-returning operations allocate a fresh result, and in-place
// operations (the *InPlace methods) mutate the receiver and return it so
// calls can be chained. No two matrices ever share a backing buffer.
//
// Binary operations validate shapes before touching any cell and panic with
// an error wrapping ErrShapeMismatch; use Check to turn that into an error.
//
// Example:
//
//	w := matrix.FromFunc[float64](2, 3, func(r, c int) float64 { return float64(r + c) })
//	x := matrix.Vector[float64](1, 2, 3)
//	y := w.MatMul(x) // (2×1)
type Matrix[T Float] struct {
	rows, cols int
	data       []T // len == rows*cols, offset = row*cols + col
}

// New creates a rows×cols matrix filled with zeros.
func New[T Float](rows, cols int) *Matrix[T] {
	validShape("New", rows, cols)
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Full creates a rows×cols matrix with every cell set to v.
func Full[T Float](rows, cols int, v T) *Matrix[T] {
	m := New[T](rows, cols)
	cpu.Fill(m.data, v)
	return m
}

// FromFunc creates a rows×cols matrix with cell (r, c) set to f(r, c).
// f is called once per cell in row-major order.
func FromFunc[T Float](rows, cols int, f func(row, col int) T) *Matrix[T] {
	m := New[T](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.data[r*cols+c] = f(r, c)
		}
	}
	return m
}

// FromSlice creates a rows×cols matrix from row-major data.
// The slice is copied.
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "matrix.FromSlice: got (%d×%d)", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"matrix.FromSlice: shape (%d×%d) requires %d elements, got %d", rows, cols, rows*cols, len(data))
	}
	m := New[T](rows, cols)
	copy(m.data, data)
	return m, nil
}

// Vector creates a column vector (n×1) holding values.
func Vector[T Float](values ...T) *Matrix[T] {
	m := New[T](len(values), 1)
	copy(m.data, values)
	return m
}

// Identity creates an n×n identity matrix.
func Identity[T Float](n int) *Matrix[T] {
	m := New[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Shape returns the matrix dimensions.
func (m *Matrix[T]) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// At returns the element at (row, col).
// Panics if the indices are out of bounds.
func (m *Matrix[T]) At(row, col int) T {
	return m.data[m.offset("At", row, col)]
}

// Set assigns v to the element at (row, col).
// Panics if the indices are out of bounds.
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[m.offset("Set", row, col)] = v
}

func (m *Matrix[T]) offset(op string, row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		exceptions.Panicf("matrix.%s(%d, %d): index out of bounds for shape %s", op, row, col, m.Shape())
	}
	return row*m.cols + col
}

// Data returns a row-major copy of the matrix elements.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// CopyFrom overwrites the receiver with the contents of src.
// Both matrices must have the same shape.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) *Matrix[T] {
	sameShape("CopyFrom", m.Shape(), src.Shape())
	copy(m.data, src.data)
	return m
}

// Equal reports whether other has the same shape and bit-identical elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether other has the same shape and every element
// differs from the receiver's by at most eps.
func (m *Matrix[T]) ApproxEqual(other *Matrix[T], eps T) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	for i, v := range m.data {
		diff := v - other.data[i]
		if diff < 0 {
			diff = -diff
		}
		if !(diff <= eps) {
			return false
		}
	}
	return true
}

// String returns the matrix contents, one bracketed row per line,
// preceded by its element type and shape.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix[")
	sb.WriteString(dtypeName[T]())
	sb.WriteString("]")
	sb.WriteString(m.Shape().String())
	sb.WriteString("\n")
	bits := 64
	var zero T
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strconv.FormatFloat(float64(m.data[r*m.cols+c]), 'g', -1, bits))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
