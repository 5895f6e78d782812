package matrix

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

var (
	// ErrShapeMismatch indicates incompatible operand shapes: different
	// shapes for elementwise operations, or lhs.Cols != rhs.Rows for MatMul.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidShape indicates a non-positive row or column count.
	ErrInvalidShape = errors.New("matrix: dimensions must be > 0")
)

// Check runs fn and converts a panic raised by a matrix operation into an
// error. Errors wrapping ErrShapeMismatch or ErrInvalidShape can be matched
// with errors.Is. Panics that are not errors are re-raised.
//
// Example:
//
//	err := matrix.Check(func() {
//	    c = a.MatMul(b)
//	})
//	if errors.Is(err, matrix.ErrShapeMismatch) { ... }
func Check(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// sameShape panics with ErrShapeMismatch unless a and b are equal.
func sameShape(op string, a, b Shape) {
	if a != b {
		panic(errors.Wrapf(ErrShapeMismatch, "matrix.%s: %s vs %s", op, a, b))
	}
}

// validShape panics with ErrInvalidShape unless both dimensions are positive.
func validShape(op string, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(errors.Wrapf(ErrInvalidShape, "matrix.%s: got (%d×%d)", op, rows, cols))
	}
}
