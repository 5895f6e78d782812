package matrix

import "fmt"

// Shape holds the dimensions of a matrix.
//
// Shapes are comparable values: two shapes are equal when both the row
// and the column counts match.
type Shape struct {
	Rows int
	Cols int
}

// Size returns the number of cells of a matrix with this shape.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Valid reports whether both dimensions are positive.
func (s Shape) Valid() bool {
	return s.Rows > 0 && s.Cols > 0
}

// Transposed returns the shape with rows and columns swapped.
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// IsColumn reports whether the shape is a column vector (n×1).
func (s Shape) IsColumn() bool {
	return s.Cols == 1
}

// String returns the shape formatted as (rows×cols).
func (s Shape) String() string {
	return fmt.Sprintf("(%d×%d)", s.Rows, s.Cols)
}
