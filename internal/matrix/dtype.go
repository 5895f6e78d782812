// Package matrix provides the dense, fixed-shape matrix type used throughout bpnet.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the constraint for matrix element types.
// It admits float32, float64 and any type derived from them.
type Float interface {
	constraints.Float
}

// dtypeName returns the name of T for messages, e.g. "float64".
func dtypeName[T Float]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
