package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

var (
	// ErrInvalidTopology indicates a width list with fewer than two entries
	// or a non-positive width.
	ErrInvalidTopology = errors.New("nn: invalid topology")

	// ErrInvalidActivation indicates an activation without both Func and
	// Derivative, or an unknown activation name.
	ErrInvalidActivation = errors.New("nn: invalid activation")

	// ErrUnknownPropagation indicates an unknown propagation mode name.
	ErrUnknownPropagation = errors.New("nn: unknown propagation mode")
)

// expectShape panics with matrix.ErrShapeMismatch unless got == want.
func expectShape(op, what string, got, want matrix.Shape) {
	if got != want {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "%s: %s must be %s, got %s", op, what, want, got))
	}
}
