package nn

import (
	"github.com/pkg/errors"
)

// Propagation selects how a dense layer computes the error it hands back
// to the layer before it during Train.
type Propagation int

const (
	// PropagatePostUpdate returns Wᵀ · tailError where W is the weight
	// AFTER this step's update has been applied. This is the behaviour the
	// network has always had, and it is the default.
	PropagatePostUpdate Propagation = iota

	// PropagateCanonical returns W_oldᵀ · (tailError ⊙ f'(activated)),
	// using the weight from the forward pass. This is textbook
	// backpropagation: the result is the exact negative gradient of
	// ½‖target − output‖² with respect to the layer input.
	PropagateCanonical
)

// String returns the mode name accepted by ParsePropagation.
func (p Propagation) String() string {
	switch p {
	case PropagatePostUpdate:
		return "post-update"
	case PropagateCanonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// ParsePropagation parses "post-update" or "canonical".
func ParsePropagation(name string) (Propagation, error) {
	switch name {
	case "post-update", "postupdate", "":
		return PropagatePostUpdate, nil
	case "canonical":
		return PropagateCanonical, nil
	}
	return 0, errors.Wrapf(ErrUnknownPropagation, "%q (valid: post-update, canonical)", name)
}
