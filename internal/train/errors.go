package train

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig indicates a missing network, oracle or random
	// source, or a non-positive batch size.
	ErrInvalidConfig = errors.New("train: invalid configuration")

	// ErrGoalNotReached is returned by TrainUntil when MaxBatches batches
	// ran without meeting the goal.
	ErrGoalNotReached = errors.New("train: goal not reached")
)
