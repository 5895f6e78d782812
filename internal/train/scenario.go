package train

import (
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

// Scenario is a ready-made learning problem: a topology, a learning rate,
// a training budget and an oracle over inputs uniform in [0, 1).
type Scenario[T matrix.Float] struct {
	Name        string
	Description string

	Widths       []int
	LearningRate T
	Cycles       int

	// Goal, if set, replaces the fixed Cycles budget with TrainUntil.
	Goal *Goal

	Oracle Oracle[T]
}

// Sampler returns the uniform sampler matching the scenario input width.
func (s Scenario[T]) Sampler() Sampler[T] {
	return Uniform[T](s.Widths[0])
}

// Scenarios returns the built-in scenarios, sorted by name.
func Scenarios[T matrix.Float]() []Scenario[T] {
	return []Scenario[T]{
		{
			Name:         "distance",
			Description:  "1 when two numbers are at most 0.3 apart",
			Widths:       []int{2, 4, 4, 1},
			LearningRate: 0.01,
			Cycles:       1_000_000,
			Oracle: Label(func(in *matrix.Matrix[T]) bool {
				return math.Abs(float64(in.At(0, 0)-in.At(1, 0))) <= 0.3
			}),
		},
		{
			Name:         "distance2d",
			Description:  "1 when two points of the unit square are at most 0.5 apart",
			Widths:       []int{4, 8, 8, 1},
			LearningRate: 0.005,
			Cycles:       100_000,
			Goal:         &Goal{Batch: 100_000, Accuracy: 0.9, Streak: 10},
			Oracle: Label(func(in *matrix.Matrix[T]) bool {
				dx := float64(in.At(0, 0) - in.At(2, 0))
				dy := float64(in.At(1, 0) - in.At(3, 0))
				return math.Hypot(dx, dy) <= 0.5
			}),
		},
		{
			Name:         "linear",
			Description:  "1 when the point (x, y) lies above the line y = 0.42·x",
			Widths:       []int{2, 4, 1},
			LearningRate: 0.005,
			Cycles:       200_000,
			Oracle: Label(func(in *matrix.Matrix[T]) bool {
				return in.At(1, 0) > 0.42*in.At(0, 0)
			}),
		},
	}
}

// ScenarioNames returns the names accepted by ScenarioByName.
func ScenarioNames() []string {
	var names []string
	for _, s := range Scenarios[float64]() {
		names = append(names, s.Name)
	}
	return names
}

// ScenarioByName returns the built-in scenario with the given name.
func ScenarioByName[T matrix.Float](name string) (Scenario[T], error) {
	scenarios := Scenarios[T]()
	idx := slices.IndexFunc(scenarios, func(s Scenario[T]) bool { return s.Name == name })
	if idx < 0 {
		return Scenario[T]{}, errors.Errorf("train: unknown scenario %q, valid scenarios: %v", name, ScenarioNames())
	}
	return scenarios[idx], nil
}
