// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives bpnet networks with an oracle and scores them on
// held-out samples.
//
// # Basic Usage
//
//	scenario, _ := train.ScenarioByName[float64]("linear")
//	net, _ := nn.New(nn.Config[float64]{Widths: scenario.Widths, LearningRate: scenario.LearningRate})
//	rng := rand.New(rand.NewPCG(1, 2))
//	net.Randomize(rng, 0, 1)
//
//	trainer, _ := train.NewTrainer(net, scenario.Oracle, scenario.Sampler(), rng, train.Config{})
//	if err := trainer.Run(ctx, scenario.Cycles); err != nil {
//	    return err
//	}
//	fmt.Println(trainer.Evaluate(1000))
package train

import (
	"math/rand/v2"

	"github.com/born-ml/bpnet/internal/parallel"
	"github.com/born-ml/bpnet/internal/train"
	"github.com/born-ml/bpnet/matrix"
	"github.com/born-ml/bpnet/nn"
)

// Oracle returns the expected network output for an input.
type Oracle[T matrix.Float] = train.Oracle[T]

// Sampler draws one input column vector.
type Sampler[T matrix.Float] = train.Sampler[T]

// Trainer trains a network on oracle-labeled samples.
type Trainer[T matrix.Float] = train.Trainer[T]

// Config controls a Trainer.
type Config = train.Config

// Goal describes when Trainer.TrainUntil stops.
type Goal = train.Goal

// ParallelConfig controls how Trainer.Evaluate spreads Get calls across
// goroutines. The zero value evaluates sequentially.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns one worker per CPU.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

const (
	// DefaultCycles is the number of cycles Run performs when asked for 0.
	DefaultCycles = train.DefaultCycles

	// DefaultEvalSamples is the number of samples Evaluate scores when asked for 0.
	DefaultEvalSamples = train.DefaultEvalSamples
)

// Report summarizes an evaluation.
type Report = train.Report

// Scenario is a built-in learning problem.
type Scenario[T matrix.Float] = train.Scenario[T]

var (
	// ErrInvalidConfig indicates a missing dependency or a bad batch size.
	ErrInvalidConfig = train.ErrInvalidConfig

	// ErrGoalNotReached is returned by TrainUntil when it runs out of batches.
	ErrGoalNotReached = train.ErrGoalNotReached
)

// NewTrainer creates a trainer. A nil sampler draws inputs uniform in [0, 1).
func NewTrainer[T matrix.Float](net *nn.Network[T], oracle Oracle[T], sampler Sampler[T], rng *rand.Rand, config Config) (*Trainer[T], error) {
	return train.NewTrainer(net, oracle, sampler, rng, config)
}

// Uniform returns a sampler of (n×1) vectors uniform in [0, 1).
func Uniform[T matrix.Float](n int) Sampler[T] { return train.Uniform[T](n) }

// Label turns a predicate into a 1/0 single-output oracle.
func Label[T matrix.Float](predicate func(input *matrix.Matrix[T]) bool) Oracle[T] {
	return train.Label(predicate)
}

// Score compares outputs against binary targets.
func Score[T matrix.Float](targets, outputs []*matrix.Matrix[T]) Report {
	return train.Score(targets, outputs)
}

// Scenarios returns the built-in scenarios.
func Scenarios[T matrix.Float]() []Scenario[T] { return train.Scenarios[T]() }

// ScenarioNames lists the built-in scenario names.
func ScenarioNames() []string { return train.ScenarioNames() }

// ScenarioByName returns a built-in scenario.
func ScenarioByName[T matrix.Float](name string) (Scenario[T], error) {
	return train.ScenarioByName[T](name)
}
