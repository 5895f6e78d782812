// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/bpnet/nn"
	"github.com/born-ml/bpnet/train"
)

// newNetwork builds and initializes the network of a scenario, applying
// the flag overrides in opts.
func newNetwork(s train.Scenario[float64], opts options, rng *rand.Rand) (*nn.Network[float64], error) {
	activation, err := nn.ActivationByName[float64](opts.activation)
	if err != nil {
		return nil, err
	}
	propagation, err := nn.ParsePropagation(opts.propagation)
	if err != nil {
		return nil, err
	}
	lr := s.LearningRate
	if opts.lr > 0 {
		lr = opts.lr
	}
	net, err := nn.New(nn.Config[float64]{
		Widths:       s.Widths,
		Activation:   activation,
		LearningRate: lr,
		Propagation:  propagation,
	})
	if err != nil {
		return nil, err
	}

	switch opts.init {
	case "uniform":
		net.Randomize(rng, 0, 1)
	case "xavier":
		net.RandomizeXavier(rng)
	default:
		return nil, errors.Errorf("unknown -init %q, valid values: uniform, xavier", opts.init)
	}
	return net, nil
}

// goalFor returns the TrainUntil goal for the scenario, or nil to train
// for a fixed number of cycles.
func goalFor(s train.Scenario[float64], opts options) *train.Goal {
	if s.Goal == nil && opts.target <= 0 {
		return nil
	}
	goal := train.Goal{Batch: s.Cycles, Streak: 1}
	if s.Goal != nil {
		goal = *s.Goal
	}
	if opts.cycles > 0 {
		goal.Batch = opts.cycles
	}
	if opts.target > 0 {
		goal.Accuracy = opts.target
	}
	return &goal
}

func runScenario(s train.Scenario[float64], opts options) {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed>>32|1))
	net := must.M1(newNetwork(s, opts, rng))

	cycles := s.Cycles
	if opts.cycles > 0 {
		cycles = opts.cycles
	}
	goal := goalFor(s, opts)

	barMax := cycles
	if goal != nil {
		barMax = -1 // Unknown number of batches: spinner.
	}
	bar := newProgressBar(barMax, s.Name, opts.progress)
	trainer := must.M1(train.NewTrainer(net, s.Oracle, s.Sampler(), rng, train.Config{
		Cycles:      cycles,
		EvalSamples: opts.eval,
		Parallel:    opts.parallelConfig(),
		OnProgress:  func(n int) { _ = bar.Add(n) },
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	klog.V(1).Infof("bpnet: scenario %s, seed %d", s.Name, opts.seed)
	start := time.Now()
	var (
		report train.Report
		err    error
	)
	if goal != nil {
		report, err = trainer.TrainUntil(ctx, *goal)
	} else if err = trainer.Run(ctx, cycles); err == nil {
		report = trainer.Evaluate(0)
	}
	switch {
	case err == nil:
	case errors.Is(err, train.ErrGoalNotReached):
		klog.Warningf("bpnet: %v", err)
	case errors.Is(err, context.Canceled):
		klog.Warningf("bpnet: interrupted after %d cycles", trainer.Trained())
		report = trainer.Evaluate(0)
	default:
		panic(err)
	}
	elapsed := time.Since(start)
	_ = bar.Finish()

	fmt.Println(summaryTable(summary{
		scenario: s,
		net:      net,
		seed:     opts.seed,
		trained:  trainer.Trained(),
		elapsed:  elapsed,
		report:   report,
		goal:     goal,
	}))
}

func newProgressBar(maxCycles int, name string, enabled bool) *progressbar.ProgressBar {
	if !enabled {
		return progressbar.DefaultSilent(int64(maxCycles))
	}
	return progressbar.NewOptions(maxCycles,
		progressbar.OptionSetDescription(fmt.Sprintf("Training %s", name)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("cycles"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
