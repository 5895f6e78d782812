// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command bpnet trains small backpropagation networks on the built-in
// scenarios and benchmarks training speed.
//
// Usage:
//
//	bpnet [flags] <command>
//
// Commands:
//
//	linear, distance, distance2d   train and evaluate a scenario
//	list                           list the scenarios
//	benchmark                      time Train and Get on a 2-256-256-256-256-1 network
//	version                        print the version
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/born-ml/bpnet/nn"
	"github.com/born-ml/bpnet/train"
)

const version = "v0.1.0"

var (
	flagSeed        = flag.Uint64("seed", 0, "Random seed. 0 picks one from the clock; the chosen seed is printed.")
	flagCycles      = flag.Int("cycles", 0, "Training cycles (per batch for goal-driven scenarios). 0 uses the scenario default.")
	flagEval        = flag.Int("eval", train.DefaultEvalSamples, "Number of held-out samples to evaluate on.")
	flagLR          = flag.Float64("lr", 0, "Learning rate. 0 uses the scenario default.")
	flagActivation  = flag.String("activation", "sigmoid", "Activation: "+strings.Join(nn.ActivationNames(), ", ")+".")
	flagPropagation = flag.String("propagation", nn.PropagatePostUpdate.String(), "Error propagation: post-update or canonical.")
	flagInit        = flag.String("init", "uniform", "Weight initialization: uniform (in [0, 1)) or xavier.")
	flagTarget      = flag.Float64("target", 0, "Train in batches until this accuracy (0..1) is reached. 0 uses the scenario default.")
	flagWorkers     = flag.Int("workers", runtime.NumCPU(), "Goroutines used to evaluate the network. 1 evaluates sequentially.")
	flagProgress    = flag.Bool("progress", true, "Display a progress bar while training.")
)

func main() {
	flag.Usage = usage
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := exceptions.TryCatch[error](func() {
		run(flag.Arg(0))
	})
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <%s|list|benchmark|version>\n\nFlags:\n",
		os.Args[0], strings.Join(train.ScenarioNames(), "|"))
	flag.PrintDefaults()
}

func run(command string) {
	switch command {
	case "version":
		fmt.Printf("bpnet %s\n", version)
	case "list":
		fmt.Println(scenarioTable(train.Scenarios[float64]()))
	case "benchmark":
		runBenchmark(optionsFromFlags())
	default:
		scenario := must.M1(train.ScenarioByName[float64](command))
		runScenario(scenario, optionsFromFlags())
	}
}

// options gathers the flag values.
type options struct {
	seed        uint64
	cycles      int
	eval        int
	lr          float64
	activation  string
	propagation string
	init        string
	target      float64
	workers     int
	progress    bool
}

func optionsFromFlags() options {
	opts := options{
		seed:        *flagSeed,
		cycles:      *flagCycles,
		eval:        *flagEval,
		lr:          *flagLR,
		activation:  *flagActivation,
		propagation: *flagPropagation,
		init:        *flagInit,
		target:      *flagTarget,
		workers:     *flagWorkers,
		progress:    *flagProgress,
	}
	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	return opts
}

// parallelConfig returns the evaluation parallelism for opts.workers.
func (o options) parallelConfig() train.ParallelConfig {
	if o.workers <= 1 {
		return train.ParallelConfig{}
	}
	cfg := train.DefaultParallelConfig()
	cfg.Enabled = true
	cfg.NumWorkers = o.workers
	return cfg
}
