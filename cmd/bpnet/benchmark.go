// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/must"

	"github.com/born-ml/bpnet/internal/bench"
	"github.com/born-ml/bpnet/matrix"
	"github.com/born-ml/bpnet/train"
)

// benchmarkScenario is a wide, deep network whose oracle is irrelevant:
// only the time spent in Train and Get matters.
var benchmarkScenario = train.Scenario[float64]{
	Name:         "benchmark",
	Widths:       []int{2, 256, 256, 256, 256, 1},
	LearningRate: 0.01,
	Cycles:       100,
	Oracle:       train.Label(func(*matrix.Matrix[float64]) bool { return true }),
}

func runBenchmark(opts options) {
	s := benchmarkScenario
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed>>32|1))
	net := must.M1(newNetwork(s, opts, rng))
	n := s.Cycles
	if opts.cycles > 0 {
		n = opts.cycles
	}

	input := matrix.Random(s.Widths[0], 1, rng, 0.0, 1.0)
	target := s.Oracle(input)
	results := []bench.Result{
		bench.Run("train", n, func() { net.Train(input, target) }),
		bench.Run("get", n, func() { net.Get(input) }),
	}

	table := newTable("Benchmark", "Calls", "Total", "Average", "Min", "Max", "Calls/s")
	for _, r := range results {
		table.Row(r.Name, fmt.Sprint(r.N), r.Total.String(), r.Average.String(), r.Min.String(), r.Max.String(),
			fmt.Sprintf("%.1f", r.PerSecond()))
	}
	fmt.Printf("Network %s (%d parameters), seed %d\n", widthsString(net.Widths()), net.NumParameters(), opts.seed)
	fmt.Println(table.String())
}
