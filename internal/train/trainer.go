package train

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/bpnet/internal/matrix"
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/parallel"
)

const (
	// DefaultCycles is the number of cycles Run performs when asked for 0.
	DefaultCycles = 100_000

	// DefaultEvalSamples is the number of held-out samples Evaluate scores
	// when asked for 0.
	DefaultEvalSamples = 1000

	// progressEvery is how many cycles pass between context checks and
	// OnProgress calls.
	progressEvery = 1000
)

// Config controls a Trainer. Zero values select the defaults.
type Config struct {
	Cycles      int // Default cycles for Run (default: DefaultCycles).
	EvalSamples int // Default samples for Evaluate (default: DefaultEvalSamples).

	// ReportEvery, if positive, evaluates the network every ReportEvery
	// cycles during Run and logs the report at verbosity 1.
	ReportEvery int

	// Parallel controls how Evaluate spreads Get calls across goroutines.
	// The zero value evaluates sequentially.
	Parallel parallel.Config

	// OnProgress, if set, is called from Run with the number of cycles
	// completed since the previous call.
	OnProgress func(cycles int)
}

// Trainer trains a network on samples labeled by an oracle.
//
// A Trainer owns its random source: inputs for training and evaluation are
// drawn from it sequentially, so a seeded source makes a whole session
// reproducible. A Trainer is not safe for concurrent use.
type Trainer[T matrix.Float] struct {
	net     *nn.Network[T]
	oracle  Oracle[T]
	sampler Sampler[T]
	rng     *rand.Rand
	config  Config
	trained int
}

// NewTrainer creates a trainer. A nil sampler selects Uniform(net.Inputs()).
//
// Returns an error wrapping ErrInvalidConfig if net, oracle or rng is nil.
func NewTrainer[T matrix.Float](net *nn.Network[T], oracle Oracle[T], sampler Sampler[T], rng *rand.Rand, config Config) (*Trainer[T], error) {
	switch {
	case net == nil:
		return nil, errors.Wrap(ErrInvalidConfig, "nil network")
	case oracle == nil:
		return nil, errors.Wrap(ErrInvalidConfig, "nil oracle")
	case rng == nil:
		return nil, errors.Wrap(ErrInvalidConfig, "nil random source")
	}
	if sampler == nil {
		sampler = Uniform[T](net.Inputs())
	}
	if config.Cycles <= 0 {
		config.Cycles = DefaultCycles
	}
	if config.EvalSamples <= 0 {
		config.EvalSamples = DefaultEvalSamples
	}
	return &Trainer[T]{
		net:     net,
		oracle:  oracle,
		sampler: sampler,
		rng:     rng,
		config:  config,
	}, nil
}

// Network returns the trained network.
func (t *Trainer[T]) Network() *nn.Network[T] {
	return t.net
}

// Trained returns the total number of training cycles performed so far.
func (t *Trainer[T]) Trained() int {
	return t.trained
}

// Step performs a single training cycle: draw an input, label it with the
// oracle, train. It returns the error propagated to the input.
func (t *Trainer[T]) Step() *matrix.Matrix[T] {
	input := t.sampler(t.rng)
	inputErr := t.net.Train(input, t.oracle(input))
	t.trained++
	return inputErr
}

// Run performs cycles training cycles (Config.Cycles if cycles <= 0).
//
// Cancellation of ctx is checked before the first cycle and then every
// thousand cycles; Run then returns an error wrapping ctx.Err() and the
// network keeps the updates made so far.
// A shape mismatch between the oracle, the sampler and the network is
// returned as an error wrapping matrix.ErrShapeMismatch.
func (t *Trainer[T]) Run(ctx context.Context, cycles int) error {
	if cycles <= 0 {
		cycles = t.config.Cycles
	}
	klog.V(1).Infof("train: running %d cycles (lr=%g, %d done before)", cycles, float64(t.net.LearningRate()), t.trained)

	var ctxErr error
	err := matrix.Check(func() {
		pending := 0
		for cycle := range cycles {
			if cycle%progressEvery == 0 {
				if ctxErr = ctx.Err(); ctxErr != nil {
					return
				}
			}
			t.Step()
			pending++
			if t.config.ReportEvery > 0 && t.trained%t.config.ReportEvery == 0 {
				klog.V(1).Infof("train: after %d cycles: %s", t.trained, t.Evaluate(0))
			}
			if pending == progressEvery || cycle == cycles-1 {
				t.progress(pending)
				pending = 0
			}
		}
	})
	if err != nil {
		return errors.WithMessagef(err, "train: cycle %d", t.trained+1)
	}
	if ctxErr != nil {
		return errors.Wrapf(ctxErr, "train: stopped after %d cycles", t.trained)
	}
	return nil
}

func (t *Trainer[T]) progress(cycles int) {
	if t.config.OnProgress != nil && cycles > 0 {
		t.config.OnProgress(cycles)
	}
}

// Evaluate scores the network on n fresh samples (Config.EvalSamples if
// n <= 0), see Score. It does not train.
//
// Samples are drawn sequentially from the trainer's random source, then
// the network outputs are computed according to Config.Parallel.
func (t *Trainer[T]) Evaluate(n int) Report {
	if n <= 0 {
		n = t.config.EvalSamples
	}
	inputs := make([]*matrix.Matrix[T], n)
	targets := make([]*matrix.Matrix[T], n)
	for i := range inputs {
		inputs[i] = t.sampler(t.rng)
		targets[i] = t.oracle(inputs[i])
	}
	outputs := parallel.Map(inputs, t.net.Get, t.config.Parallel)

	report := Score(targets, outputs)
	if math.IsNaN(report.AverageError) || math.IsInf(report.AverageError, 0) {
		klog.Warningf("train: non-finite average error after %d cycles, try a lower learning rate", t.trained)
	}
	klog.V(2).Infof("train: evaluated %d samples: %s", n, report)
	return report
}

// Goal describes when TrainUntil stops.
type Goal struct {
	Batch    int     // Training cycles between evaluations. Required.
	Accuracy float64 // Required Report.Accuracy(), in [0, 1].

	// Streak is the number of consecutive evaluations that must reach
	// Accuracy (default 1). A miss resets the count.
	Streak int

	// MaxBatches bounds the number of batches; 0 means no bound.
	MaxBatches int
}

// TrainUntil alternates Run(ctx, goal.Batch) with Evaluate(0) until
// goal.Streak consecutive reports reach goal.Accuracy. It returns the last
// report.
//
// Returns an error wrapping ErrGoalNotReached after goal.MaxBatches batches,
// or any error from Run.
func (t *Trainer[T]) TrainUntil(ctx context.Context, goal Goal) (Report, error) {
	if goal.Batch <= 0 {
		return Report{}, errors.Wrapf(ErrInvalidConfig, "goal batch must be > 0, got %d", goal.Batch)
	}
	streak := max(goal.Streak, 1)

	var report Report
	hits := 0
	for batch := 1; goal.MaxBatches <= 0 || batch <= goal.MaxBatches; batch++ {
		if err := t.Run(ctx, goal.Batch); err != nil {
			return report, err
		}
		report = t.Evaluate(0)
		klog.V(1).Infof("train: batch %d (%d cycles): %s", batch, t.trained, report)
		if report.Accuracy() >= goal.Accuracy {
			hits++
		} else {
			hits = 0
		}
		if hits >= streak {
			return report, nil
		}
	}
	return report, errors.Wrapf(ErrGoalNotReached, "accuracy %.3f < %.3f after %d batches", report.Accuracy(), goal.Accuracy, goal.MaxBatches)
}
