package train

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/born-ml/bpnet/internal/matrix"
)

// Report summarizes an evaluation over held-out samples.
type Report struct {
	Samples  int // Number of samples scored.
	Correct  int // Samples whose every output was closer to its label than to the opposite label.
	Positive int // Samples whose first label is 1.

	// AverageError is the mean absolute difference between output and label,
	// over all samples and output components.
	AverageError float64
}

// Accuracy returns Correct / Samples, or 0 for an empty report.
func (r Report) Accuracy() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Samples)
}

// PositiveRate returns Positive / Samples, or 0 for an empty report.
func (r Report) PositiveRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Positive) / float64(r.Samples)
}

// String formats the report for humans, e.g.
// "93.4% correct of 1,000 samples (41.2% positive), average error 0.1042".
func (r Report) String() string {
	return fmt.Sprintf("%s%% correct of %s samples (%s%% positive), average error %.4f",
		humanize.FtoaWithDigits(100*r.Accuracy(), 1), humanize.Comma(int64(r.Samples)),
		humanize.FtoaWithDigits(100*r.PositiveRate(), 1), r.AverageError)
}

// Score compares outputs against targets pairwise.
//
// Labels are binary: an output component o with label l counts as right
// when |l - o| < |(1 - l) - o|, i.e. o is closer to l than to the opposite
// label. A sample is correct when all of its components are right.
//
// Panics with matrix.ErrShapeMismatch if the slices differ in length or a
// pair differs in shape.
func Score[T matrix.Float](targets, outputs []*matrix.Matrix[T]) Report {
	if len(targets) != len(outputs) {
		panic(errors.Wrapf(matrix.ErrShapeMismatch, "train.Score: %d targets, %d outputs", len(targets), len(outputs)))
	}
	var (
		report   = Report{Samples: len(targets)}
		errSum   float64
		errCount int
	)
	for i, target := range targets {
		output := outputs[i]
		if target.Shape() != output.Shape() {
			panic(errors.Wrapf(matrix.ErrShapeMismatch, "train.Score: sample #%d target %s, output %s",
				i, target.Shape(), output.Shape()))
		}
		labels, values := target.Data(), output.Data()
		if labels[0] >= 0.5 {
			report.Positive++
		}
		correct := true
		for j, label := range labels {
			actual, wrong := float64(label), 1-float64(label)
			value := float64(values[j])
			if !(math.Abs(actual-value) < math.Abs(wrong-value)) {
				correct = false
			}
			errSum += math.Abs(actual - value)
			errCount++
		}
		if correct {
			report.Correct++
		}
	}
	if errCount > 0 {
		report.AverageError = errSum / float64(errCount)
	}
	return report
}
