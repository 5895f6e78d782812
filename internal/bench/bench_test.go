package bench

import (
	"testing"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	calls := 0
	r := Run("count", 5, func() { calls++ })

	assert.Equal(t, 5, calls)
	assert.Equal(t, "count", r.Name)
	assert.Equal(t, 5, r.N)
	assert.LessOrEqual(t, r.Min, r.Average)
	assert.LessOrEqual(t, r.Average, r.Max)
	assert.LessOrEqual(t, r.Max, r.Total)
}

func TestRun_InvalidN(t *testing.T) {
	err := exceptions.TryCatch[error](func() { Run("none", 0, func() {}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n must be > 0")
}

func TestSummarize(t *testing.T) {
	r := summarize("train", []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond})

	assert.Equal(t, 60*time.Millisecond, r.Total)
	assert.Equal(t, 20*time.Millisecond, r.Average)
	assert.Equal(t, 10*time.Millisecond, r.Min)
	assert.Equal(t, 30*time.Millisecond, r.Max)
	assert.InDelta(t, 50.0, r.PerSecond(), 1e-9)
	assert.Equal(t, "train: 3 calls in 60ms, avg=20ms min=10ms max=30ms (50/s)", r.String())
}

func TestPerSecond_Zero(t *testing.T) {
	assert.Zero(t, Result{N: 3}.PerSecond())
}
