// Package bench times repeated calls, the way the demo benchmarks measure
// Train and Get on a large network.
package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
)

// Result holds the timings of n calls of one function.
type Result struct {
	Name    string
	N       int
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Run calls f n times, timing each call.
//
// Panics if n <= 0.
func Run(name string, n int, f func()) Result {
	if n <= 0 {
		exceptions.Panicf("bench.Run(%q): n must be > 0, got %d", name, n)
	}
	times := make([]time.Duration, n)
	for i := range times {
		start := time.Now()
		f()
		times[i] = time.Since(start)
	}
	return summarize(name, times)
}

func summarize(name string, times []time.Duration) Result {
	r := Result{Name: name, N: len(times), Min: times[0], Max: times[0]}
	for _, t := range times {
		r.Total += t
		r.Min = min(r.Min, t)
		r.Max = max(r.Max, t)
	}
	r.Average = r.Total / time.Duration(len(times))
	return r
}

// PerSecond returns the number of calls per second, or 0 if no time elapsed.
func (r Result) PerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.N) / r.Total.Seconds()
}

// String formats the result, e.g.
// "train: 100 calls in 1.2s, avg=12ms min=11ms max=15ms (83.3/s)".
func (r Result) String() string {
	return fmt.Sprintf("%s: %s calls in %s, avg=%s min=%s max=%s (%s/s)",
		r.Name, humanize.Comma(int64(r.N)), r.Total.Round(time.Millisecond),
		r.Average, r.Min, r.Max, humanize.FtoaWithDigits(r.PerSecond(), 1))
}
