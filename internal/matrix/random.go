package matrix

import (
	"math"
	"math/rand/v2"
	"unsafe"

	"github.com/gomlx/exceptions"
)

// Randomize overwrites every element with an independent value drawn
// uniformly from [low, high) and returns the receiver.
//
// The random source is explicit so that callers control reproducibility:
// seeding rng fixes the result. A *rand.Rand is not safe for concurrent
// use, so one source must not be shared across goroutines.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	w := matrix.New[float64](4, 2).Randomize(rng, -1, 1)
func (m *Matrix[T]) Randomize(rng *rand.Rand, low, high T) *Matrix[T] {
	if rng == nil {
		exceptions.Panicf("matrix.Randomize: nil random source")
	}
	span := float64(high) - float64(low)
	for i := range m.data {
		v := T(float64(low) + rng.Float64()*span)
		// Rounding to T (float32 in particular) can land exactly on high.
		if v >= high && high > low {
			v = nextToward(high, low)
		}
		m.data[i] = v
	}
	return m
}

// Random creates a rows×cols matrix with elements uniform in [low, high).
func Random[T Float](rows, cols int, rng *rand.Rand, low, high T) *Matrix[T] {
	return New[T](rows, cols).Randomize(rng, low, high)
}

// nextToward returns the T value adjacent to x in the direction of y.
func nextToward[T Float](x, y T) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(float32(x), float32(y)))
	}
	return T(math.Nextafter(float64(x), float64(y)))
}
