package cpu

import (
	"golang.org/x/exp/constraints"
)

// MatMul performs matrix multiplication c = a @ b.
// a is (m, k), b is (k, n) and c is (m, n), all row-major.
//
// C[i,j] = sum_k A[i,k] * B[k,j], with the accumulator starting at zero.
// The naive triple loop keeps the summation order fixed, so results are
// reproducible bit for bit across calls.
func MatMul[T constraints.Float](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			var sum T
			for kIdx, av := range aRow {
				sum += av * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
