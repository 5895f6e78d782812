// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense, row-major matrices bpnet networks
// compute with.
//
// # Overview
//
// A Matrix[T] has a fixed shape chosen at construction and owns its
// elements. It provides:
//   - Constructors: New, Full, FromSlice, FromFunc, Vector, Identity, Random
//   - Arithmetic: Add, Sub, Hadamard, Scale, AddScalar, MatMul, Transpose
//   - Elementwise Map with arbitrary functions
//   - In-place variants (AddInPlace, MapInPlace, ...) that return the receiver
//   - Interop with gonum through ToGonum and FromGonum
//
// # Basic Usage
//
//	import "github.com/born-ml/bpnet/matrix"
//
//	func main() {
//	    w := matrix.FromFunc(2, 2, func(r, c int) float64 { return float64(r + c) })
//	    x := matrix.Vector(1.0, 2.0)
//
//	    y := w.MatMul(x).AddScalar(0.5)
//	    fmt.Println(y)
//	}
//
// # Errors
//
// Operations on incompatible shapes panic with an error wrapping
// ErrShapeMismatch. Use Check to turn such a panic into an error:
//
//	err := matrix.Check(func() { c = a.MatMul(b) })
//	if errors.Is(err, matrix.ErrShapeMismatch) {
//	    ...
//	}
package matrix
