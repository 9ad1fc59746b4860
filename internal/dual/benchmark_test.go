// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "testing"

var sinkNumber Number

func BenchmarkMul(b *testing.B) {
	x := Var(1.5)
	y := New(2.5, 0.5)
	for i := 0; i < b.N; i++ {
		sinkNumber = x.Mul(y)
	}
}

func BenchmarkPolynomial(b *testing.B) {
	// 3x^3 - 2x + 1 composed from kernels.
	x := Var(1.1)
	for i := 0; i < b.N; i++ {
		sinkNumber = x.PowReal(3).Scale(3).Sub(x.Scale(2)).Add(Const(1))
	}
}

func BenchmarkSinCos(b *testing.B) {
	x := Var(0.7)
	for i := 0; i < b.N; i++ {
		sinkNumber = x.Sin().Mul(x.Cos())
	}
}

var sinkAny any

func BenchmarkDispatchMul(b *testing.B) {
	x := Var(1.5)
	for i := 0; i < b.N; i++ {
		sinkAny, _ = Mul(x, 2.0)
	}
}
