// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual is the public API for forward-mode automatic
// differentiation over scalar dual numbers.
//
// A dual.Number pairs a primal value with the derivative of that value.
// Seed an independent variable with Var (derivative 1), compose an
// expression with the typed methods, and read the result's Value and
// Deriv fields:
//
//	x := dual.Var(3.0)
//	y := x.Mul(x).Add(dual.Const(2.0))
//	fmt.Println(y.Value, y.Deriv) // 11 6
//
// The package-level operations (Add, Mul, Pow, Sin, ...) form the dynamic
// surface: they accept any mix of Number and plain Go numeric operands,
// treat plain operands as constants with zero derivative, and report
// domain failures (division by zero, logarithm of a non-positive value)
// as errors. A result is a Number whenever at least one operand was a
// Number; all-plain inputs fall through to ordinary float64 arithmetic.
//
// The derivative slot is a scalar aggregate. Seeding several variables
// active at once sums their contributions, following the total-derivative
// convention; isolate a partial by seeding only that variable with Var
// and the rest with Const.
package dual
