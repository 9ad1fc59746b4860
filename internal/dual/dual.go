// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual implements forward-mode automatic differentiation over
// scalar dual numbers.
//
// A Number carries a primal value together with the derivative of that
// value, and every operation propagates both through the chain rule in a
// single forward pass. The derivative slot is a scalar aggregate: when
// several independent variables are seeded active at once, their
// contributions sum (a directional derivative along the vector of active
// perturbations). Per-variable partials are obtained by re-seeding and
// re-evaluating.
package dual

import "fmt"

// Number is a dual number: a primal value paired with the accumulated
// derivative of that value with respect to the active independent
// variables. Numbers are immutable; every operation returns a new Number.
type Number struct {
	Value float64
	Deriv float64
}

// New creates a Number with an explicit derivative seed.
func New(value, deriv float64) Number {
	return Number{Value: value, Deriv: deriv}
}

// Var creates an active independent variable: a Number seeded with
// derivative 1, marking it as differentiated.
//
// Example:
//
//	x := dual.Var(3.0)
//	y := x.Mul(x).Add(dual.Const(2.0)) // y.Value = 11, y.Deriv = 6
func Var(value float64) Number {
	return Number{Value: value, Deriv: 1}
}

// Const creates an inactive variable: a Number seeded with derivative 0.
// It behaves identically to a plain number in every operation.
func Const(value float64) Number {
	return Number{Value: value}
}

// String renders the Number in dual form, e.g. "(3+1ϵ)".
func (n Number) String() string {
	return fmt.Sprintf("(%g+%gϵ)", n.Value, n.Deriv)
}
