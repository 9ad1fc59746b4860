// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "math"

// Elementary functions on the typed surface. Each applies the chain rule:
// the classical derivative of the function evaluated at the primal value,
// multiplied by the incoming derivative.

// Sin returns sin(n).
func (n Number) Sin() Number {
	return Number{Value: math.Sin(n.Value), Deriv: math.Cos(n.Value) * n.Deriv}
}

// Cos returns cos(n).
func (n Number) Cos() Number {
	return Number{Value: math.Cos(n.Value), Deriv: -math.Sin(n.Value) * n.Deriv}
}

// Tan returns tan(n). At odd multiples of π/2 the value and derivative
// follow float64 tan (finite but enormous).
func (n Number) Tan() Number {
	c := math.Cos(n.Value)
	return Number{Value: math.Tan(n.Value), Deriv: n.Deriv / (c * c)}
}

// Exp returns e**n.
func (n Number) Exp() Number {
	v := math.Exp(n.Value)
	return Number{Value: v, Deriv: v * n.Deriv}
}

// Log returns the natural logarithm of n.
//
// Special cases:
//
//	Log(0)     = (-Inf, ±Inf)
//	Log(v < 0) = (NaN, NaN)
func (n Number) Log() Number {
	if n.Value < 0 {
		return Number{Value: math.NaN(), Deriv: math.NaN()}
	}
	return Number{Value: math.Log(n.Value), Deriv: n.Deriv / n.Value}
}

// Sqrt returns the square root of n. Negative values yield NaN.
func (n Number) Sqrt() Number {
	v := math.Sqrt(n.Value)
	return Number{Value: v, Deriv: n.Deriv / (2 * v)}
}
