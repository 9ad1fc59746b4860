// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "math"

// Arithmetic on the typed surface follows IEEE-754 float64 semantics at
// singularities (division by zero yields ±Inf, a logarithm is required for
// Pow with a non-positive base and yields NaN). The dynamic operations in
// dispatch.go guard these cases and return errors instead.

// Add returns a + b. The derivative is the sum of the operand derivatives.
func (n Number) Add(o Number) Number {
	return Number{Value: n.Value + o.Value, Deriv: n.Deriv + o.Deriv}
}

// Sub returns a - b.
func (n Number) Sub(o Number) Number {
	return Number{Value: n.Value - o.Value, Deriv: n.Deriv - o.Deriv}
}

// Mul returns a * b, propagating the product rule.
func (n Number) Mul(o Number) Number {
	return Number{
		Value: n.Value * o.Value,
		Deriv: n.Deriv*o.Value + n.Value*o.Deriv,
	}
}

// Div returns a / b, propagating the quotient rule. Division by a zero
// value follows float64 division (±Inf or NaN).
func (n Number) Div(o Number) Number {
	return Number{
		Value: n.Value / o.Value,
		Deriv: (n.Deriv*o.Value - n.Value*o.Deriv) / (o.Value * o.Value),
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{Value: -n.Value, Deriv: -n.Deriv}
}

// Abs returns |n|. The derivative flips sign with the value; at zero the
// derivative is kept unchanged, matching the right-hand limit.
func (n Number) Abs() Number {
	if n.Value < 0 {
		return n.Neg()
	}
	return n
}

// Scale returns c * n for a plain scalar c.
func (n Number) Scale(c float64) Number {
	return Number{Value: c * n.Value, Deriv: c * n.Deriv}
}

// PowReal returns n**p for a constant (non-differentiated) exponent p,
// using the power rule d(v**p) = p * v**(p-1) * dv. This path places no
// sign restriction on the base beyond those of math.Pow itself.
func (n Number) PowReal(p float64) Number {
	return Number{
		Value: math.Pow(n.Value, p),
		Deriv: p * math.Pow(n.Value, p-1) * n.Deriv,
	}
}

// Pow returns n**o for a differentiated exponent, via the identity
// a**b = exp(b ln a):
//
//	d(a**b) = a**b * (db ln a + b da / a)
//
// The base value must be positive; a non-positive base yields NaN.
func (n Number) Pow(o Number) Number {
	v := math.Pow(n.Value, o.Value)
	return Number{
		Value: v,
		Deriv: v * (o.Deriv*math.Log(n.Value) + o.Value*n.Deriv/n.Value),
	}
}
