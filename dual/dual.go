// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/simple-ad/simplead/internal/dual"
)

// Number is a dual number: a primal value paired with the accumulated
// derivative of that value with respect to the active independent
// variables. Operations never mutate a Number; they return new values.
type Number = dual.Number

// Errors returned by the dynamic operations.
var (
	ErrUnsupportedOperand = dual.ErrUnsupportedOperand
	ErrDivisionByZero     = dual.ErrDivisionByZero
	ErrDomain             = dual.ErrDomain
)

// New creates a Number with an explicit derivative seed.
func New(value, deriv float64) Number {
	return dual.New(value, deriv)
}

// Var creates an active independent variable (derivative seeded to 1).
//
// Example:
//
//	x := dual.Var(2.0)
//	y := x.PowReal(3) // y.Value = 8, y.Deriv = 12
func Var(value float64) Number {
	return dual.Var(value)
}

// Const creates an inactive variable (derivative seeded to 0). It is
// interchangeable with a plain number on the dynamic surface.
func Const(value float64) Number {
	return dual.Const(value)
}

// Dynamic operations. Operands may be Numbers or plain Go numeric values
// (float64, float32, int, int32, int64); anything else fails with
// ErrUnsupportedOperand.

// Add returns x + y.
func Add(x, y any) (any, error) { return dual.Add(x, y) }

// Sub returns x - y, order-sensitive in both value and derivative.
func Sub(x, y any) (any, error) { return dual.Sub(x, y) }

// Mul returns x * y under the product rule.
func Mul(x, y any) (any, error) { return dual.Mul(x, y) }

// Div returns x / y under the quotient rule, failing with
// ErrDivisionByZero on a zero-valued divisor.
func Div(x, y any) (any, error) { return dual.Div(x, y) }

// Pow returns x ** y. Plain exponents use the constant-exponent power
// rule; a Number exponent requires a positive base value.
func Pow(x, y any) (any, error) { return dual.Pow(x, y) }

// Neg returns -x.
func Neg(x any) (any, error) { return dual.Neg(x) }

// Abs returns |x|.
func Abs(x any) (any, error) { return dual.Abs(x) }

// Sin returns sin(x): a Number in yields a Number out, a plain value in
// yields a plain float64 out.
func Sin(x any) (any, error) { return dual.Sin(x) }

// Cos returns cos(x).
func Cos(x any) (any, error) { return dual.Cos(x) }

// Tan returns tan(x).
func Tan(x any) (any, error) { return dual.Tan(x) }

// Exp returns e**x.
func Exp(x any) (any, error) { return dual.Exp(x) }

// Log returns the natural logarithm of x, failing with ErrDomain for a
// non-positive argument value.
func Log(x any) (any, error) { return dual.Log(x) }

// Sqrt returns the square root of x, failing with ErrDomain for a
// negative argument value.
func Sqrt(x any) (any, error) { return dual.Sqrt(x) }

// Comparisons resolve by primal value only and return plain booleans.

// Less reports x < y.
func Less(x, y any) (bool, error) { return dual.Less(x, y) }

// LessEqual reports x <= y.
func LessEqual(x, y any) (bool, error) { return dual.LessEqual(x, y) }

// Greater reports x > y.
func Greater(x, y any) (bool, error) { return dual.Greater(x, y) }

// GreaterEqual reports x >= y.
func GreaterEqual(x, y any) (bool, error) { return dual.GreaterEqual(x, y) }

// Equal reports x == y by value, ignoring derivatives.
func Equal(x, y any) (bool, error) { return dual.Equal(x, y) }

// NotEqual reports x != y by value.
func NotEqual(x, y any) (bool, error) { return dual.NotEqual(x, y) }
