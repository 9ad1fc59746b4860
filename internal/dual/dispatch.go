// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "fmt"

// The dynamic operations resolve behavior by runtime operand kind, the way
// the library is driven from untyped callers (the expression evaluator, and
// any code mixing Numbers with plain literals). A plain numeric operand is
// normalized to a Number with derivative 0; an operand of any other kind is
// rejected with ErrUnsupportedOperand.
//
// Kind preservation: if at least one operand is a Number the result is a
// Number; if every operand is plain the operation falls through to ordinary
// float64 arithmetic and returns a float64.
//
// Unlike the typed methods, this surface guards singularities and returns
// ErrDivisionByZero / ErrDomain instead of Inf or NaN.

// lift normalizes an operand to a Number, reporting whether it was a
// Number to begin with.
func lift(x any) (Number, bool, error) {
	switch v := x.(type) {
	case Number:
		return v, true, nil
	case float64:
		return Number{Value: v}, false, nil
	case float32:
		return Number{Value: float64(v)}, false, nil
	case int:
		return Number{Value: float64(v)}, false, nil
	case int32:
		return Number{Value: float64(v)}, false, nil
	case int64:
		return Number{Value: float64(v)}, false, nil
	default:
		return Number{}, false, fmt.Errorf("%w: %T", ErrUnsupportedOperand, x)
	}
}

// wrap returns a Number result in the kind implied by the operands.
func wrap(n Number, isDual bool) any {
	if isDual {
		return n
	}
	return n.Value
}

// Add returns x + y for any combination of Number and plain operands.
func Add(x, y any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	b, db, err := lift(y)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return wrap(a.Add(b), da || db), nil
}

// Sub returns x - y. Operand order is significant: Sub(n, x) computes the
// reflected form n - x, not x - n.
func Sub(x, y any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("sub: %w", err)
	}
	b, db, err := lift(y)
	if err != nil {
		return nil, fmt.Errorf("sub: %w", err)
	}
	return wrap(a.Sub(b), da || db), nil
}

// Mul returns x * y.
func Mul(x, y any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	b, db, err := lift(y)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return wrap(a.Mul(b), da || db), nil
}

// Div returns x / y, failing with ErrDivisionByZero when the divisor's
// value is zero.
func Div(x, y any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("div: %w", err)
	}
	b, db, err := lift(y)
	if err != nil {
		return nil, fmt.Errorf("div: %w", err)
	}
	if b.Value == 0 {
		return nil, fmt.Errorf("div: %w", ErrDivisionByZero)
	}
	return wrap(a.Div(b), da || db), nil
}

// Pow returns x ** y. A plain exponent always takes the constant-exponent
// power rule, which places no sign restriction on the base. A Number
// exponent requires the general exp/log identity and therefore a strictly
// positive base value; otherwise Pow fails with ErrDomain.
func Pow(x, y any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}
	b, db, err := lift(y)
	if err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}
	if !db {
		return wrap(a.PowReal(b.Value), da), nil
	}
	if a.Value <= 0 {
		return nil, fmt.Errorf("pow: non-positive base %g with differentiated exponent: %w", a.Value, ErrDomain)
	}
	return a.Pow(b), nil
}

// Neg returns -x.
func Neg(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("neg: %w", err)
	}
	return wrap(a.Neg(), da), nil
}

// Abs returns |x|.
func Abs(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	return wrap(a.Abs(), da), nil
}

// Sin returns sin(x). A Number argument yields a Number with the chain
// rule applied; a plain argument falls through to math.Sin.
func Sin(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("sin: %w", err)
	}
	return wrap(a.Sin(), da), nil
}

// Cos returns cos(x).
func Cos(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("cos: %w", err)
	}
	return wrap(a.Cos(), da), nil
}

// Tan returns tan(x).
func Tan(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}
	return wrap(a.Tan(), da), nil
}

// Exp returns e**x.
func Exp(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("exp: %w", err)
	}
	return wrap(a.Exp(), da), nil
}

// Log returns the natural logarithm of x, failing with ErrDomain when the
// argument's value is not positive.
func Log(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	if a.Value <= 0 {
		return nil, fmt.Errorf("log: non-positive argument %g: %w", a.Value, ErrDomain)
	}
	return wrap(a.Log(), da), nil
}

// Sqrt returns the square root of x, failing with ErrDomain when the
// argument's value is negative.
func Sqrt(x any) (any, error) {
	a, da, err := lift(x)
	if err != nil {
		return nil, fmt.Errorf("sqrt: %w", err)
	}
	if a.Value < 0 {
		return nil, fmt.Errorf("sqrt: negative argument %g: %w", a.Value, ErrDomain)
	}
	return wrap(a.Sqrt(), da), nil
}

// Less reports x < y by primal value.
func Less(x, y any) (bool, error) {
	a, b, err := liftPair("less", x, y)
	if err != nil {
		return false, err
	}
	return a.Less(b), nil
}

// LessEqual reports x <= y by primal value.
func LessEqual(x, y any) (bool, error) {
	a, b, err := liftPair("less-equal", x, y)
	if err != nil {
		return false, err
	}
	return a.LessEqual(b), nil
}

// Greater reports x > y by primal value.
func Greater(x, y any) (bool, error) {
	a, b, err := liftPair("greater", x, y)
	if err != nil {
		return false, err
	}
	return a.Greater(b), nil
}

// GreaterEqual reports x >= y by primal value.
func GreaterEqual(x, y any) (bool, error) {
	a, b, err := liftPair("greater-equal", x, y)
	if err != nil {
		return false, err
	}
	return a.GreaterEqual(b), nil
}

// Equal reports x == y by primal value; derivatives never participate.
func Equal(x, y any) (bool, error) {
	a, b, err := liftPair("equal", x, y)
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}

// NotEqual reports x != y by primal value.
func NotEqual(x, y any) (bool, error) {
	a, b, err := liftPair("not-equal", x, y)
	if err != nil {
		return false, err
	}
	return a.NotEqual(b), nil
}

func liftPair(op string, x, y any) (Number, Number, error) {
	a, _, err := lift(x)
	if err != nil {
		return Number{}, Number{}, fmt.Errorf("%s: %w", op, err)
	}
	b, _, err := lift(y)
	if err != nil {
		return Number{}, Number{}, fmt.Errorf("%s: %w", op, err)
	}
	return a, b, nil
}
