// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual_test

import (
	"fmt"

	"github.com/simple-ad/simplead/dual"
)

func Example() {
	// Differentiate y = x² + 2 at x = 3.
	x := dual.Var(3.0)
	y := x.Mul(x).Add(dual.Const(2.0))

	fmt.Printf("y(3) = %g\n", y.Value)
	fmt.Printf("y'(3) = %g\n", y.Deriv)

	// Output:
	// y(3) = 11
	// y'(3) = 6
}

func ExampleNumber_Sin() {
	x := dual.Var(0.0)
	y := x.Sin()

	fmt.Printf("sin(0) = %g, d/dx sin(0) = %g\n", y.Value, y.Deriv)

	// Output:
	// sin(0) = 0, d/dx sin(0) = 1
}

func ExampleDiv() {
	// The dynamic surface mixes Numbers with plain literals; the literal
	// is treated as a constant with derivative zero.
	x := dual.Var(2.0)
	y, err := dual.Div(1.0, x)
	if err != nil {
		fmt.Println(err)
		return
	}
	n := y.(dual.Number)

	fmt.Printf("1/x = %g, d(1/x) = %g\n", n.Value, n.Deriv)

	// Output:
	// 1/x = 0.5, d(1/x) = -0.25
}

func ExampleNumber_PowReal() {
	// e^x / sqrt(sin³x + cos³x) and its derivative at x = 1.5.
	fn := func(x dual.Number) dual.Number {
		return x.Exp().Div(
			x.Sin().PowReal(3).Add(x.Cos().PowReal(3)).Sqrt())
	}

	v := fn(dual.Var(1.5))
	fmt.Printf("fn(1.5) = %.4f\n", v.Value)
	fmt.Printf("fn'(1.5) = %.4f\n", v.Deriv)

	// Output:
	// fn(1.5) = 4.4978
	// fn'(1.5) = 4.0534
}

func ExampleLess() {
	x := dual.Var(5.0)

	below, _ := dual.Less(x, 10.0)
	same, _ := dual.Equal(x, 5.0)

	fmt.Println(below, same)

	// Output:
	// true true
}
