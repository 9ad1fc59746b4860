// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simple-ad/simplead/internal/dual"
)

func evalAt(t *testing.T, src string, at float64) dual.Number {
	t.Helper()
	node, err := Parse(src)
	require.NoError(t, err)
	res, err := node.Eval(dual.Var(at))
	require.NoError(t, err)
	n, ok := res.(dual.Number)
	require.True(t, ok, "expression involving x must produce a dual number")
	return n
}

func TestEval(t *testing.T) {
	tests := []struct {
		src          string
		at           float64
		value, deriv float64
	}{
		{"x^2 + 2", 3, 11, 6},
		{"sin(x)", 0, 0, 1},
		{"1/x", 2, 0.5, -0.25},
		{"x^0.5", 4, 2, 0.25},
		{"-x^2", 3, -9, -6},
		{"x^-2", 2, 0.25, -0.25},
		{"(x+1)*(x-1)", 2, 3, 4},
		{"2*x - x/2", 4, 6, 1.5},
		{"exp(log(x))", 5, 5, 1},
		{"abs(-x)", 3, 3, 1},
		{"cos(x)*cos(x) + sin(x)*sin(x)", 0.7, 1, 0},
		{"x^x", 2, 4, 4 * (math.Ln2 + 1)},
		{"sqrt(x*x)", 3, 3, 1},
		{"tan(x)", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalAt(t, tt.src, tt.at)
			assert.InDelta(t, tt.value, got.Value, 1e-12)
			assert.InDelta(t, tt.deriv, got.Deriv, 1e-12)
		})
	}
}

func TestConstantExpressionStaysPlain(t *testing.T) {
	node, err := Parse("2 + 3*4")
	require.NoError(t, err)
	res, err := node.Eval(dual.Var(0))
	require.NoError(t, err)
	assert.Equal(t, 14.0, res, "no x involved, result falls through to float64")
}

func TestInactiveSeed(t *testing.T) {
	node, err := Parse("x^2")
	require.NoError(t, err)
	res, err := node.Eval(dual.Const(3))
	require.NoError(t, err)
	n := res.(dual.Number)
	assert.Equal(t, 9.0, n.Value)
	assert.Equal(t, 0.0, n.Deriv)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"dangling operator", "x +", ErrSyntax},
		{"unknown function", "foo(x)", ErrUnknownFunction},
		{"bad character", "x $ 2", ErrSyntax},
		{"missing paren", "sin x", ErrSyntax},
		{"unclosed paren", "(x + 1", ErrSyntax},
		{"trailing garbage", "x 2", ErrSyntax},
		{"empty", "", ErrSyntax},
		{"double dot", "1.2.3", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	node, err := Parse("1/(x - x)")
	require.NoError(t, err)
	_, err = node.Eval(dual.Var(2))
	assert.ErrorIs(t, err, dual.ErrDivisionByZero)

	node, err = Parse("log(-x)")
	require.NoError(t, err)
	_, err = node.Eval(dual.Var(2))
	assert.ErrorIs(t, err, dual.ErrDomain)

	node, err = Parse("x^x")
	require.NoError(t, err)
	_, err = node.Eval(dual.Var(-1))
	assert.ErrorIs(t, err, dual.ErrDomain)
}
