// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr parses and evaluates single-variable arithmetic
// expressions over the dual-number dispatch layer.
//
// Grammar (precedence low to high):
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ "^" unary ]          // right associative
//	primary = NUMBER | "x" | IDENT "(" expr ")" | "(" expr ")"
//
// Known functions: sin, cos, tan, exp, log, sqrt, abs. Numeric literals
// stay plain until combined with the variable, so evaluation exercises
// every operand-kind combination of the dispatch layer.
package expr

import (
	"errors"
	"fmt"

	"github.com/simple-ad/simplead/internal/dual"
)

var (
	// ErrSyntax reports a malformed expression.
	ErrSyntax = errors.New("expr: invalid syntax")

	// ErrUnknownFunction reports a call to a function the evaluator does
	// not know.
	ErrUnknownFunction = errors.New("expr: unknown function")
)

// Node is a parsed expression that can be evaluated at a point.
type Node interface {
	// Eval evaluates the node with the given seed for the variable x.
	// The result is a dual.Number when the subexpression involves x and
	// a plain float64 otherwise.
	Eval(x dual.Number) (any, error)
}

type numberNode float64

func (n numberNode) Eval(dual.Number) (any, error) { return float64(n), nil }

type varNode struct{}

func (varNode) Eval(x dual.Number) (any, error) { return x, nil }

type unaryNode struct {
	operand Node
}

func (n unaryNode) Eval(x dual.Number) (any, error) {
	v, err := n.operand.Eval(x)
	if err != nil {
		return nil, err
	}
	return dual.Neg(v)
}

type binaryNode struct {
	op          byte
	left, right Node
}

func (n binaryNode) Eval(x dual.Number) (any, error) {
	l, err := n.left.Eval(x)
	if err != nil {
		return nil, err
	}
	r, err := n.right.Eval(x)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case '+':
		return dual.Add(l, r)
	case '-':
		return dual.Sub(l, r)
	case '*':
		return dual.Mul(l, r)
	case '/':
		return dual.Div(l, r)
	case '^':
		return dual.Pow(l, r)
	}
	return nil, fmt.Errorf("%w: operator %q", ErrSyntax, n.op)
}

type callNode struct {
	name string
	fn   func(any) (any, error)
	arg  Node
}

func (n callNode) Eval(x dual.Number) (any, error) {
	v, err := n.arg.Eval(x)
	if err != nil {
		return nil, err
	}
	res, err := n.fn(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.name, err)
	}
	return res, nil
}

var functions = map[string]func(any) (any, error){
	"sin":  dual.Sin,
	"cos":  dual.Cos,
	"tan":  dual.Tan,
	"exp":  dual.Exp,
	"log":  dual.Log,
	"sqrt": dual.Sqrt,
	"abs":  dual.Abs,
}
