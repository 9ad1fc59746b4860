// Package main implements the simplead CLI commands.
// This file contains the eval command: parse an expression over x,
// evaluate it at a point, and print the value and derivative.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simple-ad/simplead/dual"
	"github.com/simple-ad/simplead/internal/expr"
)

var (
	evalAt       float64
	evalInactive bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression and its derivative at a point",
	Long: `Evaluates a single-variable expression over "x" together with its
first derivative, using forward-mode automatic differentiation.

Supported syntax: numbers, x, + - * / ^, parentheses, unary minus, and
the functions sin, cos, tan, exp, log, sqrt, abs.`,
	Example: `  simplead eval "x^2 + 2" --at 3
  simplead eval "sin(x)*exp(-x)" --at 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64Var(&evalAt, "at", 0, "point at which to evaluate")
	evalCmd.Flags().BoolVar(&evalInactive, "inactive", false,
		"seed x as inactive (derivative 0) instead of active")
}

func runEval(cmd *cobra.Command, args []string) error {
	node, err := expr.Parse(args[0])
	if err != nil {
		return err
	}

	x := dual.Var(evalAt)
	if evalInactive {
		x = dual.Const(evalAt)
	}

	res, err := node.Eval(x)
	if err != nil {
		return err
	}

	switch v := res.(type) {
	case dual.Number:
		fmt.Printf("f(%g) = %g\n", evalAt, v.Value)
		fmt.Printf("df/dx = %g\n", v.Deriv)
	case float64:
		// Constant expression, no x involved.
		fmt.Printf("f = %g\n", v)
		fmt.Printf("df/dx = 0\n")
	}
	return nil
}
