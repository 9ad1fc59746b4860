// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import "errors"

// Errors returned by the dynamic operations in dispatch.go. The typed
// methods on Number never return errors; they follow float64 semantics.
var (
	// ErrUnsupportedOperand reports an operand that is neither a Number
	// nor a plain Go numeric value.
	ErrUnsupportedOperand = errors.New("dual: unsupported operand kind")

	// ErrDivisionByZero reports a divisor whose value is zero.
	ErrDivisionByZero = errors.New("dual: division by zero")

	// ErrDomain reports an argument outside the real domain of the
	// operation: a logarithm or differentiated-exponent power of a
	// non-positive base, or the square root of a negative value.
	ErrDomain = errors.New("dual: argument outside the function domain")
)
