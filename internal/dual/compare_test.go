// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonsIgnoreDerivative(t *testing.T) {
	// Same values, wildly different derivatives.
	a := New(5.0, 100.0)
	b := New(5.0, -3.0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.NotEqual(b))
	assert.False(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.False(t, a.Greater(b))
	assert.True(t, a.GreaterEqual(b))
}

func TestComparisonOrdering(t *testing.T) {
	lo := Var(2.0)
	hi := Var(4.0)

	assert.True(t, lo.Less(hi))
	assert.False(t, hi.Less(lo))
	assert.False(t, lo.Less(lo))
	assert.True(t, lo.LessEqual(lo))
	assert.True(t, hi.Greater(lo))
	assert.True(t, hi.GreaterEqual(hi))
	assert.True(t, lo.NotEqual(hi))
}
