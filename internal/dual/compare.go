// Copyright 2025 The simplead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

// Comparisons order Numbers by primal value only. The derivative describes
// the function's sensitivity at the evaluation point, not its magnitude, so
// it plays no part in ordering or equality.

// Less reports whether n.Value < o.Value.
func (n Number) Less(o Number) bool { return n.Value < o.Value }

// LessEqual reports whether n.Value <= o.Value.
func (n Number) LessEqual(o Number) bool { return n.Value <= o.Value }

// Greater reports whether n.Value > o.Value.
func (n Number) Greater(o Number) bool { return n.Value > o.Value }

// GreaterEqual reports whether n.Value >= o.Value.
func (n Number) GreaterEqual(o Number) bool { return n.Value >= o.Value }

// Equal reports whether n.Value == o.Value, regardless of derivatives.
func (n Number) Equal(o Number) bool { return n.Value == o.Value }

// NotEqual reports whether n.Value != o.Value.
func (n Number) NotEqual(o Number) bool { return n.Value != o.Value }
