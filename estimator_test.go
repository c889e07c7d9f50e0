// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatePanicsOnZero(t *testing.T) {
	assert.Panics(t, func() {
		Estimate(0, 0)
	})
}

// TestEstimateWithinOneOfExact checks the estimator's documented contract:
// it may be off by one, but never more, from the k such that
// 10^(k-1) < mant*2^exp <= 10^k. The independent check uses
// math.Log10/Log2 directly rather than anything else in this package.
func TestEstimateWithinOneOfExact(t *testing.T) {
	cases := []struct {
		mant uint64
		exp  int16
	}{
		{1, 0},
		{1, -1},
		{1, 1},
		{100, 0},
		{999999999999999, -52},
		{1 << 52, 0},
		{1<<52 + 1, -52},
		{1 << 63, -1074},
	}
	for _, c := range cases {
		exactK := int(math.Ceil(math.Log10(float64(c.mant)) + float64(c.exp)*math.Log10(2)))
		got := Estimate(c.mant, c.exp)
		diff := int(got) - exactK
		assert.True(t, diff == 0 || diff == 1 || diff == -1,
			"mant=%d exp=%d: estimate=%d exact=%d", c.mant, c.exp, got, exactK)
	}
}

func TestEstimateMonotonic(t *testing.T) {
	prev := Estimate(1, -100)
	for exp := int16(-99); exp <= 100; exp++ {
		got := Estimate(1, exp)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
