// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import "math/bits"

// log10Of2 is floor(2^32 * log10(2)), a fixed-point approximation good
// enough to estimate the decimal exponent of any f64-range binary value
// without ever calling into floating-point math itself.
const log10Of2 = 1292913986

// Estimate returns floor((bitlen(mant)+exp) * log10(2)), an estimate of the
// decimal exponent k with 10^(k-1) <= mant*2^exp < 10^k that is either
// exact or one too small; it always satisfies
// 10^(Estimate-1) < mant*2^exp < 10^(Estimate+1). Dragon4's fixup step
// checks the estimate against the exact value and raises it by one when it
// is too small, so a cheap, allocation-free approximation is all this needs
// to be.
func Estimate(mant uint64, exp int16) int16 {
	if mant == 0 {
		panic("flt2dec: Estimate: mant must be nonzero")
	}
	nbits := int64(bits.Len64(mant)) + int64(exp)
	return int16((nbits * log10Of2) >> 32)
}
