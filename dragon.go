// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

// pow10Table holds 10^0 .. 10^9, the largest chunk mulPow10/div2pow10 can
// apply in a single BigInt.MulSmall/DivRemSmall call without overflowing a
// uint32 digit.
var pow10Table = [10]uint32{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
}

// twoPow10Table holds 2*10^0 .. 2*10^9, used by div2pow10's final chunk.
var twoPow10Table = [10]uint32{
	2, 20, 200, 2000, 20000,
	200000, 2000000, 20000000, 200000000, 2000000000,
}

// mulPow10 returns x * 10^n, applying the multiplication in chunks of at
// most 10^9 so every intermediate step stays within a single uint32 digit.
func mulPow10(x BigInt, n int) BigInt {
	const largest = 9
	for n > largest {
		x = x.MulSmall(pow10Table[largest])
		n -= largest
	}
	if n > 0 {
		x = x.MulSmall(pow10Table[n])
	}
	return x
}

// div2pow10 returns x / (2*10^n), rounded toward zero, chunked the same
// way as mulPow10.
func div2pow10(x BigInt, n int) BigInt {
	const largest = 9
	for n > largest {
		x, _ = x.DivRemSmall(pow10Table[largest])
		n -= largest
	}
	x, _ = x.DivRemSmall(twoPow10Table[n])
	return x
}

// divRemUpto16 divides x by scale, where x is known to be less than
// 16*scale, returning the quotient digit (0..15) and the remainder. It
// does so with at most four compare-and-subtract steps using the
// precomputed scale, 2*scale, 4*scale, 8*scale.
func divRemUpto16(x, scale, scale2, scale4, scale8 BigInt) (byte, BigInt) {
	var d byte
	if scale8.LessEqual(x) {
		x = x.Sub(scale8)
		d += 8
	}
	if scale4.LessEqual(x) {
		x = x.Sub(scale4)
		d += 4
	}
	if scale2.LessEqual(x) {
		x = x.Sub(scale2)
		d += 2
	}
	if scale.LessEqual(x) {
		x = x.Sub(scale)
		d++
	}
	return d, x
}

// boundedLess reports whether cmp (the result of a three-way Cmp) should
// be treated as "strictly inside the rounding boundary": when the interval
// is inclusive (closed), a boundary value of cmp==0 counts as inside too.
func boundedLess(inclusive bool, cmp int) bool {
	if inclusive {
		return cmp <= 0
	}
	return cmp < 0
}

// DragonFormatShortest renders the shortest decimal digit string that,
// read back, recovers d uniquely among all floats sharing d's rounding
// interval. buf must have length at least 17. It returns the number of
// digits written to buf and the decimal exponent k such that the value
// equals 0.d[0]d[1]...d[n-1] * 10^k.
//
// This is the Dragon4 algorithm (Steele & White / Burger & Dybvig): exact
// rational arithmetic via BigInt, with no floating-point or approximation
// involved anywhere. Grisu3 (grisu.go) answers the same question far
// faster in the common case and falls back here only when it cannot prove
// its answer is correct.
func DragonFormatShortest(d Decoded, buf []byte) (n int, k int16) {
	if d.Mant == 0 {
		panic("flt2dec: DragonFormatShortest: mant must be nonzero")
	}
	if d.Minus == 0 || d.Plus == 0 {
		panic("flt2dec: DragonFormatShortest: minus and plus must be nonzero")
	}
	if len(buf) < 17 {
		panic("flt2dec: DragonFormatShortest: buf too small")
	}

	k = Estimate(d.Mant+d.Plus, d.Exp)

	mant := BigFromU64(d.Mant)
	minus := BigFromU64(d.Minus)
	plus := BigFromU64(d.Plus)
	scale := BigFromSmall(1)

	if d.Exp < 0 {
		scale = scale.MulPow2(uint(-d.Exp))
	} else {
		mant = mant.MulPow2(uint(d.Exp))
		minus = minus.MulPow2(uint(d.Exp))
		plus = plus.MulPow2(uint(d.Exp))
	}

	if k >= 0 {
		scale = mulPow10(scale, int(k))
	} else {
		mant = mulPow10(mant, int(-k))
		minus = mulPow10(minus, int(-k))
		plus = mulPow10(plus, int(-k))
	}

	if boundedLess(d.Inclusive, scale.Cmp(mant.Add(plus))) {
		k++
	} else {
		mant = mant.MulSmall(10)
		minus = minus.MulSmall(10)
		plus = plus.MulSmall(10)
	}

	scale2 := scale.MulPow2(1)
	scale4 := scale.MulPow2(2)
	scale8 := scale.MulPow2(3)

	i := 0
	var down, up bool
	for {
		digit, rem := divRemUpto16(mant, scale, scale2, scale4, scale8)
		mant = rem
		buf[i] = '0' + digit
		i++

		down = boundedLess(d.Inclusive, mant.Cmp(minus))
		up = boundedLess(d.Inclusive, scale.Cmp(mant.Add(plus)))
		if down || up {
			break
		}
		mant = mant.MulSmall(10)
		minus = minus.MulSmall(10)
		plus = plus.MulSmall(10)
	}

	if up && (!down || mant.MulPow2(1).Cmp(scale) >= 0) {
		carryDigit, grew := roundUp(buf, i)
		if grew {
			// Every emitted digit was '9': the rounded value is a bare
			// power of ten, whose shortest representation is the single
			// digit carryDigit ('1'), not that digit trailing the run of
			// zeros roundUp just wrote.
			buf[0] = carryDigit
			i = 1
			k++
		}
	}

	return i, k
}

// DragonFormatExact renders the leading digits of d's exact decimal
// expansion: at most len(buf) significant digits, and no digit whose place
// value is below 10^limit (so at most k-limit digits). The last kept digit
// is rounded to nearest against the true value, exact ties to even. It
// returns the number of digits written and the decimal exponent k, with the
// same convention as DragonFormatShortest.
//
// Unlike the shortest-digit-string mode, this mode answers "what are the
// first N digits of the exact decimal expansion", so there is no
// uniqueness interval to track: only mant and scale are needed.
func DragonFormatExact(d Decoded, buf []byte, limit int16) (n int, k int16) {
	if d.Mant == 0 {
		panic("flt2dec: DragonFormatExact: mant must be nonzero")
	}

	k = Estimate(d.Mant, d.Exp)

	mant := BigFromU64(d.Mant)
	scale := BigFromSmall(1)

	if d.Exp < 0 {
		scale = scale.MulPow2(uint(-d.Exp))
	} else {
		mant = mant.MulPow2(uint(d.Exp))
	}

	if k >= 0 {
		scale = mulPow10(scale, int(k))
	} else {
		mant = mulPow10(mant, int(-k))
	}

	// Fixup against the half-ulp error bound implied by the full output
	// buffer capacity: if the true value could round up past the next
	// power of ten given that many significant digits, bump k instead of
	// emitting a spurious leading zero.
	thresh := div2pow10(scale, len(buf))
	if thresh.Add(mant).Cmp(scale) >= 0 {
		k++
	} else {
		mant = mant.MulSmall(10)
	}

	length := len(buf)
	if want := int(k) - int(limit); want < length {
		length = want
	}
	if length < 0 {
		length = 0
	}

	scale2 := scale.MulPow2(1)
	scale4 := scale.MulPow2(2)
	scale8 := scale.MulPow2(3)

	i := 0
	for ; i < length; i++ {
		if mant.IsZero() {
			for j := i; j < length; j++ {
				buf[j] = '0'
			}
			return length, k
		}
		digit, rem := divRemUpto16(mant, scale, scale2, scale4, scale8)
		mant = rem
		buf[i] = '0' + digit
		mant = mant.MulSmall(10)
	}

	// Round the truncated tail to nearest-even: compare the remaining
	// fraction (still scaled by 10 from the loop's last iteration) against
	// half of scale. An exact tie rounds to whichever neighbor leaves the
	// final digit even, rather than always rounding up. With no digit kept
	// at all (length == 0) there is no preceding digit to make even, so a
	// tie rounds up.
	half := scale.MulSmall(5)
	cmp := mant.Cmp(half)
	roundsUp := cmp > 0
	if cmp == 0 && (length == 0 || (buf[length-1]-'0')%2 == 1) {
		roundsUp = true
	}
	if roundsUp {
		carryDigit, grew := roundUp(buf, length)
		if grew {
			// Every emitted digit was '9' (or length was 0): the rounded
			// value is a bare power of ten, represented by the single
			// digit carryDigit ('1'), not that digit trailing a run of
			// zeros.
			if len(buf) > 0 {
				buf[0] = carryDigit
				length = 1
			} else {
				length = 0
			}
			k++
		}
	}

	return length, k
}
