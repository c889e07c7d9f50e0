// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallBig is a width-8, capacity-3 instantiation of the same digit
// primitives BigInt uses, kept tiny deliberately so overflow is cheap to
// hit in a table of ordinary test inputs instead of needing values near
// 2^1152.
type smallBig struct {
	size int
	base [3]uint8
}

func smallBigFromU64(v uint64) smallBig {
	var b smallBig
	sz := 0
	for v > 0 {
		b.base[sz] = uint8(v)
		v >>= 8
		sz++
	}
	b.size = sz
	return b
}

func (b smallBig) add(other smallBig) smallBig {
	sz := max(b.size, other.size)
	var carry bool
	for i := 0; i < sz; i++ {
		c, v := fullAdd(b.base[i], other.base[i], carry)
		b.base[i] = v
		carry = c
	}
	if carry {
		if sz >= len(b.base) {
			panic("flt2dec: smallBig.add: capacity exceeded")
		}
		b.base[sz] = 1
		sz++
	}
	b.size = sz
	return b
}

func (b smallBig) mulSmall(k uint8) smallBig {
	sz := b.size
	var carry uint8
	for i := 0; i < sz; i++ {
		c, v := fullMul(b.base[i], k, carry)
		b.base[i] = v
		carry = c
	}
	if carry > 0 {
		if sz >= len(b.base) {
			panic("flt2dec: smallBig.mulSmall: capacity exceeded")
		}
		b.base[sz] = carry
		sz++
	}
	b.size = sz
	return b
}

func TestSmallBigOverflowPanics(t *testing.T) {
	// 255 in every one of the 3 digits, +1, overflows a width-8 cap-3 big.
	b := smallBig{size: 3, base: [3]uint8{255, 255, 255}}
	assert.Panics(t, func() {
		b.add(smallBigFromU64(1))
	})
}

func TestSmallBigMulSmallOverflowPanics(t *testing.T) {
	b := smallBigFromU64(1 << 23) // fills all 3 width-8 digits
	assert.Panics(t, func() {
		b.mulSmall(2)
	})
}

func TestSmallBigArithmetic(t *testing.T) {
	a := smallBigFromU64(100)
	b := smallBigFromU64(200)
	sum := a.add(b)
	require.Equal(t, smallBigFromU64(300), sum)
}

func TestBigFromU64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 32, 1<<64 - 1} {
		b := BigFromU64(v)
		got := uint64(0)
		for i := b.size - 1; i >= 0; i-- {
			got = got<<32 | uint64(b.base[i])
		}
		assert.Equal(t, v, got, "round trip of %d", v)
	}
}

func TestBigIntAddSub(t *testing.T) {
	a := BigFromU64(12345)
	b := BigFromU64(6789)
	sum := a.Add(b)
	require.Equal(t, 0, sum.Cmp(BigFromU64(12345+6789)))

	diff := sum.Sub(b)
	require.Equal(t, 0, diff.Cmp(a))
}

func TestBigIntSubUnderflowPanics(t *testing.T) {
	a := BigFromU64(1)
	b := BigFromU64(2)
	assert.Panics(t, func() {
		a.Sub(b)
	})
}

func TestBigIntMulPow2MatchesRepeatedDouble(t *testing.T) {
	for _, n := range []uint{0, 1, 7, 31, 32, 33, 63, 64, 65, 100} {
		base := BigFromU64(123456789)
		byShift := base.MulPow2(n)

		byDouble := base
		for i := uint(0); i < n; i++ {
			byDouble = byDouble.Add(byDouble)
		}

		assert.Equal(t, 0, byShift.Cmp(byDouble), "mismatch at n=%d", n)
	}
}

func TestBigIntMulSmallAssociativity(t *testing.T) {
	base := BigFromU64(987654321)
	direct := base.MulSmall(35) // 5*7

	viaChain := base.MulSmall(5).MulSmall(7)

	assert.Equal(t, 0, direct.Cmp(viaChain))
}

func TestBigIntDivRemSmall(t *testing.T) {
	b := BigFromU64(100000)
	q, r := b.DivRemSmall(7)
	require.Equal(t, uint32(100000%7), r)
	assert.Equal(t, 0, q.Cmp(BigFromU64(100000/7)))
}

func TestBigIntCmp(t *testing.T) {
	small := BigFromU64(100)
	big := BigFromU64(200)
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(BigFromU64(100)))
	assert.True(t, small.Less(big))
	assert.True(t, small.LessEqual(BigFromU64(100)))
}

func TestBigIntMulDigits(t *testing.T) {
	a := BigFromU64(123456789)
	b := BigFromU64(987654321)

	viaMulSmall := BigFromSmall(0)
	// Build b's value digit-by-digit through repeated small multiplies and
	// check it against BigFromU64; MulDigits is then checked against the
	// native uint64 product.
	remaining := uint64(987654321)
	place := BigFromSmall(1)
	for remaining > 0 {
		d := remaining % 10
		viaMulSmall = viaMulSmall.Add(place.MulSmall(uint32(d)))
		place = place.MulSmall(10)
		remaining /= 10
	}
	require.Equal(t, 0, viaMulSmall.Cmp(b))

	product := a.MulDigits(b.base[:b.size])
	expected := BigFromU64(123456789 * 987654321)
	assert.Equal(t, 0, product.Cmp(expected))
}

func TestBigIntIsZero(t *testing.T) {
	assert.True(t, BigInt{}.IsZero())
	assert.True(t, BigFromU64(0).IsZero())
	assert.False(t, BigFromU64(1).IsZero())
}

func TestFullDivRemPanicsOnBadBorrow(t *testing.T) {
	assert.Panics(t, func() {
		fullDivRem[uint32](0, 5, 10) // borrow >= divisor
	})
	assert.Panics(t, func() {
		fullDivRem[uint32](0, 0, 0) // division by zero
	})
}
