// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

// digit is the set of unsigned integer widths the fixed-capacity big
// integer's digit primitives are built for. BigInt itself is only ever
// instantiated at width 32 (see bigCap below); width 8 is exercised by the
// test suite to hit overflow behavior with a tiny, cheap-to-enumerate
// capacity.
type digit interface {
	~uint8 | ~uint16 | ~uint32
}

func digitBits[T digit]() uint {
	switch any(T(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	}
	panic("flt2dec: unsupported digit width")
}

// fullAdd computes self + other + carryIn using a double-width
// accumulator, returning the carry out and the truncated sum.
func fullAdd[T digit](a, b T, carryIn bool) (carryOut bool, v T) {
	w := digitBits[T]()
	sum := uint64(a) + uint64(b)
	if carryIn {
		sum++
	}
	return sum>>w != 0, T(sum)
}

// fullMul computes self * other + carryIn using a double-width
// accumulator; the result fits exactly in two digits.
func fullMul[T digit](a, b, carryIn T) (carryOut, v T) {
	w := digitBits[T]()
	p := uint64(a)*uint64(b) + uint64(carryIn)
	return T(p >> w), T(p)
}

// fullMulAdd computes self * other + other2 + carryIn.
func fullMulAdd[T digit](a, b, c, carryIn T) (carryOut, v T) {
	w := digitBits[T]()
	p := uint64(a)*uint64(b) + uint64(c) + uint64(carryIn)
	return T(p >> w), T(p)
}

// fullDivRem computes (borrow*B + low) / d, (borrow*B + low) % d.
// Precondition: borrow < d.
func fullDivRem[T digit](low, d, borrow T) (q, r T) {
	if d == 0 {
		panic("flt2dec: division by zero in full_div_rem")
	}
	if borrow >= d {
		panic("flt2dec: full_div_rem precondition violated: borrow >= divisor")
	}
	w := digitBits[T]()
	lhs := uint64(borrow)<<w | uint64(low)
	return T(lhs / uint64(d)), T(lhs % uint64(d))
}

// bigCap is the digit capacity of BigInt: 36 base-2^32 digits, i.e. 1152
// bits. This comfortably covers any intermediate value Dragon4 builds for
// an f64: the binary exponent range plus the decimal scaling headroom.
const bigCap = 36

// BigInt is a fixed-capacity, stack-allocated nonnegative integer used by
// the Dragon4 algorithm. It never allocates: base is a plain array, and
// every operation either fits within bigCap digits or panics.
//
// size is a high-water mark, never decreasing across mutating operations:
// base[size:] is always zero. This lets the hot loop skip known-zero tails
// instead of tracking zero-ness dynamically.
type BigInt struct {
	size int
	base [bigCap]uint32
}

// BigFromSmall returns the BigInt representing the single digit v.
func BigFromSmall(v uint32) BigInt {
	var b BigInt
	b.base[0] = v
	b.size = 1
	return b
}

// BigFromU64 returns the BigInt representing the 64-bit value v.
func BigFromU64(v uint64) BigInt {
	var b BigInt
	sz := 0
	for v > 0 {
		b.base[sz] = uint32(v)
		v >>= 32
		sz++
	}
	b.size = sz
	return b
}

// IsZero reports whether b represents zero.
func (b BigInt) IsZero() bool {
	for _, d := range b.base[:b.size] {
		if d != 0 {
			return false
		}
	}
	return true
}

// Add returns b + other. It panics if the result would not fit in bigCap
// digits.
func (b BigInt) Add(other BigInt) BigInt {
	sz := max(b.size, other.size)
	var carry bool
	for i := 0; i < sz; i++ {
		c, v := fullAdd(b.base[i], other.base[i], carry)
		b.base[i] = v
		carry = c
	}
	if carry {
		if sz >= bigCap {
			panic("flt2dec: BigInt.Add: capacity exceeded")
		}
		b.base[sz] = 1
		sz++
	}
	b.size = sz
	return b
}

// Sub returns b - other. Precondition: b >= other; violating it panics
// (the fixed-capacity type has no representation for negative values).
func (b BigInt) Sub(other BigInt) BigInt {
	sz := max(b.size, other.size)
	noborrow := true
	for i := 0; i < sz; i++ {
		c, v := fullAdd(b.base[i], ^other.base[i], noborrow)
		b.base[i] = v
		noborrow = c
	}
	if !noborrow {
		panic("flt2dec: BigInt.Sub: underflow (self < other)")
	}
	b.size = sz
	return b
}

// MulSmall returns b * k for a single-digit k.
func (b BigInt) MulSmall(k uint32) BigInt {
	sz := b.size
	var carry uint32
	for i := 0; i < sz; i++ {
		c, v := fullMul(b.base[i], k, carry)
		b.base[i] = v
		carry = c
	}
	if carry > 0 {
		if sz >= bigCap {
			panic("flt2dec: BigInt.MulSmall: capacity exceeded")
		}
		b.base[sz] = carry
		sz++
	}
	b.size = sz
	return b
}

// MulPow2 returns b * 2^bits, split into a whole-digit shift (a plain
// copy) and a sub-digit shift (with carry between digits).
func (b BigInt) MulPow2(bits uint) BigInt {
	const digitWidth = 32
	shiftDigits := int(bits / digitWidth)
	shiftBits := bits % digitWidth
	if shiftDigits >= bigCap {
		panic("flt2dec: BigInt.MulPow2: capacity exceeded")
	}

	for i := b.size - 1; i >= 0; i-- {
		b.base[i+shiftDigits] = b.base[i]
	}
	for i := 0; i < shiftDigits; i++ {
		b.base[i] = 0
	}

	sz := b.size + shiftDigits
	if shiftBits > 0 {
		last := sz
		overflow := b.base[last-1] >> (digitWidth - shiftBits)
		if overflow > 0 {
			if last >= bigCap {
				panic("flt2dec: BigInt.MulPow2: capacity exceeded")
			}
			b.base[last] = overflow
			sz++
		}
		for i := last - 1; i > shiftDigits; i-- {
			b.base[i] = (b.base[i] << shiftBits) | (b.base[i-1] >> (digitWidth - shiftBits))
		}
		b.base[shiftDigits] <<= shiftBits
	}

	b.size = sz
	return b
}

// MulDigits returns b multiplied by the number represented (little-endian)
// by other. Trailing zero digits in other simply contribute nothing;
// callers that care about efficiency should normalize other themselves.
func (b BigInt) MulDigits(other []uint32) BigInt {
	mulInner := func(aa, bb []uint32) ([bigCap]uint32, int) {
		var ret [bigCap]uint32
		retsz := 0
		for i, a := range aa {
			if a == 0 {
				continue
			}
			sz := len(bb)
			var carry uint32
			for j, bd := range bb {
				if i+j >= bigCap {
					panic("flt2dec: BigInt.MulDigits: capacity exceeded")
				}
				c, v := fullMulAdd(a, bd, ret[i+j], carry)
				ret[i+j] = v
				carry = c
			}
			if carry > 0 {
				if i+sz >= bigCap {
					panic("flt2dec: BigInt.MulDigits: capacity exceeded")
				}
				ret[i+sz] = carry
				sz++
			}
			if retsz < i+sz {
				retsz = i + sz
			}
		}
		return ret, retsz
	}

	var ret [bigCap]uint32
	var retsz int
	if b.size < len(other) {
		ret, retsz = mulInner(b.base[:b.size], other)
	} else {
		ret, retsz = mulInner(other, b.base[:b.size])
	}
	return BigInt{size: retsz, base: ret}
}

// DivRemSmall returns (b / k, b % k) for a single-digit k > 0.
func (b BigInt) DivRemSmall(k uint32) (BigInt, uint32) {
	if k == 0 {
		panic("flt2dec: BigInt.DivRemSmall: division by zero")
	}
	sz := b.size
	var borrow uint32
	for i := sz - 1; i >= 0; i-- {
		q, r := fullDivRem(b.base[i], k, borrow)
		b.base[i] = q
		borrow = r
	}
	return b, borrow
}

// Cmp compares b and other numerically: -1, 0, or 1.
func (b BigInt) Cmp(other BigInt) int {
	sz := max(b.size, other.size)
	for i := sz - 1; i >= 0; i-- {
		if b.base[i] != other.base[i] {
			if b.base[i] < other.base[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether b < other.
func (b BigInt) Less(other BigInt) bool { return b.Cmp(other) < 0 }

// LessEqual reports whether b <= other.
func (b BigInt) LessEqual(other BigInt) bool { return b.Cmp(other) <= 0 }
