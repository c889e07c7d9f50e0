// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import "math"

// Decoded is a decomposed finite, nonzero floating-point value:
// value = (-1)^negative * mant * 2^exp, with minus/plus the half-ulp-scaled
// distances to the neighboring representable values below and above mant
// (already shifted so that minus and plus share exp with mant), and
// inclusive records whether the rounding interval is closed (true, for an
// even final mantissa bit) or open (false, for an odd one) at both ends.
type Decoded struct {
	Mant      uint64
	Minus     uint64
	Plus      uint64
	Exp       int16
	Inclusive bool
}

// FullDecodedKind discriminates the possible shapes a decoded float can
// take: the kinds a IEEE-754 bit pattern can represent beyond "a finite,
// nonzero Decoded".
type FullDecodedKind int

const (
	KindFinite FullDecodedKind = iota
	KindZero
	KindInfinite
	KindNaN
)

// FullDecoded is the tagged-union result of fully decoding a float: every
// IEEE-754 bit pattern maps to exactly one of these four shapes. Only
// Finite carries a Decoded payload; the others are pure tags.
type FullDecoded struct {
	Kind   FullDecodedKind
	Finite Decoded
}

// floatInfo describes the bit layout of an IEEE-754 binary floating-point
// type, mirroring the layout strconv.FormatFloat uses internally.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var float32info = floatInfo{mantbits: 23, expbits: 8, bias: -127}
var float64info = floatInfo{mantbits: 52, expbits: 11, bias: -1023}

// decodeBits splits the raw bit pattern of a float of the given layout into
// its sign, biased exponent field, and mantissa field, and classifies it.
func decodeBits(bits uint64, flt floatInfo) (negative bool, full FullDecoded) {
	negative = bits>>(flt.expbits+flt.mantbits) != 0
	expField := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	mantField := bits & (uint64(1)<<flt.mantbits - 1)

	switch {
	case expField == 1<<flt.expbits-1:
		if mantField == 0 {
			return negative, FullDecoded{Kind: KindInfinite}
		}
		return negative, FullDecoded{Kind: KindNaN}

	case expField == 0 && mantField == 0:
		return negative, FullDecoded{Kind: KindZero}

	case expField == 0:
		// Subnormal: no implicit leading bit, exponent is the minimum.
		exp := flt.bias + 1 - int(flt.mantbits)
		return negative, FullDecoded{Kind: KindFinite, Finite: decodedFromMantExp(mantField, exp, true, false)}

	default:
		// Normal: implicit leading 1 bit folded into the mantissa. A zero
		// fraction field means mant is an exact power of two (in any
		// binade, not just the smallest normal one), which halves the gap
		// to the next-smaller representable value.
		mant := mantField | (uint64(1) << flt.mantbits)
		exp := flt.bias + expField - int(flt.mantbits)
		isPow2 := mantField == 0
		return negative, FullDecoded{Kind: KindFinite, Finite: decodedFromMantExp(mant, exp, false, isPow2)}
	}
}

// decodedFromMantExp builds the Decoded rounding-interval representation
// for a finite mantissa/exponent pair.
//
// Subnormals keep mant and exp as decoded, unscaled, since there is no
// implicit-bit renormalization to account for. Normal values are doubled so
// minus/plus stay integral at a half-ulp granularity, except when mant is an
// exact power of two, where the next-smaller representable value is only
// half as far away, so minus gets halved relative to plus.
func decodedFromMantExp(mant uint64, exp int, isSubnormal, isPow2 bool) Decoded {
	inclusive := mant&1 == 0

	if isSubnormal {
		return Decoded{
			Mant:      mant,
			Minus:     1,
			Plus:      1,
			Exp:       int16(exp),
			Inclusive: inclusive,
		}
	}
	if isPow2 {
		return Decoded{
			Mant:      mant * 2,
			Minus:     1,
			Plus:      2,
			Exp:       int16(exp - 1),
			Inclusive: inclusive,
		}
	}
	return Decoded{
		Mant:      mant * 2,
		Minus:     1,
		Plus:      1,
		Exp:       int16(exp - 1),
		Inclusive: inclusive,
	}
}

// DecodeFloat64 fully decodes v's IEEE-754 bit pattern.
func DecodeFloat64(v float64) (negative bool, full FullDecoded) {
	return decodeBits(math.Float64bits(v), float64info)
}

// DecodeFloat32 fully decodes v's IEEE-754 bit pattern.
func DecodeFloat32(v float32) (negative bool, full FullDecoded) {
	return decodeBits(uint64(math.Float32bits(v)), float32info)
}
