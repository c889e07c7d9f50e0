// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

// PartKind discriminates the three shapes a rendered output fragment can
// take. Formatters never build a string directly; they emit a stream of
// Parts so a caller rendering straight into a pre-sized buffer never pays
// for an intermediate allocation the formatter itself doesn't need.
type PartKind int

const (
	// PartCopy verbatim-copies Bytes, e.g. a literal "inf", "nan", sign,
	// decimal point, or exponent marker.
	PartCopy PartKind = iota
	// PartZero emits Count '0' bytes, used for padding (leading zeros in
	// a small fixed-point fraction, trailing zeros past the significant
	// digits in a wide fixed-point fraction).
	PartZero
	// PartNum emits Num in decimal, used for the exponent in exponential
	// notation. Num never exceeds the bounds of an int16 exponent, so
	// five digits always suffice.
	PartNum
)

// Part is one fragment of a formatted float, as produced by the four
// to_*_str formatters and consumed by RenderParts (or by a caller's own
// direct-to-buffer renderer).
type Part struct {
	Kind  PartKind
	Bytes []byte
	Count int
	Num   int16
}

// CopyPart returns a Part that copies b verbatim.
func CopyPart(b []byte) Part { return Part{Kind: PartCopy, Bytes: b} }

// ZeroPart returns a Part that emits n '0' bytes.
func ZeroPart(n int) Part { return Part{Kind: PartZero, Count: n} }

// NumPart returns a Part that emits v in decimal.
func NumPart(v int16) Part { return Part{Kind: PartNum, Num: v} }

// Len returns the number of bytes p renders to.
func (p Part) Len() int {
	switch p.Kind {
	case PartCopy:
		return len(p.Bytes)
	case PartZero:
		return p.Count
	case PartNum:
		return numDecimalLen(p.Num)
	default:
		panic("flt2dec: Part.Len: unknown part kind")
	}
}

// numDecimalLen returns the number of decimal digits (plus a leading '-'
// if negative) needed to render v.
func numDecimalLen(v int16) int {
	n := 1
	if v < 0 {
		n++
		v = -v
	}
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// appendNum appends v in decimal to dst and returns the extended slice.
func appendNum(dst []byte, v int16) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	if v >= 10 {
		dst = appendNum(dst, v/10)
	}
	return append(dst, byte('0'+v%10))
}

// RenderParts concatenates parts into a single byte slice. It is a
// convenience for callers that don't want to walk the Part stream
// themselves; the formatters' own contract (writing digits into a
// caller-supplied buffer, Part never owning heap memory beyond what the
// caller already gave it) is unaffected by it.
func RenderParts(parts []Part) []byte {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		switch p.Kind {
		case PartCopy:
			out = append(out, p.Bytes...)
		case PartZero:
			for i := 0; i < p.Count; i++ {
				out = append(out, '0')
			}
		case PartNum:
			out = appendNum(out, p.Num)
		}
	}
	return out
}

// Sign controls whether and how a formatter emits a sign character.
type Sign int

const (
	// SignMinus emits '-' for negative values and nothing for
	// nonnegative values, including zero ("the usual convention").
	SignMinus Sign = iota
	// SignMinusPlus emits '-' for negative values and '+' for
	// nonnegative values, including zero.
	SignMinusPlus
	// SignMinusPlusRaw is like SignMinusPlus, but a negative zero still
	// renders with '-' (it preserves the sign bit instead of treating
	// all zeros as nonnegative).
	SignMinusPlusRaw
)

var (
	minusPart = Part{Kind: PartCopy, Bytes: []byte("-")}
	plusPart  = Part{Kind: PartCopy, Bytes: []byte("+")}
)

// signPart returns the Part (if any) a formatter should emit given the
// requested sign policy, whether the value decoded as negative, and
// whether the value is zero.
func signPart(sign Sign, negative, isZero bool) (Part, bool) {
	if isZero && sign != SignMinusPlusRaw {
		negative = false
	}
	switch sign {
	case SignMinus:
		if negative {
			return minusPart, true
		}
		return Part{}, false
	case SignMinusPlusRaw:
		if isZero {
			if negative {
				return minusPart, true
			}
			return plusPart, true
		}
		fallthrough
	default: // SignMinusPlus
		if negative {
			return minusPart, true
		}
		return plusPart, true
	}
}
