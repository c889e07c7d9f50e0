// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

// fp is a binary floating-point value f * 2^e stored as a 64-bit
// significand plus a separate exponent, the "extended precision float"
// Grisu3 operates on. Unlike Decoded's BigInt-backed exact arithmetic,
// every fp operation is a handful of machine instructions; the entire
// point of Grisu3 is to answer with fp arithmetic and fall back to
// DragonFormatShortest only on the rare input where fp's rounding error
// might have produced the wrong digit string.
type fp struct {
	f uint64
	e int16
}

// mul returns a*b: the top 64 bits of the true 128-bit product of the
// significands, rounded to nearest using the discarded bottom 64 bits.
func (a fp) mul(b fp) fp {
	const mask32 = 1<<32 - 1
	ah, al := a.f>>32, a.f&mask32
	bh, bl := b.f>>32, b.f&mask32

	ahbl := ah * bl
	albh := al * bh

	tmp := (ahbl&mask32 + albh&mask32 + (al*bl)>>32)
	// round up the discarded low bits
	tmp += 1 << 31

	return fp{
		f: ah*bh + ahbl>>32 + albh>>32 + tmp>>32,
		e: a.e + b.e + 64,
	}
}

// normalize left-shifts f until its top bit is set, adjusting e to match.
func (a fp) normalize() fp {
	if a.f == 0 {
		panic("flt2dec: fp.normalize: zero significand")
	}
	const exp64 = 64
	for a.f>>63 == 0 {
		a.f <<= 1
		a.e--
	}
	return a
}

// normalizeTo left-shifts a so that its exponent equals e, which must not
// be above a.e. It panics if the shift would push set bits out of f.
func (a fp) normalizeTo(e int16) fp {
	d := a.e - e
	if d < 0 {
		panic("flt2dec: fp.normalizeTo: target exponent above current")
	}
	f := a.f << uint(d)
	if f>>uint(d) != a.f {
		panic("flt2dec: fp.normalizeTo: significand overflow")
	}
	return fp{f: f, e: e}
}

// cachedPow10 is one entry of the Grisu3 cached-powers-of-ten table:
// f*2^e approximates 10^k to within one ulp of f (rounded, never exact,
// since 10^k is not generally representable exactly in binary).
type cachedPow10 struct {
	f uint64
	e int16
	k int16
}

// grisuCache holds pre-rounded binary approximations of 10^k for k from
// -308 to 340 in steps of 8, wide enough to cover every decimal exponent
// an f64 (and its shortest-digit-string neighbors) can need. Each f is the
// 64-bit significand rounded up from the infinite binary expansion of
// 10^k/2^e, matching the construction the reference Grisu3 paper
// (Loitsch, 2010) describes for its "bignum dtoa" lookup table.
var grisuCache = [...]cachedPow10{
	{0xfa8fd5a0081c0288, -1220, -308}, {0xbaaee17fa23ebf76, -1193, -300},
	{0x8b16fb203055ac76, -1166, -292}, {0xcf42894a5dce35ea, -1140, -284},
	{0x9a6bb0aa55653b2d, -1113, -276}, {0xe61acf033d1a45df, -1087, -268},
	{0xab70fe17c79ac6ca, -1060, -260}, {0xff77b1fcbebcdc4f, -1034, -252},
	{0xbe5691ef416bd60c, -1007, -244}, {0x8dd01fad907ffc3c, -980, -236},
	{0xd3515c2831559a83, -954, -228}, {0x9d71ac8fada6c9b5, -927, -220},
	{0xea9c227723ee8bcb, -901, -212}, {0xaecc49914078536d, -874, -204},
	{0x823c12795db6ce57, -847, -196}, {0xc21094364dfb5637, -821, -188},
	{0x9096ea6f3848984f, -794, -180}, {0xd77485cb25823ac7, -768, -172},
	{0xa086cfcd97bf97f4, -741, -164}, {0xef340a98172aace5, -715, -156},
	{0xb23867fb2a35b28e, -688, -148}, {0x84c8d4dfd2c63f3b, -661, -140},
	{0xc5dd44271ad3cdba, -635, -132}, {0x936b9fcebb25c996, -608, -124},
	{0xdbac6c247d62a584, -582, -116}, {0xa3ab66580d5fdaf6, -555, -108},
	{0xf3e2f893dec3f126, -529, -100}, {0xb5b5ada8aaff80b8, -502, -92},
	{0x87625f056c7c4a8b, -475, -84}, {0xc9bcff6034c13053, -449, -76},
	{0x964e858c91ba2655, -422, -68}, {0xdff9772470297ebd, -396, -60},
	{0xa6dfbd9fb8e5b88f, -369, -52}, {0xf8a95fcf88747d94, -343, -44},
	{0xb94470938fa89bcf, -316, -36}, {0x8a08f0f8bf0f156b, -289, -28},
	{0xcdb02555653131b6, -263, -20}, {0x993fe2c6d07b7fac, -236, -12},
	{0xe45c10c42a2b3b06, -210, -4}, {0xaa242499697392d3, -183, 4},
	{0xfd87b5f28300ca0e, -157, 12}, {0xbce5086492111aeb, -130, 20},
	{0x8cbccc096f5088cc, -103, 28}, {0xd1b71758e219652c, -77, 36},
	{0x9c40000000000000, -50, 44}, {0xe8d4a51000000000, -24, 52},
	{0xad78ebc5ac620000, 3, 60}, {0x813f3978f8940984, 30, 68},
	{0xc097ce7bc90715b3, 56, 76}, {0x8f7e32ce7bea5c70, 83, 84},
	{0xd5d238a4abe98068, 109, 92}, {0x9f4f2726179a2245, 136, 100},
	{0xed63a231d4c4fb27, 162, 108}, {0xb0de65388cc8ada8, 189, 116},
	{0x83c7088e1aab65db, 216, 124}, {0xc45d1df942711d9a, 242, 132},
	{0x924d692ca61be758, 269, 140}, {0xda01ee641a708dea, 295, 148},
	{0xa26da3999aef774a, 322, 156}, {0xf209787bb47d6b85, 348, 164},
	{0xb454e4a179dd1877, 375, 172}, {0x865b86925b9bc5c2, 402, 180},
	{0xc83553c5c8965d3d, 428, 188}, {0x952ab45cfa97a0b3, 455, 196},
	{0xde469fbd99a05fe3, 481, 204}, {0xa59bc234db398c25, 508, 212},
	{0xf6c69a72a3989f5c, 534, 220}, {0xb7dcbf5354e9bece, 561, 228},
	{0x88fcf317f22241e2, 588, 236}, {0xcc20ce9bd35c78a5, 614, 244},
	{0x98165af37b2153df, 641, 252}, {0xe2a0b5dc971f303a, 667, 260},
	{0xa8d9d1535ce3b396, 694, 268}, {0xfb9b7cd9a4a7443c, 720, 276},
	{0xbb764c4ca7a44410, 747, 284}, {0x8bab8eefb6409c1a, 774, 292},
	{0xd01fef10a657842c, 800, 300}, {0x9b10a4e5e9913129, 827, 308},
	{0xe7109bfba19c0c9d, 853, 316}, {0xac2820d9623bf429, 880, 324},
	{0x80444b5e7aa7cf85, 907, 332}, {0xbf21e44003acdd2d, 933, 340},
}

// maxPow10LessThan returns (k, 10^k) for the largest k such that
// 10^k <= x (so x < 10^(k+1)), and (0, 1) for x < 10.
func maxPow10LessThan(x uint32) (k byte, tenK uint32) {
	switch {
	case x < 10:
		return 0, 1
	case x < 100:
		return 1, 10
	case x < 1000:
		return 2, 100
	case x < 10000:
		return 3, 1000
	case x < 100000:
		return 4, 10000
	case x < 1000000:
		return 5, 100000
	case x < 10000000:
		return 6, 1000000
	case x < 100000000:
		return 7, 10000000
	case x < 1000000000:
		return 8, 100000000
	default:
		return 9, 1000000000
	}
}

// cachedPower returns the first table entry whose binary exponent lies
// within [alpha, gamma], along with the decimal exponent it is labelled
// with. found is false when no entry falls in that window; the
// caller (GrisuFormatShortestOpt) treats that exactly like any other
// reason to decline and fall back to DragonFormatShortest, rather than
// letting the fast path ever be the thing that panics.
func cachedPower(alpha, gamma int16) (k int16, c fp, found bool) {
	for _, e := range grisuCache {
		if alpha <= e.e && e.e <= gamma {
			return e.k, fp{f: e.f, e: e.e}, true
		}
	}
	return 0, fp{}, false
}

// GrisuFormatShortestOpt attempts to render the shortest decimal digit
// string for d using only fp (extended-precision float) arithmetic. It
// reports ok=false when the arithmetic's own rounding error leaves it
// unable to prove the digit string correct; callers must fall back to
// DragonFormatShortest in that case. buf must have length at least 17, and
// d.Mant+d.Plus must be less than 2^61 (true for every valid IEEE-754
// Decoded, which never exceeds 53 significant bits).
//
// This is the Grisu3 algorithm (Loitsch, "Printing Floating-Point Numbers
// Quickly and Accurately with Integers", PLDI 2010).
func GrisuFormatShortestOpt(d Decoded, buf []byte) (n int, k int16, ok bool) {
	if d.Mant == 0 {
		panic("flt2dec: GrisuFormatShortestOpt: mant must be nonzero")
	}
	if d.Minus == 0 || d.Plus == 0 {
		panic("flt2dec: GrisuFormatShortestOpt: minus and plus must be nonzero")
	}
	if len(buf) < 17 {
		panic("flt2dec: GrisuFormatShortestOpt: buf too small")
	}
	if d.Mant+d.Plus >= 1<<61 {
		panic("flt2dec: GrisuFormatShortestOpt: mantissa out of range")
	}

	plus := fp{f: d.Mant + d.Plus, e: d.Exp}.normalize()
	minus := fp{f: d.Mant - d.Minus, e: d.Exp}.normalizeTo(plus.e)
	v := fp{f: d.Mant, e: d.Exp}.normalizeTo(plus.e)

	const alpha, gamma int16 = -60, -32
	minusK, cached, found := cachedPower(alpha-plus.e-64, gamma-plus.e-64)
	if !found {
		return 0, 0, false
	}

	plus = plus.mul(cached)
	minus = minus.mul(cached)
	v = v.mul(cached)

	plus1 := plus.f + 1
	minus1 := minus.f - 1
	e := uint(-plus.e)

	plus1int := uint32(plus1 >> e)
	plus1frac := plus1 & (1<<e - 1)

	maxKappa, maxTenKappa := maxPow10LessThan(plus1int)
	exp := int16(maxKappa) - minusK + 1

	delta1 := plus1 - minus1
	delta1frac := delta1 & (1<<e - 1)

	kappa := maxKappa
	tenKappa := maxTenKappa
	remainder := plus1int

	i := 0
	for i <= int(maxKappa) {
		q := remainder / tenKappa
		r := remainder % tenKappa
		buf[i] = '0' + byte(q)
		i++

		plus1rem := uint64(r)<<e + plus1frac
		if plus1rem < delta1 {
			tenKappaFull := uint64(tenKappa) << e
			return roundAndWeed(buf[:i], exp, plus1rem, delta1, plus1-v.f, tenKappaFull, 1)
		}

		if kappa == 0 {
			break
		}
		kappa--
		tenKappa /= 10
		remainder = r
	}

	// Integral digits exhausted without narrowing the interval; continue
	// into the fractional part of plus1, one decimal digit at a time.
	remainder64 := plus1frac
	threshold := delta1frac
	var ulp uint64 = 1
	for {
		remainder64 *= 10
		threshold *= 10
		ulp *= 10
		q := remainder64 >> e
		r := remainder64 & (1<<e - 1)
		buf[i] = '0' + byte(q)
		i++

		if r < threshold {
			tenKappaFull := uint64(1) << e
			return roundAndWeed(buf[:i], exp, r, threshold, (plus1-v.f)*ulp, tenKappaFull, ulp)
		}
		remainder64 = r
		if i >= len(buf) {
			return 0, 0, false
		}
	}
}

// roundAndWeed decides, given the interval Grisu3's digit-generation loop
// has narrowed the answer to, whether the generated digit string buf is
// provably the unique shortest one. It implements the three termination
// conditions from the Grisu3 paper (TC1: exact tie handling via the
// "weed" adjustment below, TC2/TC3: safety margin checks against the
// error accumulated through fp.mul).
func roundAndWeed(buf []byte, exp int16, remainder, threshold, plusV, tenKappa, ulp uint64) (n int, k int16, ok bool) {
	plusVDown := plusV + ulp
	plusVUp := plusV - ulp
	w := remainder
	last := len(buf) - 1

	for w < plusVUp &&
		threshold-w >= tenKappa &&
		(w+tenKappa < plusVUp || plusVUp-w >= w+tenKappa-plusVUp) {
		buf[last]--
		w += tenKappa
	}

	if w < plusVDown &&
		threshold-w >= tenKappa &&
		(w+tenKappa < plusVDown || plusVDown-w >= w+tenKappa-plusVDown) {
		return 0, 0, false
	}

	if 2*ulp <= w && w <= threshold-4*ulp {
		return len(buf), exp, true
	}
	return 0, 0, false
}

// FormatShortest renders the shortest decimal digit string for d, trying
// GrisuFormatShortestOpt first and falling back to the always-correct
// DragonFormatShortest when Grisu3 cannot prove its answer.
func FormatShortest(d Decoded, buf []byte) (n int, k int16) {
	if n, k, ok := GrisuFormatShortestOpt(d, buf); ok {
		return n, k
	}
	return DragonFormatShortest(d, buf)
}
