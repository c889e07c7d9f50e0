// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flt2dec converts IEEE-754 binary floating-point values to
// decimal digit strings.
//
// Two independent algorithms do the actual digit generation:
// GrisuFormatShortestOpt (Grisu3), which is fast but occasionally declines
// to answer, and DragonFormatShortest (Dragon4), which is always correct
// but relies on arbitrary-precision arithmetic over a fixed-capacity
// BigInt. FormatShortest tries the former and falls back to the latter.
// DragonFormatExact renders a caller-chosen number of digits of the exact
// decimal expansion instead of the shortest round-tripping one.
//
// None of the formatters in this package allocate: every digit buffer and
// Part slice is supplied by the caller. The four To*Str functions
// (ToShortestStr, ToShortestExpStr, ToExactExpStr, ToExactFixedStr) expose
// that contract directly; FormatFloat is a convenience wrapper that
// allocates the buffer and assembles the final string for callers who
// don't need to manage either themselves.
package flt2dec
