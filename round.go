// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

// roundUp increments the decimal digit string buf[:n] by one ulp in place,
// propagating the carry leftward through any run of trailing '9's.
//
// If the carry propagates past buf[0] (the whole prefix was '9's, e.g.
// "999" -> "000" with a carry left over), grew reports true and carryDigit
// is the new leading digit ('1') the caller must prepend; buf[:n] itself
// is left as all '0's in that case. Otherwise grew is false and carryDigit
// is unused.
func roundUp(buf []byte, n int) (carryDigit byte, grew bool) {
	for n > 0 {
		n--
		if buf[n] == '9' {
			buf[n] = '0'
			continue
		}
		buf[n]++
		return 0, false
	}
	return '1', true
}
