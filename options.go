// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var optionsValidate = validator.New()

// Mode selects which of the four rendering grammars FormatFloat uses.
type Mode int

const (
	// ModeShortest renders the shortest round-tripping digit string in
	// plain fixed-point form.
	ModeShortest Mode = iota
	// ModeShortestExp renders the shortest round-tripping digit string,
	// switching to exponential form outside Bounds.
	ModeShortestExp
	// ModeExactExp renders exactly NDigits significant digits in
	// exponential form.
	ModeExactExp
	// ModeExactFixed renders exactly FracDigits digits after the decimal
	// point in plain fixed-point form.
	ModeExactFixed
)

// FormatOptions bundles the caller-facing knobs every to_*_str formatter
// exposes into a single validated struct, so FormatFloat has one thing to
// check instead of four different ad hoc argument lists.
type FormatOptions struct {
	Mode Mode
	Sign Sign
	// Upper selects uppercase rendering: an 'E' exponent marker in
	// ModeShortestExp/ModeExactExp, and "NAN"/"INF" instead of "nan"/"inf"
	// in every mode.
	Upper bool
	// FracDigits is the minimum (ModeShortest) or exact (ModeExactFixed)
	// number of digits after the decimal point.
	FracDigits int `validate:"gte=0"`
	// NDigits is the exact significant digit count for ModeExactExp; it
	// must be positive whenever that mode is selected.
	NDigits int `validate:"gte=0"`
	// Bounds is the [lo, hi) window of the exponent the exponential form
	// would show (2 for 100) in which ModeShortestExp renders plain
	// fixed-point instead of exponential.
	Bounds [2]int16
}

// Validate checks the struct-tag constraints plus the one rule that
// depends on Mode (NDigits must be positive in ModeExactExp) and the one
// cross-field rule validator's struct tags can't express against a fixed
// array field (Bounds[0] <= Bounds[1]).
func (o FormatOptions) Validate() error {
	if err := optionsValidate.Struct(o); err != nil {
		return err
	}
	if o.Mode == ModeExactExp && o.NDigits < 1 {
		return fmt.Errorf("flt2dec: NDigits must be > 0 in ModeExactExp")
	}
	if o.Mode == ModeShortestExp && o.Bounds[0] > o.Bounds[1] {
		return fmt.Errorf("flt2dec: Bounds[0] must be <= Bounds[1]")
	}
	return nil
}

// maxExactBufLen is the smallest digit buffer FormatFloat allocates for
// ModeExactExp; ToExactExpStr itself only needs NDigits bytes.
const maxExactBufLen = 400

// minDecodedExp is the smallest binary exponent DecodeFloat64 produces for
// a finite f64 (the smallest normal, a power of two with its mantissa
// doubled), so EstimateMaxBufLen(minDecodedExp) fits every f64.
const minDecodedExp = -1075

// FormatFloat validates opts and renders v according to whichever of the
// four grammars opts.Mode selects, returning the assembled string. It is
// the convenience entry point for callers who don't need to manage their
// own digit buffer and Part slice; the four To*Str functions remain
// available directly for callers who do (e.g. to format repeatedly into a
// reused buffer without allocating per call).
func FormatFloat(v float64, opts FormatOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	parts := make([]Part, 8)

	switch opts.Mode {
	case ModeShortest:
		buf := make([]byte, MaxSigDigits)
		n := ToShortestStr(v, opts.Sign, opts.FracDigits, opts.Upper, buf, parts)
		return string(RenderParts(parts[:n])), nil

	case ModeShortestExp:
		buf := make([]byte, MaxSigDigits)
		n := ToShortestExpStr(v, opts.Sign, opts.Bounds, opts.Upper, buf, parts)
		return string(RenderParts(parts[:n])), nil

	case ModeExactExp:
		buf := make([]byte, max(opts.NDigits, maxExactBufLen))
		n := ToExactExpStr(v, opts.Sign, opts.NDigits, opts.Upper, buf, parts)
		return string(RenderParts(parts[:n])), nil

	case ModeExactFixed:
		buf := make([]byte, EstimateMaxBufLen(minDecodedExp))
		n := ToExactFixedStr(v, opts.Sign, opts.FracDigits, opts.Upper, buf, parts)
		return string(RenderParts(parts[:n])), nil

	default:
		return "", fmt.Errorf("flt2dec: unknown Mode %d", opts.Mode)
	}
}
