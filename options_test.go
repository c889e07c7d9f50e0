// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOptionsValidateRejectsNegativeFracDigits(t *testing.T) {
	opts := FormatOptions{Mode: ModeShortest, FracDigits: -1}
	assert.Error(t, opts.Validate())
}

func TestFormatOptionsValidateRejectsZeroNDigitsInExactExp(t *testing.T) {
	opts := FormatOptions{Mode: ModeExactExp, NDigits: 0}
	assert.Error(t, opts.Validate())
}

func TestFormatOptionsValidateAcceptsNDigitsZeroOutsideExactExp(t *testing.T) {
	opts := FormatOptions{Mode: ModeShortest, NDigits: 0}
	assert.NoError(t, opts.Validate())
}

func TestFormatOptionsValidateRejectsBoundsOutOfOrder(t *testing.T) {
	opts := FormatOptions{Mode: ModeShortestExp, Bounds: [2]int16{5, 1}}
	assert.Error(t, opts.Validate())
}

func TestFormatOptionsValidateAccepts(t *testing.T) {
	opts := FormatOptions{Mode: ModeExactExp, NDigits: 5, Bounds: [2]int16{0, 10}}
	assert.NoError(t, opts.Validate())
}

func TestFormatFloatShortest(t *testing.T) {
	s, err := FormatFloat(0.1, FormatOptions{Mode: ModeShortest})
	require.NoError(t, err)
	assert.Equal(t, "0.1", s)
}

func TestFormatFloatShortestExp(t *testing.T) {
	s, err := FormatFloat(12345.0, FormatOptions{
		Mode:   ModeShortestExp,
		Bounds: [2]int16{0, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "1.2345e4", s)
}

func TestFormatFloatExactExp(t *testing.T) {
	s, err := FormatFloat(math.Pi, FormatOptions{Mode: ModeExactExp, NDigits: 4})
	require.NoError(t, err)
	assert.Equal(t, "3.142e0", s)
}

func TestFormatFloatExactFixed(t *testing.T) {
	s, err := FormatFloat(math.Pi, FormatOptions{Mode: ModeExactFixed, FracDigits: 2})
	require.NoError(t, err)
	assert.Equal(t, "3.14", s)
}

func TestFormatFloatRejectsInvalidOptions(t *testing.T) {
	_, err := FormatFloat(1.0, FormatOptions{Mode: ModeExactExp, NDigits: 0})
	assert.Error(t, err)
}

func TestFormatFloatNaN(t *testing.T) {
	s, err := FormatFloat(math.NaN(), FormatOptions{Mode: ModeShortest})
	require.NoError(t, err)
	assert.Equal(t, "nan", s)

	s, err = FormatFloat(math.NaN(), FormatOptions{Mode: ModeShortest, Upper: true})
	require.NoError(t, err)
	assert.Equal(t, "NAN", s)
}
