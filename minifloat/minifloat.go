/*
NAME
  minifloat.go

DESCRIPTION
  minifloat.go implements the 8-bit floating point encodings used to
  compress per-symbol reliability and power measurements attached to
  decoded FT8 messages.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package minifloat implements small 8-bit floating point types used
// to pack per-symbol soft metrics into a single byte.
//
// The reference implementation parameterises a single float type over
// its sign-bit presence, exponent width and exponent bias with const
// generics. Go has no equivalent, so this package instead ships two
// concrete byte types, F8s (signed) and F8u (unsigned), that share the
// same encode/decode helpers parameterised by plain arguments.
package minifloat

import (
	"math"
	"math/bits"
)

// F8s is a signed 8-bit float: 1 sign bit, 5 exponent bits (bias 24)
// and 2 fraction bits.
type F8s uint8

// F8u is an unsigned 8-bit float: 6 exponent bits (bias 24) and 2
// fraction bits. Its raw byte ordering matches real-value ordering,
// so two F8u values can be compared directly with < and > without
// decoding.
type F8u uint8

const (
	s8ExpSize  = 5
	s8FracSize = 8 - 1 - s8ExpSize
	s8Bias     = 24

	u8ExpSize  = 6
	u8FracSize = 8 - u8ExpSize
	u8Bias     = 24
)

// NewF8s encodes v as a signed minifloat.
func NewF8s(v float32) F8s { return F8s(encode(v, true, s8ExpSize, s8FracSize, s8Bias)) }

// Float32 decodes f to a float32.
func (f F8s) Float32() float32 { return decode(uint8(f), true, s8ExpSize, s8FracSize, s8Bias) }

// NewF8u encodes v as an unsigned minifloat. Negative values are
// clamped to zero.
func NewF8u(v float32) F8u {
	if v < 0 {
		v = 0
	}
	return F8u(encode(v, false, u8ExpSize, u8FracSize, u8Bias))
}

// Float32 decodes f to a float32.
func (f F8u) Float32() float32 { return decode(uint8(f), false, u8ExpSize, u8FracSize, u8Bias) }

// decode converts a raw minifloat byte into a float32 given the layout
// parameters. It mirrors the reference implementation's as_f32: an
// all-zero mantissa/exponent field means +/-0, an all-ones field means
// +/-infinity, and a zero exponent with nonzero fraction is a
// denormal.
func decode(raw uint8, signed bool, expSize, fracSize, bias int) float32 {
	var sign uint8
	body := raw
	if signed {
		sign = raw >> 7
		body = raw & 0x7f
	}

	allOnes := uint8((1 << (expSize + fracSize)) - 1)
	if body == 0 {
		if signed && sign != 0 {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}
	if body == allOnes {
		if signed && sign != 0 {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}

	exp := int(body >> uint(fracSize))
	frac := body & uint8((1<<uint(fracSize))-1)

	var mant float32
	var e int
	if exp == 0 {
		// Denormal: the leading 1 is implicit only for exp != 0.
		lz := bits.LeadingZeros8(frac) - (8 - fracSize) + 1
		e = 1 - bias - lz
		mant = float32(frac) / float32(uint32(1)<<uint(fracSize))
		mant *= float32(uint32(1) << uint(lz))
	} else {
		e = exp - bias
		mant = 1 + float32(frac)/float32(uint32(1)<<uint(fracSize))
	}

	v := mant * pow2(e)
	if signed && sign != 0 {
		v = -v
	}
	return v
}

// encode converts a float32 into a raw minifloat byte given the layout
// parameters, mirroring the reference implementation's from_f32,
// including saturation to +/-infinity on overflow.
func encode(v float32, signed bool, expSize, fracSize, bias int) uint8 {
	var sign uint8
	if signed && math.Signbit(float64(v)) {
		sign = 1
		v = -v
	}

	allOnes := uint8((1 << (expSize + fracSize)) - 1)
	maxExp := (1 << expSize) - 1

	if v == 0 {
		return sign << 7
	}
	if math.IsInf(float64(v), 0) {
		return sign<<7 | allOnes
	}

	frac, exp2 := math.Frexp(float64(v)) // v = frac * 2^exp2, 0.5 <= frac < 1
	e := exp2 - 1 + bias
	m := frac * 2 // 1 <= m < 2

	if e <= 0 {
		// Denormal range: shift the mantissa right and drop the
		// implicit leading one.
		shift := 1 - e
		if shift > fracSize {
			return sign << 7
		}
		scaled := m / float64(uint32(1)<<uint(shift))
		fracBits := uint8(math.Round(scaled * float64(uint32(1)<<uint(fracSize))))
		if fracBits > uint8((1<<uint(fracSize))-1) {
			fracBits = uint8((1 << uint(fracSize)) - 1)
		}
		return sign<<7 | fracBits
	}

	if e >= maxExp {
		return sign<<7 | allOnes
	}

	fracBits := uint8(math.Round((m - 1) * float64(uint32(1)<<uint(fracSize))))
	if fracBits == uint8(1<<uint(fracSize)) {
		fracBits = 0
		e++
		if e >= maxExp {
			return sign<<7 | allOnes
		}
	}
	return sign<<7 | uint8(e)<<uint(fracSize) | fracBits
}

func pow2(e int) float32 {
	return float32(math.Ldexp(1, e))
}
