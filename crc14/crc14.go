/*
NAME
  crc14.go

DESCRIPTION
  crc14.go implements the 14-bit CRC used to protect the 77-bit FT8
  message body.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package crc14 computes and verifies the 14-bit CRC appended to
// every FT8 message body.
package crc14

import "github.com/ausocean/av/bits"

// Poly is the CRC-14 generator polynomial used by the protocol.
const Poly uint16 = 0x6757

// bodyBits is the number of real message bits folded into the CRC.
const bodyBits = 77

// crcBits is the width of the CRC itself.
const crcBits = 14

// iterations is the total number of shift-register steps taken,
// covering the 77 body bits plus 18 trailing zero-bits of flush.
const iterations = bodyBits + crcBits + 4

// Calc computes the 14-bit CRC of the first 77 bits of body. Only the
// low 77 bits of body are read; any additional bits (e.g. a CRC field
// already present) are ignored.
func Calc(body *bits.Buffer77) uint16 {
	var crc uint16
	for i := 0; i < iterations; i++ {
		var bit uint16
		if i < bodyBits && body.Get(i) {
			bit = 1
		}
		crc ^= bit
		if crc&(1<<(crcBits-1)) != 0 {
			crc = (crc << 1) ^ Poly
		} else {
			crc <<= 1
		}
		crc &= (1 << crcBits) - 1
	}
	return crc
}

// Add computes the CRC of body's first 77 bits and writes it into
// bits [77,91) of sys, returning the full 91-bit systematic codeword.
func Add(body *bits.Buffer77) bits.Buffer91 {
	var sys bits.Buffer91
	sys.FromBody(body)
	crc := Calc(body)
	sys.Write(bodyBits, crcBits, uint64(crc))
	return sys
}

// Check reports whether sys's stored CRC (bits [77,91)) matches the
// CRC computed over its first 77 bits.
func Check(sys *bits.Buffer91) bool {
	body := sys.Body()
	want := sys.Read(bodyBits, crcBits)
	return uint64(Calc(&body)) == want
}
