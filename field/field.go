/*
NAME
  field.go

DESCRIPTION
  field.go implements the small fixed-width field codecs shared by
  several FT8 message variants: grid locators and signal reports
  (G15), the roger/73 acknowledgement (R2), free text (F71) and
  opaque telemetry (T71).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package field implements the compact field codecs embedded in FT8
// message bodies: 15-bit grid/report (G15), 2-bit roger (R2), 71-bit
// base-42 free text (F71) and 71-bit opaque telemetry (T71).
package field

import "github.com/ausocean/av/callsign"

// Bits is the minimal bit-addressable surface the field codecs need
// from a host buffer. Every bits.BufferNN type satisfies it.
type Bits interface {
	Get(i int) bool
	Set(i int, v bool)
}

// copyBits copies n bits from src (starting at srcOff) to dst
// (starting at dstOff), most significant bit first.
func copyBits(dst Bits, dstOff int, src Bits, srcOff, n int) {
	for i := 0; i < n; i++ {
		dst.Set(dstOff+i, src.Get(srcOff+i))
	}
}

var fullChars = callsign.Full
