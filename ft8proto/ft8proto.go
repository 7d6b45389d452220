/*
NAME
  ft8proto.go

DESCRIPTION
  ft8proto.go defines the wire-level constants of the FT8 protocol: the
  79-symbol frame layout, the Costas synchronisation array and the
  Gray code mapping between 3-bit tone indices and FSK tone numbers.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ft8proto defines the FT8 over-the-air frame layout: symbol
// counts, the Costas array and the Gray code used to map LDPC-coded
// bit triples onto 8-FSK tones.
package ft8proto

// Frame geometry. One FT8 transmission is 79 symbols: three 7-symbol
// Costas arrays (at the start, middle and end) surrounding two blocks
// of 29 data symbols, each data symbol carrying 3 coded bits.
const (
	MessageLen     = 79
	PayloadLen     = 58
	PayloadHalfLen = PayloadLen / 2
	PayloadBits    = 174
	BodyBits       = 77
	CRCBits        = 14

	FSKDepth  = 3
	FSKArity  = 1 << FSKDepth
	CostasSize = 7
)

// MarkerCostas is the 7-tone Costas synchronisation array repeated at
// the start, middle and end of every transmission.
var MarkerCostas = [CostasSize]int{3, 1, 4, 0, 6, 5, 2}

// GrayCode maps a 3-bit coded value to its transmitted FSK tone index.
var GrayCode = [FSKArity]int{0, 1, 3, 2, 5, 6, 4, 7}

// GrayCodeInv maps a received FSK tone index back to its 3-bit coded
// value. It is the inverse permutation of GrayCode.
var GrayCodeInv = [FSKArity]int{0, 1, 3, 2, 6, 4, 5, 7}

// EncodeSymbols lays out the 79 transmitted tone indices for a
// 174-bit LDPC codeword: Costas, 29 data symbols, Costas, 29 data
// symbols, Costas.
func EncodeSymbols(codeword [PayloadBits]bool) [MessageLen]int {
	var out [MessageLen]int
	pos := 0
	bit := 0

	emitCostas := func() {
		for _, t := range MarkerCostas {
			out[pos] = t
			pos++
		}
	}
	emitData := func(n int) {
		for i := 0; i < n; i++ {
			v := 0
			for k := 0; k < FSKDepth; k++ {
				v <<= 1
				if codeword[bit] {
					v |= 1
				}
				bit++
			}
			out[pos] = GrayCode[v]
			pos++
		}
	}

	emitCostas()
	emitData(PayloadHalfLen)
	emitCostas()
	emitData(PayloadHalfLen)
	emitCostas()

	return out
}
