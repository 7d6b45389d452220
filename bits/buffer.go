/*
NAME
  buffer.go

DESCRIPTION
  buffer.go provides fixed-capacity, MSB-first packed bit buffers used
  throughout the FT8 codec for the 77-bit message body, the 91-bit LDPC
  systematic codeword and the 174-bit full LDPC frame.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits implements small, fixed-size, MSB-first bit vectors.
//
// Go has no const generics over array lengths, so instead of a single
// generic Bitset<N> type (as the reference implementation uses) this
// package ships three monomorphic types, Buffer77, Buffer91 and
// Buffer174, one per bit-width actually needed by the protocol. Each
// wraps a fixed-size [N]uint32 word array and shares the same
// low-level get/set/read/write helpers.
package bits

// wordBits is the width of the storage words used by every buffer type.
const wordBits = 32

// getBit returns bit i (0 = most significant bit of the vector) from
// words.
func getBit(words []uint32, i int) bool {
	w := i / wordBits
	b := uint(wordBits - 1 - i%wordBits)
	return (words[w]>>b)&1 != 0
}

// setBit sets or clears bit i (0 = most significant bit of the vector)
// in words.
func setBit(words []uint32, i int, v bool) {
	w := i / wordBits
	b := uint(wordBits - 1 - i%wordBits)
	if v {
		words[w] |= 1 << b
	} else {
		words[w] &^= 1 << b
	}
}

// readRange reads the n bits (n <= 64) starting at bit offset off from
// words, MSB first, and returns them right-aligned in the result.
func readRange(words []uint32, off, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if getBit(words, off+i) {
			v |= 1
		}
	}
	return v
}

// writeRange writes the low n bits (n <= 64) of val into words starting
// at bit offset off, MSB first.
func writeRange(words []uint32, off, n int, val uint64) {
	for i := 0; i < n; i++ {
		bit := (val>>uint(n-1-i))&1 != 0
		setBit(words, off+i, bit)
	}
}

// wordsForBits returns the number of uint32 words needed to hold n bits.
func wordsForBits(n int) int {
	return (n + wordBits - 1) / wordBits
}
