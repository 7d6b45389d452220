package bits

// Buffer77 holds the 77-bit message body, without its CRC (the body
// plus its 14-bit CRC is a Buffer91).
type Buffer77 struct {
	words [(77 + wordBits - 1) / wordBits]uint32
}

// Len returns the fixed bit length of a Buffer77.
func (b *Buffer77) Len() int { return 77 }

// Get returns bit i.
func (b *Buffer77) Get(i int) bool { return getBit(b.words[:], i) }

// Set sets bit i to v.
func (b *Buffer77) Set(i int, v bool) { setBit(b.words[:], i, v) }

// Read returns the n bits (n <= 64) starting at bit offset off.
func (b *Buffer77) Read(off, n int) uint64 { return readRange(b.words[:], off, n) }

// Write writes the low n bits of val starting at bit offset off.
func (b *Buffer77) Write(off, n int, val uint64) { writeRange(b.words[:], off, n, val) }

// Words exposes the backing storage words for use by collaborating
// packages (e.g. ldpc, which treats the body as the first 77 bits of
// a 91-bit systematic codeword).
func (b *Buffer77) Words() []uint32 { return b.words[:] }

// Clear resets every bit to zero.
func (b *Buffer77) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}
