package bits

// Buffer174 holds a full 174-bit LDPC(174,91) codeword: the 91-bit
// systematic part followed by 83 parity bits.
type Buffer174 struct {
	words [(174 + wordBits - 1) / wordBits]uint32
}

// Len returns the fixed bit length of a Buffer174.
func (b *Buffer174) Len() int { return 174 }

// Get returns bit i.
func (b *Buffer174) Get(i int) bool { return getBit(b.words[:], i) }

// Set sets bit i to v.
func (b *Buffer174) Set(i int, v bool) { setBit(b.words[:], i, v) }

// Read returns the n bits (n <= 64) starting at bit offset off.
func (b *Buffer174) Read(off, n int) uint64 { return readRange(b.words[:], off, n) }

// Write writes the low n bits of val starting at bit offset off.
func (b *Buffer174) Write(off, n int, val uint64) { writeRange(b.words[:], off, n, val) }

// Words exposes the backing storage words.
func (b *Buffer174) Words() []uint32 { return b.words[:] }

// Clear resets every bit to zero.
func (b *Buffer174) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// FromSystematic copies sys's 91 bits into the first 91 bits of b.
func (b *Buffer174) FromSystematic(sys *Buffer91) {
	for i := 0; i < 91; i++ {
		b.Set(i, sys.Get(i))
	}
}

// Systematic returns a new Buffer91 containing the first 91 bits of b.
func (b *Buffer174) Systematic() Buffer91 {
	var sys Buffer91
	for i := 0; i < 91; i++ {
		sys.Set(i, b.Get(i))
	}
	return sys
}
