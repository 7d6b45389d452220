package bits

// Buffer91 holds the 91-bit systematic LDPC codeword: the 77-bit
// message body followed by its 14-bit CRC.
type Buffer91 struct {
	words [(91 + wordBits - 1) / wordBits]uint32
}

// Len returns the fixed bit length of a Buffer91.
func (b *Buffer91) Len() int { return 91 }

// Get returns bit i.
func (b *Buffer91) Get(i int) bool { return getBit(b.words[:], i) }

// Set sets bit i to v.
func (b *Buffer91) Set(i int, v bool) { setBit(b.words[:], i, v) }

// Read returns the n bits (n <= 64) starting at bit offset off.
func (b *Buffer91) Read(off, n int) uint64 { return readRange(b.words[:], off, n) }

// Write writes the low n bits of val starting at bit offset off.
func (b *Buffer91) Write(off, n int, val uint64) { writeRange(b.words[:], off, n, val) }

// Words exposes the backing storage words.
func (b *Buffer91) Words() []uint32 { return b.words[:] }

// Clear resets every bit to zero.
func (b *Buffer91) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// FromBody copies body's 77 bits into the first 77 bits of b, leaving
// the 14 CRC bits untouched.
func (b *Buffer91) FromBody(body *Buffer77) {
	for i := 0; i < 77; i++ {
		b.Set(i, body.Get(i))
	}
}

// Body returns a new Buffer77 containing the first 77 bits of b.
func (b *Buffer91) Body() Buffer77 {
	var body Buffer77
	for i := 0; i < 77; i++ {
		body.Set(i, b.Get(i))
	}
	return body
}
