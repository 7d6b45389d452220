package bits

import "testing"

func TestBuffer77ReadWrite(t *testing.T) {
	var b Buffer77
	b.Write(0, 28, 0x0ABCDEF)
	if got := b.Read(0, 28); got != 0x0ABCDEF {
		t.Fatalf("Read(0,28) = %#x, want %#x", got, 0x0ABCDEF)
	}
	b.Write(28, 1, 1)
	if !b.Get(28) {
		t.Fatalf("Get(28) = false, want true")
	}
	b.Set(76, true)
	if got := b.Read(76, 1); got != 1 {
		t.Fatalf("Read(76,1) = %d, want 1", got)
	}
}

func TestBuffer77Clear(t *testing.T) {
	var b Buffer77
	for i := 0; i < 77; i++ {
		b.Set(i, true)
	}
	b.Clear()
	for i := 0; i < 77; i++ {
		if b.Get(i) {
			t.Fatalf("bit %d set after Clear", i)
		}
	}
}

func TestBuffer91BodyRoundTrip(t *testing.T) {
	var body Buffer77
	body.Write(0, 28, 12345)
	var sys Buffer91
	sys.FromBody(&body)
	sys.Write(77, 14, 0x1234&0x3FFF)

	got := sys.Body()
	if got.Read(0, 28) != 12345 {
		t.Fatalf("Body round trip mismatch: got %d", got.Read(0, 28))
	}
}

func TestBuffer174SystematicRoundTrip(t *testing.T) {
	var sys Buffer91
	for i := 0; i < 91; i++ {
		sys.Set(i, true)
	}
	var full Buffer174
	full.FromSystematic(&sys)
	for i := 0; i < 91; i++ {
		if !full.Get(i) {
			t.Fatalf("bit %d lost in FromSystematic", i)
		}
	}
	for i := 91; i < 174; i++ {
		if full.Get(i) {
			t.Fatalf("parity bit %d unexpectedly set", i)
		}
	}
	back := full.Systematic()
	for i := 0; i < 91; i++ {
		if !back.Get(i) {
			t.Fatalf("Systematic() lost bit %d", i)
		}
	}
}

func TestReadWriteBoundaryAcrossWords(t *testing.T) {
	var b Buffer174
	// Straddle the 32-bit word boundary at bit 32.
	b.Write(28, 8, 0xAB)
	if got := b.Read(28, 8); got != 0xAB {
		t.Fatalf("cross-word Read = %#x, want %#x", got, 0xAB)
	}
}
