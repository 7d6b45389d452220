package ft8proto

import "testing"

func TestGrayCodeIsInverseOfGrayCodeInv(t *testing.T) {
	for v := 0; v < FSKArity; v++ {
		tone := GrayCode[v]
		if GrayCodeInv[tone] != v {
			t.Fatalf("GrayCodeInv[GrayCode[%d]=%d] = %d, want %d", v, tone, GrayCodeInv[tone], v)
		}
	}
}

func TestEncodeSymbolsLayout(t *testing.T) {
	var cw [PayloadBits]bool
	// Mark the first three coded bits as 0b101 = 5.
	cw[0], cw[1], cw[2] = true, false, true

	syms := EncodeSymbols(cw)

	for i, want := range MarkerCostas {
		if syms[i] != want {
			t.Fatalf("leading Costas[%d] = %d, want %d", i, syms[i], want)
		}
	}
	if got, want := syms[CostasSize], GrayCode[5]; got != want {
		t.Fatalf("first data symbol = %d, want %d", got, want)
	}
	for i, want := range MarkerCostas {
		if syms[CostasSize+PayloadHalfLen+i] != want {
			t.Fatalf("middle Costas[%d] = %d, want %d", i, syms[CostasSize+PayloadHalfLen+i], want)
		}
	}
	for i, want := range MarkerCostas {
		idx := MessageLen - CostasSize + i
		if syms[idx] != want {
			t.Fatalf("trailing Costas[%d] = %d, want %d", i, syms[idx], want)
		}
	}
}
