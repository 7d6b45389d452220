package ldpc

import (
	"testing"

	"github.com/ausocean/av/bits"
	"github.com/ausocean/av/minifloat"
)

func TestTableVCIsTransposeOfTableCV(t *testing.T) {
	for i, row := range tableVC {
		for _, c := range row {
			found := false
			for _, v := range tableCV[c] {
				if v == eol {
					break
				}
				if int(v) == i {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("tableVC[%d] references check %d, but tableCV[%d] does not list %d back", i, c, c, i)
			}
		}
	}
}

func TestGeneratorRowsSatisfyParityChecks(t *testing.T) {
	for i := range tableGen {
		for _, hrow := range tableCV {
			var bit bool
			for _, x := range hrow {
				if x == eol {
					continue
				}
				if int(x) < msgBits {
					if int(x) == i {
						bit = !bit
					}
					continue
				}
				xx := int(x) - msgBits
				xi := xx / 32
				xj := uint(31 - xx%32)
				if (tableGen[i][xi]>>xj)&1 != 0 {
					bit = !bit
				}
			}
			if bit {
				t.Fatalf("generator row %d fails a parity check", i)
			}
		}
	}
}

func TestEncodeProducesValidCodeword(t *testing.T) {
	var msg bits.Buffer91
	msg.Write(0, 91, 0x1A2B3C4D5E)

	cw := Encode(&msg)
	if got := Check(&cw); got != 0 {
		t.Fatalf("Check() = %d violated parity checks, want 0", got)
	}
	sys := cw.Systematic()
	if sys.Read(0, 91) != msg.Read(0, 91) {
		t.Fatalf("encoded codeword does not preserve the systematic message bits")
	}
}

func TestEncodeAllZero(t *testing.T) {
	var msg bits.Buffer91
	cw := Encode(&msg)
	if got := Check(&cw); got != 0 {
		t.Fatalf("Check() = %d for the all-zero codeword, want 0", got)
	}
}

func TestSolveRecoversCleanCodeword(t *testing.T) {
	var msg bits.Buffer91
	msg.Write(0, 91, 0x1A2B3C4D5E)
	cw := Encode(&msg)

	var llr [vSize]minifloat.F8s
	for i := 0; i < vSize; i++ {
		if cw.Get(i) {
			llr[i] = minifloat.NewF8s(4)
		} else {
			llr[i] = minifloat.NewF8s(-4)
		}
	}

	var out bits.Buffer91
	errs := Solve(&llr, &out)
	if errs != 0 {
		t.Fatalf("Solve() reported %d residual errors, want 0", errs)
	}
	if out.Read(0, 91) != msg.Read(0, 91) {
		t.Fatalf("Solve() did not recover the original message")
	}
}
