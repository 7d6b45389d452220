package decoder

import (
	"testing"

	"github.com/ausocean/av/ft8proto"
	"github.com/ausocean/av/minifloat"
)

func TestNewDecoderCandidatesEmpty(t *testing.T) {
	d := New()
	for _, c := range d.Candidates() {
		if c.Strength != 0 {
			t.Fatalf("fresh decoder has nonzero candidate strength: %+v", c)
		}
	}
}

func TestResetClearsState(t *testing.T) {
	d := New()
	var s Spectrum
	for i := range s {
		s[i] = minifloat.NewF8u(1)
	}
	for i := 0; i < bufferSize+10; i++ {
		d.PutSpectrum(&s)
	}
	d.Reset()
	if d.timeStep != 0 {
		t.Fatalf("timeStep = %d after Reset, want 0", d.timeStep)
	}
	for _, c := range d.Candidates() {
		if c.Strength != 0 {
			t.Fatalf("candidate survives Reset: %+v", c)
		}
	}
}

// A flat spectrum (every bin equal power) should never cross the
// Costas reliability threshold: there's no tone standing out from its
// own band.
func TestFlatSpectrumYieldsNoCandidates(t *testing.T) {
	d := New()
	var s Spectrum
	for i := range s {
		s[i] = minifloat.NewF8u(1)
	}
	for i := 0; i < bufferSize*2+5; i++ {
		d.PutSpectrum(&s)
	}
	for _, c := range d.Candidates() {
		if c.Strength != 0 {
			t.Fatalf("flat spectrum produced a candidate: %+v", c)
		}
	}
}

// PutSpectrum must not panic across a full buffer wraparound even
// with arbitrary (non-uniform) input.
func TestPutSpectrumSurvivesWraparound(t *testing.T) {
	d := New()
	var s Spectrum
	for step := 0; step < bufferSize*3; step++ {
		for i := range s {
			v := float32((step + i) % 7)
			s[i] = minifloat.NewF8u(v)
		}
		d.PutSpectrum(&s)
	}
	_ = d.Candidates()
}

// getLikelihood should report a confident bit-1 for every coded bit
// that Gray-codes the strongest tone, and a confident bit-0 for every
// bit that Gray-codes its complement.
func TestGetLikelihoodFavoursStrongTone(t *testing.T) {
	tone := 5
	data := make([]minifloat.F8u, freqWidth)
	for i := range data {
		data[i] = minifloat.NewF8u(0.01)
	}
	data[tone*freqScale] = minifloat.NewF8u(10)

	out := make([]minifloat.F8s, ft8proto.FSKDepth)
	getLikelihood(data, out)

	for j := 0; j < ft8proto.FSKDepth; j++ {
		bit := ft8proto.GrayCode[tone]&(4>>uint(j)) != 0
		llr := out[j].Float32()
		if bit && llr <= 0 {
			t.Errorf("bit %d expected positive LLR for set bit, got %v", j, llr)
		}
		if !bit && llr >= 0 {
			t.Errorf("bit %d expected negative LLR for clear bit, got %v", j, llr)
		}
	}
}
