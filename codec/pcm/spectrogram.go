/*
NAME
  spectrogram.go

DESCRIPTION
  spectrogram.go frames PCM audio into overlapping windows and computes
  each window's magnitude spectrum, the short-time Fourier transform an
  FT8 decoder consumes one frame per step.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pcm

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Framer frames a stream of mono PCM samples into overlapping
// Hann-windowed blocks and computes each block's real FFT magnitude
// spectrum.
type Framer struct {
	samples   []float64
	win       []float64
	windowLen int
	stepLen   int
	nfft      int
	pos       int
}

// NewFramer builds a Framer over samples captured at sampleRate,
// using a Hann window of windowSeconds advanced by stepSeconds each
// frame and zero-padded to a DFT length that resolves binHz-wide
// frequency bins.
func NewFramer(samples []float64, sampleRate int, windowSeconds, stepSeconds, binHz float64) *Framer {
	windowLen := int(float64(sampleRate) * windowSeconds)
	return &Framer{
		samples:   samples,
		win:       window.Hann(windowLen),
		windowLen: windowLen,
		stepLen:   int(float64(sampleRate) * stepSeconds),
		nfft:      int(math.Round(float64(sampleRate) / binHz)),
	}
}

// Next returns the magnitude spectrum of the next frame and advances
// the Framer by its step length. It returns false once fewer than a
// full window of samples remain.
func (f *Framer) Next() ([]float64, bool) {
	if f.pos+f.windowLen > len(f.samples) {
		return nil, false
	}

	padded := make([]float64, f.nfft)
	for i := 0; i < f.windowLen; i++ {
		padded[i] = f.samples[f.pos+i] * f.win[i]
	}

	spectrum := fft.FFTReal(padded)
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		mag[i] = cmplx.Abs(c)
	}

	f.pos += f.stepLen
	return mag, true
}

// Reset rewinds the Framer to the start of its sample buffer.
func (f *Framer) Reset() { f.pos = 0 }
