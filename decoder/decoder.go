/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the streaming spectral synchronizer and soft
  demodulator that turns a sequence of overlapping power spectra into
  per-tone log-likelihood ratios for candidate transmissions. It looks
  for the repeating Costas array at every frequency bin and, once a
  candidate crosses the reliability threshold, accumulates soft bit
  metrics for its 58 data symbols as later spectra arrive.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package decoder implements FT8's streaming spectral decoder: it
// consumes a rolling sequence of power spectra, one every 40ms, and
// surfaces Candidate transmissions with soft per-bit reliabilities
// ready for ldpc.Solve.
package decoder

import (
	"math"

	"github.com/ausocean/av/ft8proto"
	"github.com/ausocean/av/minifloat"
)

// SpectrumSize is the number of frequency bins in a Spectrum, spanning
// the FT8 sub-band at 3.125Hz per bin.
const SpectrumSize = 1024

// Spectrum is one 40ms power spectrum slice, magnitudes quantized to
// an unsigned minifloat byte per bin.
type Spectrum [SpectrumSize]minifloat.F8u

// Candidate is a synchronized transmission: its time/frequency offset
// within the spectrum stream, an estimate of how cleanly its Costas
// arrays lock in, and the accumulated per-bit log-likelihood ratios
// for its 174 coded bits.
type Candidate struct {
	DT          int
	Freq        int
	Strength    float32
	Reliability float32
	Data        [ft8proto.PayloadBits]minifloat.F8s
}

// better reports whether c is a stronger candidate than other,
// matching the reference decoder's Ord-by-reliability ranking.
func (c Candidate) better(other Candidate) bool {
	return c.Reliability > other.Reliability
}

const (
	timeScale = 4 // spectrum slices per symbol: 160ms / 4 = 40ms
	freqScale = 2 // frequency bins per tone: 6.25Hz / 2 = 3.125Hz

	decodeThreshold = 1.5 // theoretical SNR floor for a lockable Costas array

	freqWidth = (ft8proto.FSKArity-1)*freqScale + 1

	bufferSymbols = ft8proto.PayloadLen/2 + ft8proto.CostasSize*2
	bufferSize    = timeScale*(bufferSymbols-1) + 1

	candidatesBucketSize = 8
	candidatesCount       = (SpectrumSize + candidatesBucketSize - 1) / candidatesBucketSize
)

// Decoder accumulates a rolling window of spectra and the strongest
// synchronized Candidate found in each frequency bucket. It is not
// safe for concurrent use: PutSpectrum must be called from a single
// goroutine, one spectrum per 40ms time step, in order.
type Decoder struct {
	timeStep int

	spectrumBuffer [bufferSize]Spectrum
	candidates     [candidatesCount]Candidate
}

// New returns a Decoder ready to accept its first spectrum.
func New() *Decoder {
	return &Decoder{}
}

// Reset clears all buffered spectra and candidates, returning d to its
// state immediately after New.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Candidates returns the strongest candidate found in each frequency
// bucket, including empty ones (Strength == 0 means no lock was
// found in that bucket).
func (d *Decoder) Candidates() []Candidate {
	out := make([]Candidate, len(d.candidates))
	copy(out, d.candidates[:])
	return out
}

// PutSpectrum feeds the next 40ms power spectrum into the decoder. It
// expects consecutive calls to represent consecutive, non-overlapping
// 40ms steps of a spectrogram computed with a 160ms window and a
// 3.125Hz bin spacing.
func (d *Decoder) PutSpectrum(s *Spectrum) {
	bufIdx := d.timeStep % bufferSize
	d.spectrumBuffer[bufIdx] = *s

	switch {
	case d.timeStep < bufferSize-1:
		// Not enough history buffered yet to look for a Costas lock.
	case d.timeStep < bufferSize*2:
		d.findCandidates()
	}

	d.accumulate(s)

	d.timeStep++
}

// findCandidates scans every frequency bin for a Costas array locking
// across the start and (time-shifted) middle markers of the buffered
// window, recording a new Candidate wherever the lock is stronger than
// whatever is already held in that bin's bucket.
func (d *Decoder) findCandidates() {
	for i := 0; i < SpectrumSize-freqWidth; i++ {
		var power, bandPower float32
		for _, j := range [2]int{1, bufferSize - 24} {
			for k, marker := range ft8proto.MarkerCostas {
				idx := (d.timeStep + j + k*timeScale) % bufferSize
				power += d.spectrumBuffer[idx][i+marker*freqScale].Float32()
				for k2 := 0; k2 < ft8proto.CostasSize; k2++ {
					bandPower += d.spectrumBuffer[idx][i+k2*freqScale].Float32()
				}
			}
		}
		bandPower = (bandPower - power) / float32(ft8proto.CostasSize-1)
		reliability := power / bandPower
		if reliability <= decodeThreshold {
			continue
		}

		candidate := Candidate{
			DT:          d.timeStep + 1 - bufferSize,
			Freq:        i,
			Strength:    power,
			Reliability: reliability,
		}
		slot := &d.candidates[i/candidatesBucketSize]
		if !candidate.better(*slot) {
			continue
		}
		*slot = candidate

		for j := 0; j < ft8proto.PayloadHalfLen; j++ {
			srcIdx := (d.timeStep + 1 + (ft8proto.CostasSize+j)*timeScale) % bufferSize
			getLikelihood(
				d.spectrumBuffer[srcIdx][i:i+freqWidth],
				slot.Data[j*ft8proto.FSKDepth:(j+1)*ft8proto.FSKDepth])
		}
	}
}

// accumulate folds the newly arrived spectrum s into every live
// candidate's data symbol that falls on this time step, once its
// Costas-aligned schedule says a data symbol has just completed.
func (d *Decoder) accumulate(s *Spectrum) {
	for i := range d.candidates {
		c := &d.candidates[i]
		if c.Strength == 0 {
			continue
		}
		if (d.timeStep-c.DT)%timeScale != 0 {
			continue
		}
		idx := (d.timeStep-c.DT)/timeScale - ft8proto.CostasSize*2
		if idx < ft8proto.PayloadHalfLen || idx >= ft8proto.PayloadLen {
			continue
		}
		getLikelihood(
			s[c.Freq:c.Freq+freqWidth],
			c.Data[idx*ft8proto.FSKDepth:(idx+1)*ft8proto.FSKDepth])
	}
}

// getLikelihood turns freqWidth consecutive bin magnitudes centered on
// a candidate's tone set into FSKDepth soft bit log-likelihood ratios,
// summing squared magnitude over every tone that shares each coded
// bit's value under the Gray code mapping.
func getLikelihood(data []minifloat.F8u, out []minifloat.F8s) {
	var sums [ft8proto.FSKDepth][2]float32
	for i := 0; i < ft8proto.FSKArity; i++ {
		mag := data[i*freqScale].Float32()
		p := mag * mag
		for j := 0; j < ft8proto.FSKDepth; j++ {
			bit := 0
			if ft8proto.GrayCode[i]&(4>>uint(j)) != 0 {
				bit = 1
			}
			sums[j][bit] += p
		}
	}
	for i := 0; i < ft8proto.FSKDepth; i++ {
		v := math.Log(float64(sums[i][1])) - math.Log(float64(sums[i][0]))
		out[i] = minifloat.NewF8s(float32(v))
	}
}
