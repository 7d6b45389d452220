/*
NAME
  pcm.go

DESCRIPTION
  pcm.go contains functions for preparing pcm audio for FT8 spectrogram
  framing: downmixing to mono and downsampling towards the decoder's
  working rate.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pcm prepares decoded PCM audio samples for FT8 spectrogram
// framing: downmixing multi-channel recordings to mono and
// downsampling towards the decoder's working sample rate.
package pcm

import "github.com/pkg/errors"

// Downmix averages an interleaved multi-channel sample buffer down to
// a single mono channel. It returns samples unchanged if channels <= 1.
func Downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	mono := make([]float64, len(samples)/channels)
	for i := range mono {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}

// Resample downsamples mono samples from rateFrom to rateTo by
// averaging consecutive blocks of rateFrom/rateTo samples. rateFrom
// must be an exact multiple of rateTo; FT8 recordings are downsampled,
// never upsampled, ahead of the spectrogram front end.
func Resample(samples []float64, rateFrom, rateTo int) ([]float64, error) {
	if rateFrom == rateTo {
		return samples, nil
	}
	if rateFrom <= 0 || rateTo <= 0 {
		return nil, errors.Errorf("invalid sample rates %d -> %d", rateFrom, rateTo)
	}
	if rateFrom < rateTo {
		return nil, errors.Errorf("upsampling %d -> %d is not supported", rateFrom, rateTo)
	}
	ratio := gcd(rateFrom, rateTo)
	from, to := rateFrom/ratio, rateTo/ratio
	if to != 1 {
		return nil, errors.Errorf("rate ratio %d:%d does not reduce to an integer decimation factor", rateFrom, rateTo)
	}

	n := len(samples) / from
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < from; j++ {
			sum += samples[i*from+j]
		}
		out[i] = sum / float64(from)
	}
	return out, nil
}

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
