/*
NAME
  ldpc.go

DESCRIPTION
  ldpc.go implements the FT8 LDPC(174,91) forward error correcting
  code: systematic encoding from the generator table, parity-check
  syndrome counting, and iterative belief-propagation decoding of a
  soft-demodulated codeword.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ldpc implements the (174,91) low-density parity-check code
// used to protect every FT8 message. Decoding follows the sum-product
// belief propagation algorithm originally described by Karlis Goba's
// ft8_lib, adapted here to operate over the project's fixed-size bit
// buffers and minifloat soft metrics.
package ldpc

import (
	"math"

	"github.com/ausocean/av/bits"
	"github.com/ausocean/av/minifloat"
)

const (
	maxIter            = 100
	maxIterNoProgress  = 10
)

// Encode computes the 174-bit LDPC codeword for a 91-bit systematic
// message, using the fixed generator table: parity bit m is the XOR,
// over every set message bit i, of bit m of that bit's generator row.
func Encode(msg *bits.Buffer91) bits.Buffer174 {
	var out bits.Buffer174
	out.FromSystematic(msg)

	for m := 0; m < cSize; m++ {
		word := m / 32
		shift := uint(31 - m%32)
		var parity bool
		for i := 0; i < msgBits; i++ {
			if msg.Get(i) && (tableGen[i][word]>>shift)&1 != 0 {
				parity = !parity
			}
		}
		out.Set(msgBits+m, parity)
	}
	return out
}

// check counts how many of the 83 parity-check equations are violated
// by the given 174-bit plain (hard-decision) codeword.
func check(message *[vSize]bool) int {
	count := 0
	for _, row := range tableCV {
		var sum bool
		for _, j := range row {
			if j == eol {
				break
			}
			if int(j) < vSize {
				sum = sum != message[j]
			}
		}
		if sum {
			count++
		}
	}
	return count
}

// Check reports the number of violated parity checks for a full
// 174-bit hard-decision codeword; zero means the codeword is valid.
func Check(codeword *bits.Buffer174) int {
	var msg [vSize]bool
	for i := 0; i < vSize; i++ {
		msg[i] = codeword.Get(i)
	}
	return check(&msg)
}

// Solve runs belief propagation over 174 per-bit log-likelihood
// metrics (one F8s per codeword position, positive meaning "bit is
// more likely 1") and writes its best estimate of the 91 systematic
// message bits into out. It returns the number of parity checks still
// violated by its final hard decision; zero indicates a clean decode.
func Solve(llr *[vSize]minifloat.F8s, out *bits.Buffer91) int {
	var messageF32 [vSize]float32
	for i, b := range llr {
		messageF32[i] = b.Float32()
	}

	var plain [vSize]bool
	var tov [vSize][tableVCLen]float32
	var toc [cSize][tableCVLen]float32

	minErr := cSize
	lastErr := minErr
	noProgress := 0

	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < vSize; i++ {
			sum := messageF32[i]
			for _, v := range tov[i] {
				sum += v
			}
			plain[i] = sum > 0
		}

		lastErr = check(&plain)
		if lastErr == 0 {
			break
		}
		if lastErr < minErr {
			minErr = lastErr
			noProgress = 0
		} else {
			noProgress++
			if noProgress >= maxIterNoProgress {
				break
			}
		}

		for m, row := range tableCV {
			for i, n := range row {
				if n == eol {
					break
				}
				sum := messageF32[n]
				for j, m1 := range tableVC[n] {
					if int(m1) != m {
						sum += tov[n][j]
					}
				}
				toc[m][i] = float32(math.Tanh(float64(sum) / -2))
			}
		}

		for n, row := range tableVC {
			for i, m := range row {
				prod := float32(1)
				for j, n1 := range tableCV[m] {
					if n1 == eol {
						break
					}
					if int(n1) != n {
						prod *= toc[m][j]
					}
				}
				tov[n][i] = -2 * float32(math.Atanh(float64(prod)))
			}
		}
	}

	for i := 0; i < msgBits; i++ {
		out.Set(i, plain[i])
	}
	return lastErr
}
