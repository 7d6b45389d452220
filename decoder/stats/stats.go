/*
NAME
  stats.go

DESCRIPTION
  stats.go accumulates summary statistics across a decode session: how
  many candidates were examined, how many carried a valid CRC, and the
  spread of their reliability scores, the way cmd/rv's turbidity probe
  reduces a batch of frame measurements to mean and spread with
  gonum/stat.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package stats summarizes per-candidate reliability measurements
// across a decode session.
package stats

import "gonum.org/v1/gonum/stat"

// Session accumulates reliability samples from decoder.Candidate
// values as a session progresses.
type Session struct {
	reliabilities []float64
	validCRC      int
	examined      int
}

// Observe records one examined candidate's reliability, and whether
// its CRC checked out.
func (s *Session) Observe(reliability float32, crcOK bool) {
	s.examined++
	s.reliabilities = append(s.reliabilities, float64(reliability))
	if crcOK {
		s.validCRC++
	}
}

// Summary is a point-in-time reduction of everything Observed so far.
type Summary struct {
	Examined    int
	ValidCRC    int
	MeanReliability   float64
	StdDevReliability float64
	MinReliability    float64
	MaxReliability    float64
}

// Summary reduces the session's observations to mean, standard
// deviation and range. It returns the zero Summary if nothing has
// been observed yet.
func (s *Session) Summary() Summary {
	sum := Summary{Examined: s.examined, ValidCRC: s.validCRC}
	if len(s.reliabilities) == 0 {
		return sum
	}
	sum.MeanReliability, sum.StdDevReliability = stat.MeanStdDev(s.reliabilities, nil)
	sum.MinReliability = s.reliabilities[0]
	sum.MaxReliability = s.reliabilities[0]
	for _, r := range s.reliabilities[1:] {
		if r < sum.MinReliability {
			sum.MinReliability = r
		}
		if r > sum.MaxReliability {
			sum.MaxReliability = r
		}
	}
	return sum
}

// Reset clears all accumulated observations.
func (s *Session) Reset() {
	s.reliabilities = s.reliabilities[:0]
	s.validCRC = 0
	s.examined = 0
}
