/*
NAME
  ft8dec - decodes FT8 transmissions from a WAV recording.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ft8dec reads a mono WAV recording of an FT8 sub-band, runs
// it through a short-time Fourier transform at the 40ms/3.125Hz grid
// the decoder expects, and prints every message it manages to
// synchronize and decode.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/ausocean/utils/logging"
	"github.com/go-audio/wav"

	"github.com/ausocean/av/bits"
	"github.com/ausocean/av/callsign"
	"github.com/ausocean/av/codec/pcm"
	"github.com/ausocean/av/config"
	"github.com/ausocean/av/crc14"
	"github.com/ausocean/av/decoder"
	"github.com/ausocean/av/decoder/stats"
	"github.com/ausocean/av/ft8log"
	"github.com/ausocean/av/hashstore"
	"github.com/ausocean/av/ldpc"
	"github.com/ausocean/av/message"
	"github.com/ausocean/av/minifloat"
)

const (
	logPath       = "/var/log/ft8dec/ft8dec.log"
	windowSeconds = 0.160
	stepSeconds   = 0.040
	binHz         = 3.125
)

func main() {
	in := flag.String("in", "", "path to a mono WAV recording of the FT8 sub-band")
	call := flag.String("call", "", "this station's callsign, used only for logging context")
	storePath := flag.String("hashstore", "", "path to a callsign hash store to load and watch (optional); decoded callsigns are not written to it")
	logLevel := flag.Int("loglevel", int(logging.Info), "log verbosity")
	lowHz := flag.Uint("lowhz", 200, "lower edge of the sub-band to search, in Hz")
	flag.Parse()

	log := ft8log.New(int8(*logLevel), logPath, false)
	log.Info("ft8dec starting", "in", *in, "call", *call)

	if *in == "" {
		log.Fatal("no input WAV file given, use -in")
	}

	var cfg config.Config
	cfg.StationCall = *call
	cfg.SubBandLowHz = *lowHz
	cfg.Logger = log
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "error", err.Error())
	}

	reg := callsign.NewRegister(int(cfg.HashTableBlocks), int(cfg.HashProbeDepth))
	var store *hashstore.Store
	if *storePath != "" {
		var err error
		store, err = hashstore.Open(*storePath, reg, log)
		if err != nil {
			log.Fatal("could not open hash store", "error", err.Error())
		}
		if err := store.Watch(); err != nil {
			log.Error("could not watch hash store", "error", err.Error())
		}
		defer store.Close()
		reg = store.Register()
	}

	samples, sampleRate, err := loadMono(*in)
	if err != nil {
		log.Fatal("could not load input", "error", err.Error())
	}

	var session stats.Session
	seen := make(map[[2]int]bool)

	dec := decoder.New()
	binOffset := int(math.Round(float64(cfg.SubBandLowHz) / binHz))
	framer := pcm.NewFramer(samples, sampleRate, windowSeconds, stepSeconds, binHz)

	for {
		mag, ok := framer.Next()
		if !ok {
			break
		}
		spec := toSpectrum(mag, binOffset)
		dec.PutSpectrum(&spec)

		for _, cand := range dec.Candidates() {
			if cand.Strength == 0 {
				continue
			}
			key := [2]int{cand.Freq, cand.DT}
			if seen[key] {
				continue
			}

			var msg91 bits.Buffer91
			violated := ldpc.Solve(&cand.Data, &msg91)
			crcOK := violated == 0 && crc14.Check(&msg91)
			session.Observe(cand.Reliability, crcOK)
			if !crcOK {
				continue
			}
			seen[key] = true

			body := msg91.Body()
			m, ok := message.Decode(&body)
			if !ok {
				continue
			}
			m.RegisterCallsigns(reg)

			out := make([]byte, 64)
			n, ok := m.WriteString(out, reg)
			if !ok {
				continue
			}
			fmt.Printf("%6.1fs %5.0fHz %s\n", float64(cand.DT)*stepSeconds, float64(cand.Freq+binOffset)*binHz, out[:n])
		}
	}

	sum := session.Summary()
	log.Info("ft8dec finished",
		"examined", sum.Examined, "valid", sum.ValidCRC,
		"mean_reliability", sum.MeanReliability)
}

func loadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	fbuf := buf.AsFloatBuffer()

	return pcm.Downmix(fbuf.Data, fbuf.Format.NumChannels), fbuf.Format.SampleRate, nil
}

// toSpectrum quantizes the binOffset..binOffset+SpectrumSize slice of a
// magnitude spectrum into the decoder's fixed-width working format.
func toSpectrum(mag []float64, binOffset int) decoder.Spectrum {
	var out decoder.Spectrum
	for i := range out {
		idx := binOffset + i
		if idx >= len(mag) {
			break
		}
		out[i] = minifloat.NewF8u(float32(mag[idx]))
	}
	return out
}
