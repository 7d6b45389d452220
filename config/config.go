/*
NAME
  config.go

DESCRIPTION
  config.go defines the configuration settings of the FT8 decode tool
  (ft8dec): audio capture parameters, the sub-band the decoder
  searches, hash table sizing for the callsign register, and the
  logger Validate reports defaults through.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the FT8
// decode tool. The encode tool (ft8enc) does not use it.
package config

import (
	"github.com/ausocean/utils/logging"
)

const (
	defaultSampleRate      = 12000 // Hz
	defaultSubBandLowHz    = 200
	defaultSubBandHighHz   = 3000
	defaultHashTableBlocks = 2 // n in n*1024 slots
	defaultHashProbeDepth  = 4 // m
	defaultLogLevel        = logging.Info
)

// Config holds everything a decode session needs beyond
// what's passed on the command line per-invocation.
type Config struct {
	// StationCall is this station's own callsign. ft8dec fills it from
	// its -call flag; nothing else in the module reads it.
	StationCall string

	// SampleRate is the input audio sample rate in Hz. FT8 only needs
	// the sub-band up to ~3kHz, so 12kHz is ample.
	SampleRate uint

	// SubBandLowHz is the frequency ft8dec maps onto bin 0 of the
	// decoder's spectrum. SubBandHighHz is defaulted by Validate but
	// ft8dec does not read it; the searched range is SubBandLowHz plus
	// decoder.SpectrumSize bins.
	SubBandLowHz  uint
	SubBandHighHz uint

	// HashTableBlocks and HashProbeDepth size the callsign.Register
	// used to resolve NonStdCall hash references: n*1024 slots with a
	// probe depth of m.
	HashTableBlocks uint
	HashProbeDepth  uint

	// HashStorePath names a hashstore file for the callsign register.
	// ft8dec takes its store path from the -hashstore flag and does not
	// read this field.
	HashStorePath string

	// Logger receives Validate's notices about defaulted fields. If nil,
	// those notices are dropped.
	Logger logging.Logger

	// LogLevel is the logging verbosity. Valid values are defined by
	// enums from the logging package: logging.Debug, logging.Info,
	// logging.Warning, logging.Error, logging.Fatal.
	LogLevel int8
}

// Validate fills in defaults for any zero-valued field that has one,
// mirroring how revid's Config.Validate defaults unset fields rather
// than erroring.
func (c *Config) Validate() error {
	if c.SampleRate == 0 {
		c.logDefault("SampleRate", defaultSampleRate)
		c.SampleRate = defaultSampleRate
	}
	if c.SubBandLowHz == 0 && c.SubBandHighHz == 0 {
		c.logDefault("SubBandLowHz", defaultSubBandLowHz)
		c.logDefault("SubBandHighHz", defaultSubBandHighHz)
		c.SubBandLowHz = defaultSubBandLowHz
		c.SubBandHighHz = defaultSubBandHighHz
	}
	if c.HashTableBlocks == 0 {
		c.logDefault("HashTableBlocks", defaultHashTableBlocks)
		c.HashTableBlocks = defaultHashTableBlocks
	}
	if c.HashProbeDepth == 0 {
		c.logDefault("HashProbeDepth", defaultHashProbeDepth)
		c.HashProbeDepth = defaultHashProbeDepth
	}
	if c.LogLevel == 0 {
		c.LogLevel = defaultLogLevel
	}
	return nil
}

func (c *Config) logDefault(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
