/*
NAME
  ft8log.go

DESCRIPTION
  ft8log.go wires up structured logging for the ft8dec command line
  tool: a lumberjack-rolled log file beneath a single
  logging.Logger, the same pairing cmd/audio-netsender and cmd/rv use.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ft8log configures the logger used by the ft8dec command
// line tool (ft8enc writes only to stdout and stderr).
package ft8log

import (
	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSize    = 500 // MB
	defaultMaxBackups = 10
	defaultMaxAge     = 28 // days
)

// New returns a logging.Logger at the given verbosity (one of
// logging.Debug, logging.Info, logging.Warning, logging.Error,
// logging.Fatal) that writes to path, rolling the file per lumberjack's
// defaults scaled for a long-running decode session.
func New(level int8, path string, suppress bool) logging.Logger {
	roller := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
	}
	return logging.New(level, roller, suppress)
}
