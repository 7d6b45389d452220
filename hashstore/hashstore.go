/*
NAME
  hashstore.go

DESCRIPTION
  hashstore.go persists a callsign.Register to a plain text file (one
  callsign per line) and keeps it in sync with the file on disk:
  Open populates a Register from the file at startup, Add appends
  newly learned callsigns, and Watch reloads the whole register
  whenever the file changes underneath the running process, so
  callsigns another process appends with Add are picked up.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package hashstore persists a callsign.Register across process
// restarts and keeps it synchronized with on-disk changes.
package hashstore

import (
	"bufio"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/av/callsign"
	"github.com/ausocean/utils/logging"
)

// Store wraps a callsign.Register with disk persistence at path.
type Store struct {
	path string
	log  logging.Logger

	mu  sync.Mutex
	reg *callsign.Register

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Open loads reg's contents from path, creating an empty file if it
// does not yet exist. reg is sized for the callsign.Register the
// caller wants reloaded contents merged into.
func Open(path string, reg *callsign.Register, log logging.Logger) (*Store, error) {
	s := &Store{path: path, log: log, reg: reg}
	if err := s.reload(); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "hashstore: initial load failed")
		}
		f, cerr := os.Create(path)
		if cerr != nil {
			return nil, errors.Wrap(cerr, "hashstore: could not create store file")
		}
		f.Close()
	}
	return s, nil
}

// reload re-reads path and adds every line's callsign to the
// register, tolerating blank lines.
func (s *Store) reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if s.reg.Add(line) {
			n++
		}
	}
	if s.log != nil {
		s.log.Debug("hashstore: reloaded store", "path", s.path, "added", n)
	}
	return sc.Err()
}

// Add records call in the register and appends it to the store file.
func (s *Store) Add(call string) bool {
	s.mu.Lock()
	ok := s.reg.Add(call)
	s.mu.Unlock()
	if !ok {
		return false
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		if s.log != nil {
			s.log.Error("hashstore: could not open store for append", "error", err.Error())
		}
		return ok
	}
	defer f.Close()
	if _, err := f.WriteString(call + "\n"); err != nil && s.log != nil {
		s.log.Error("hashstore: could not append callsign", "error", err.Error())
	}
	return ok
}

// Watch starts watching the store file for external changes (e.g. a
// sibling process appending its own discoveries) and reloads the
// register whenever the file is written or replaced. It runs until
// Close is called.
func (s *Store) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "hashstore: could not create watcher")
	}
	if err := w.Add(s.path); err != nil {
		w.Close()
		return errors.Wrap(err, "hashstore: could not watch store file")
	}
	s.watcher = w
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.reload(); err != nil && s.log != nil {
					s.log.Error("hashstore: reload failed", "error", err.Error())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if s.log != nil {
					s.log.Error("hashstore: watcher error", "error", err.Error())
				}
			case <-s.done:
				return
			}
		}
	}()
	return nil
}

// Close stops the watcher goroutine started by Watch, if any.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	return s.watcher.Close()
}

// Register returns the underlying callsign.Register.
func (s *Store) Register() *callsign.Register {
	return s.reg
}
