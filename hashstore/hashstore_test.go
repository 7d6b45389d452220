package hashstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/av/callsign"
)

func TestOpenCreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calls.txt")

	reg := callsign.NewRegister(2, 4)
	s, err := Open(path, reg, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}
}

func TestAddPersistsAndReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calls.txt")

	reg := callsign.NewRegister(2, 4)
	s, err := Open(path, reg, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if !s.Add("JA1ZLO") {
		t.Fatal("Add failed")
	}

	reg2 := callsign.NewRegister(2, 4)
	s2, err := Open(path, reg2, nil)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	h, ok := callsign.HashCallsign("JA1ZLO")
	if !ok {
		t.Fatal("HashCallsign failed")
	}
	if _, ok := s2.Register().FindHash(h); !ok {
		t.Fatal("reloaded store did not contain persisted callsign")
	}
}
