package stats

import "testing"

func TestSummaryEmpty(t *testing.T) {
	var s Session
	sum := s.Summary()
	if sum.Examined != 0 || sum.ValidCRC != 0 {
		t.Fatalf("empty session summary = %+v", sum)
	}
}

func TestSummaryAccumulates(t *testing.T) {
	var s Session
	s.Observe(1.5, false)
	s.Observe(2.5, true)
	s.Observe(3.5, true)

	sum := s.Summary()
	if sum.Examined != 3 {
		t.Errorf("Examined = %d, want 3", sum.Examined)
	}
	if sum.ValidCRC != 2 {
		t.Errorf("ValidCRC = %d, want 2", sum.ValidCRC)
	}
	if sum.MinReliability != 1.5 || sum.MaxReliability != 3.5 {
		t.Errorf("Min/Max = %v/%v, want 1.5/3.5", sum.MinReliability, sum.MaxReliability)
	}
	wantMean := 2.5
	if sum.MeanReliability != wantMean {
		t.Errorf("MeanReliability = %v, want %v", sum.MeanReliability, wantMean)
	}
}

func TestReset(t *testing.T) {
	var s Session
	s.Observe(1, true)
	s.Reset()
	sum := s.Summary()
	if sum.Examined != 0 {
		t.Fatalf("Reset did not clear session: %+v", sum)
	}
}
