package pcm

import "testing"

func TestDownmixMono(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	out := Downmix(in, 1)
	if len(out) != len(in) {
		t.Fatalf("got length %d, want %d", len(out), len(in))
	}
}

func TestDownmixStereo(t *testing.T) {
	in := []float64{1, 3, 2, 4} // frame 0: L=1 R=3, frame 1: L=2 R=4
	out := Downmix(in, 2)
	want := []float64{2, 3}
	if len(out) != len(want) {
		t.Fatalf("got length %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("frame %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestResampleSameRate(t *testing.T) {
	in := []float64{1, 2, 3}
	out, err := Resample(in, 12000, 12000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got length %d, want %d", len(out), len(in))
	}
}

func TestResampleDownsamples(t *testing.T) {
	in := []float64{0, 2, 4, 6} // decimate 2:1 -> averages of consecutive pairs
	out, err := Resample(in, 48000, 24000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 5}
	if len(out) != len(want) {
		t.Fatalf("got length %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestResampleRejectsUpsampling(t *testing.T) {
	if _, err := Resample([]float64{1, 2}, 8000, 16000); err == nil {
		t.Fatal("expected an error for upsampling, got nil")
	}
}

func TestResampleRejectsNonIntegerRatio(t *testing.T) {
	if _, err := Resample([]float64{1, 2, 3}, 48000, 44100); err == nil {
		t.Fatal("expected an error for a non-integer decimation ratio, got nil")
	}
}
