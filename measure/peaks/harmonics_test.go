package peaks

import (
	"testing"
)

func TestFindHarmonicsExample(t *testing.T) {
	candidates := []Peak{
		{Frequency: 440, Amplitude: 1.0, SNR: 10},
		{Frequency: 880, Amplitude: 0.5, SNR: 5},
		{Frequency: 1320, Amplitude: 0.3, SNR: 3},
	}

	got := FindHarmonics(440, candidates, DefaultHarmonicTolerance)
	want := []float64{880, 1320}
	if len(got) != len(want) {
		t.Fatalf("harmonics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("harmonics = %v, want %v", got, want)
		}
	}
}

func TestFindHarmonicsTolerance(t *testing.T) {
	candidates := []Peak{
		{Frequency: 100, Amplitude: 1},
		{Frequency: 209, Amplitude: 1}, // within 5% of 200
		{Frequency: 316, Amplitude: 1}, // outside 5% of 300
	}
	got := FindHarmonics(100, candidates, DefaultHarmonicTolerance)
	if len(got) != 1 || got[0] != 209 {
		t.Fatalf("harmonics = %v, want [209]", got)
	}
}

func TestFindHarmonicsLevelDecaysWithOrder(t *testing.T) {
	// Level thresholds relative to candidates[0]: 1/4, 1/6, 1/8, 1/10.
	candidates := []Peak{
		{Frequency: 100, Amplitude: 1},
		{Frequency: 200, Amplitude: 0.2},
		{Frequency: 300, Amplitude: 0.2},
		{Frequency: 400, Amplitude: 0.12},
		{Frequency: 500, Amplitude: 0.11},
	}
	got := FindHarmonics(100, candidates, DefaultHarmonicTolerance)
	want := []float64{300, 500}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("harmonics = %v, want %v", got, want)
	}
}

func TestFindHarmonicsUsesFirstCandidateAsReference(t *testing.T) {
	loudFirst := []Peak{
		{Frequency: 1000, Amplitude: 10},
		{Frequency: 100, Amplitude: 1},
		{Frequency: 200, Amplitude: 1},
	}
	quietFirst := []Peak{
		{Frequency: 100, Amplitude: 1},
		{Frequency: 200, Amplitude: 1},
		{Frequency: 1000, Amplitude: 10},
	}

	if got := FindHarmonics(100, loudFirst, DefaultHarmonicTolerance); len(got) != 0 {
		t.Fatalf("loud reference: harmonics = %v, want none", got)
	}
	if got := FindHarmonics(100, quietFirst, DefaultHarmonicTolerance); len(got) != 1 || got[0] != 200 {
		t.Fatalf("quiet reference: harmonics = %v, want [200]", got)
	}
}

func TestFindHarmonicsEmpty(t *testing.T) {
	got := FindHarmonics(440, nil, DefaultHarmonicTolerance)
	if got == nil || len(got) != 0 {
		t.Fatalf("FindHarmonics(nil) = %v, want empty", got)
	}
}
