package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/internal/testutil"
	dspfft "github.com/mjibson/go-dsp/fft"
)

func TestComputeLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 8, 17, 1000, 1024} {
		samples := testutil.DeterministicNoise(int64(n)+1, 1, n)
		got := ComputeSamples(samples, 44100)
		if len(got) != n/2 {
			t.Fatalf("N=%d: len = %d, want %d", n, len(got), n/2)
		}
	}
}

func TestComputeEmptyIsNonNil(t *testing.T) {
	if got := Compute(nil, 44100); got == nil || len(got) != 0 {
		t.Fatalf("Compute(nil) = %v, want empty non-nil", got)
	}
}

func TestComputeSineDominantBin(t *testing.T) {
	const (
		n          = 1024
		sampleRate = 1024.0
		freq       = 64.0
		amplitude  = 2.0
	)

	samples := testutil.DeterministicSine(freq, sampleRate, amplitude, n)
	bins := ComputeSamples(samples, sampleRate)

	peak := 0
	for i, b := range bins {
		if b.Amplitude > bins[peak].Amplitude {
			peak = i
		}
	}

	if bins[peak].Frequency != freq {
		t.Fatalf("peak frequency = %v, want %v", bins[peak].Frequency, freq)
	}
	if math.Abs(bins[peak].Amplitude-amplitude/2) > 1e-9 {
		t.Fatalf("peak amplitude = %v, want %v", bins[peak].Amplitude, amplitude/2)
	}

	for i, b := range bins {
		if i != peak && b.Amplitude > 1e-9 {
			t.Fatalf("leakage at bin %d: %v", i, b.Amplitude)
		}
	}
}

func TestComputeFrequencyGridUsesPaddedLength(t *testing.T) {
	bins := ComputeSamples(testutil.Ones(17), 32)
	// M = 32, so bins are spaced 1 Hz apart.
	for k, b := range bins {
		if b.Frequency != float64(k) {
			t.Fatalf("bin %d frequency = %v, want %v", k, b.Frequency, float64(k))
		}
	}
	// DC bin of 17 ones scaled by the padded length.
	if math.Abs(bins[0].Amplitude-17.0/32.0) > 1e-12 {
		t.Fatalf("DC = %v, want %v", bins[0].Amplitude, 17.0/32.0)
	}
}

func TestComputeAmplitudesNonNegative(t *testing.T) {
	bins := ComputeSamples(testutil.DeterministicNoise(7, 1, 1000), 8000)
	for i, b := range bins {
		if b.Amplitude < 0 || math.IsNaN(b.Amplitude) {
			t.Fatalf("bin %d amplitude = %v", i, b.Amplitude)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	samples := testutil.DeterministicNoise(11, 0.5, 777)
	a := ComputeSamples(samples, 44100)
	b := ComputeSamples(samples, 44100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bin %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComputeIgnoresTimestamps(t *testing.T) {
	samples := testutil.DeterministicNoise(3, 1, 64)
	uniform := core.SeriesFromSamples(samples, 64)
	jittered := make([]core.Point, len(uniform))
	for i, p := range uniform {
		jittered[i] = core.Point{X: p.X * p.X, Y: p.Y}
	}

	a := Compute(uniform, 64)
	b := Compute(jittered, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bin %d depends on X values", i)
		}
	}
}

// directDFT is the O(n^2) definition of the forward transform.
func directDFT(src []complex128) []complex128 {
	n := len(src)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range src {
			theta := -2 * math.Pi * float64(k*j) / float64(n)
			sum += v * complex(math.Cos(theta), math.Sin(theta))
		}
		out[k] = sum
	}
	return out
}

func TestPlanMatchesDirectDFT(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 512} {
		src := make([]complex128, n)
		for i, v := range testutil.DeterministicNoise(int64(n), 1, n) {
			src[i] = complex(v, 0)
		}
		want := directDFT(src)

		plan, err := NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}

		got := make([]complex128, n)
		if err := plan.Forward(got, src); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		inPlace := append([]complex128(nil), src...)
		if err := plan.Transform(inPlace); err != nil {
			t.Fatalf("Transform: %v", err)
		}

		for k := range got {
			if cmplx.Abs(got[k]-want[k]) > 1e-9 {
				t.Fatalf("n=%d bin %d: got %v want %v", n, k, got[k], want[k])
			}
			if inPlace[k] != got[k] {
				t.Fatalf("n=%d bin %d: Transform %v differs from Forward %v", n, k, inPlace[k], got[k])
			}
		}
	}
}

func TestComputeReproducibleAcrossPlans(t *testing.T) {
	for _, n := range []int{2, 3, 4, 1024, 65536} {
		samples := testutil.DeterministicNoise(int64(n)+3, 1, n)
		first := ComputeSamples(samples, 44100)
		for run := 0; run < 3; run++ {
			again := ComputeSamples(samples, 44100)
			for k := range first {
				if again[k] != first[k] {
					t.Fatalf("N=%d run %d bin %d: %+v vs %+v", n, run, k, again[k], first[k])
				}
			}
		}
	}
}

func TestComputeMatchesGoDSP(t *testing.T) {
	const n = 300
	samples := testutil.DeterministicNoise(5, 1, n)
	m := PaddedLength(n)

	padded := make([]float64, m)
	copy(padded, samples)
	ref := dspfft.FFTReal(padded)

	bins := ComputeSamples(samples, 8000)
	for k, b := range bins {
		want := cmplx.Abs(ref[k]) / float64(m)
		if math.Abs(b.Amplitude-want) > 1e-9 {
			t.Fatalf("bin %d: got %v want %v", k, b.Amplitude, want)
		}
	}
}

func TestNewPlanErrors(t *testing.T) {
	for _, n := range []int{0, -4, 12} {
		if _, err := NewPlan(n); err == nil {
			t.Fatalf("NewPlan(%d): expected error", n)
		}
	}

	plan, err := NewPlan(8)
	if err != nil {
		t.Fatalf("NewPlan(8): %v", err)
	}
	if plan.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", plan.Len())
	}
	if err := plan.Transform(make([]complex128, 4)); err == nil {
		t.Fatal("expected error for mismatched buffer length")
	}
}

func TestBinSpacing(t *testing.T) {
	if got := BinSpacing(1000, 44100); got != 44100.0/1024 {
		t.Fatalf("BinSpacing = %v, want %v", got, 44100.0/1024)
	}
	if got := PaddedLength(1); got != 1 {
		t.Fatalf("PaddedLength(1) = %d, want 1", got)
	}
}
