package fft

import (
	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/spectrum"
)

// Compute returns the magnitude spectrum of series sampled at sampleRate.
//
// The X values of series are ignored; samples are assumed to be uniformly
// spaced at 1/sampleRate. See ComputeSamples for the output contract.
func Compute(series []core.Point, sampleRate float64) []core.Bin {
	return ComputeSamples(core.Samples(series), sampleRate)
}

// ComputeSamples returns floor(N/2) bins for N samples. Bin k has frequency
// k*sampleRate/M and amplitude |X[k]|/M, where M is N rounded up to a power of
// two. Empty input yields an empty, non-nil spectrum.
func ComputeSamples(samples []float64, sampleRate float64) []core.Bin {
	n := len(samples)
	keep := n / 2
	if keep == 0 {
		return []core.Bin{}
	}

	m := core.NextPowerOfTwo(n)
	plan, err := NewPlan(m)
	if err != nil {
		return []core.Bin{}
	}

	buf := make([]complex128, m)
	for i, v := range samples {
		buf[i] = complex(v, 0)
	}

	out := make([]complex128, m)
	if err := plan.Forward(out, buf); err != nil {
		return []core.Bin{}
	}

	mag := spectrum.ScaledMagnitude(out[:keep], 1/float64(m))

	bins := make([]core.Bin, keep)
	for k := range bins {
		bins[k] = core.Bin{
			Frequency: float64(k) * sampleRate / float64(m),
			Amplitude: mag[k],
		}
	}
	return bins
}

// PaddedLength returns the transform size used for n input samples.
func PaddedLength(n int) int {
	return core.NextPowerOfTwo(n)
}

// BinSpacing returns the frequency distance between reported bins for n
// samples at sampleRate. For non-power-of-two n this is finer than the true
// resolution sampleRate/n.
func BinSpacing(n int, sampleRate float64) float64 {
	return sampleRate / float64(PaddedLength(n))
}
