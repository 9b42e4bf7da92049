package peaks

import "math"

// DefaultHarmonicTolerance is the relative frequency window used to accept a
// harmonic: |f - n*f0| <= n*f0*tolerance.
const DefaultHarmonicTolerance = 0.05

// MaxHarmonic is the highest harmonic number searched.
const MaxHarmonic = 5

const levelOffset = 1e-15

// FindHarmonics returns the frequencies of candidates that sit on harmonics
// 2..MaxHarmonic of fundamental, in harmonic order.
//
// For harmonic n the first candidate (in slice order) within the tolerance
// window wins, provided its amplitude reaches candidates[0].Amplitude/(2n).
// The loudness reference is always candidates[0], whichever peak is being
// matched, so the result depends on the order of candidates. Analyze passes
// amplitude-sorted peaks, making candidates[0] the strongest peak.
func FindHarmonics(fundamental float64, candidates []Peak, tolerance float64) []float64 {
	harmonics := []float64{}
	if len(candidates) == 0 {
		return harmonics
	}

	refLog := math.Log10(candidates[0].Amplitude + levelOffset)

	for n := 2; n <= MaxHarmonic; n++ {
		expected := fundamental * float64(n)
		window := expected * tolerance
		minLevel := math.Pow(10, refLog-math.Log10(float64(n*2)))

		for _, c := range candidates {
			if math.Abs(c.Frequency-expected) <= window && c.Amplitude >= minLevel {
				harmonics = append(harmonics, c.Frequency)
				break
			}
		}
	}
	return harmonics
}
