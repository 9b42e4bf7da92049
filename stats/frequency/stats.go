// Package frequency summarises the shape of a magnitude spectrum.
//
// All descriptors use the Frequency stored in each bin, so spectra that were
// band-limited or resampled onto an irregular grid are described correctly.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// DefaultRolloff is the energy fraction used by Describe for Rolloff.
const DefaultRolloff = 0.85

// Shape holds spectral shape descriptors.
type Shape struct {
	Bins      int     `json:"bins" yaml:"bins"`
	Energy    float64 `json:"energy" yaml:"energy"`       // sum of squared amplitudes
	Centroid  float64 `json:"centroid" yaml:"centroid"`   // Hz
	Spread    float64 `json:"spread" yaml:"spread"`       // Hz
	Flatness  float64 `json:"flatness" yaml:"flatness"`   // 0..1
	Rolloff   float64 `json:"rolloff" yaml:"rolloff"`     // Hz
	Bandwidth float64 `json:"bandwidth" yaml:"bandwidth"` // -3 dB width around the peak, Hz
}

// Describe computes every descriptor of bins.
func Describe(bins []core.Bin) Shape {
	if len(bins) == 0 {
		return Shape{}
	}
	amps := core.Amplitudes(bins)
	c := Centroid(bins)
	return Shape{
		Bins:      len(bins),
		Energy:    floats.Dot(amps, amps),
		Centroid:  c,
		Spread:    spread(bins, c, floats.Sum(amps)),
		Flatness:  Flatness(bins),
		Rolloff:   Rolloff(bins, DefaultRolloff),
		Bandwidth: Bandwidth(bins),
	}
}

// Centroid returns the amplitude weighted mean frequency, or 0 for silence.
func Centroid(bins []core.Bin) float64 {
	amps := core.Amplitudes(bins)
	total := floats.Sum(amps)
	if total == 0 {
		return 0
	}
	return floats.Dot(amps, core.Frequencies(bins)) / total
}

// Spread returns the amplitude weighted standard deviation around the centroid.
func Spread(bins []core.Bin) float64 {
	return spread(bins, Centroid(bins), floats.Sum(core.Amplitudes(bins)))
}

func spread(bins []core.Bin, centroid, total float64) float64 {
	if total == 0 {
		return 0
	}
	acc := 0.0
	for _, b := range bins {
		d := b.Frequency - centroid
		acc += d * d * b.Amplitude
	}
	return math.Sqrt(acc / total)
}

// Flatness returns the ratio of geometric to arithmetic mean amplitude,
// skipping the DC bin. Any silent bin makes the spectrum maximally tonal (0).
func Flatness(bins []core.Bin) float64 {
	if len(bins) < 2 {
		return 0
	}
	amps := core.Amplitudes(bins[1:])
	mean := floats.Sum(amps) / float64(len(amps))
	if mean == 0 || floats.Min(amps) <= 0 {
		return 0
	}

	logSum := 0.0
	for _, a := range amps {
		logSum += math.Log(a)
	}
	return math.Exp(logSum/float64(len(amps))) / mean
}

// Rolloff returns the frequency of the first bin at which the cumulative
// energy reaches fraction of the total.
func Rolloff(bins []core.Bin, fraction float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	amps := core.Amplitudes(bins)
	total := floats.Dot(amps, amps)
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	acc := 0.0
	for _, b := range bins {
		acc += b.Amplitude * b.Amplitude
		if acc >= threshold {
			return b.Frequency
		}
	}
	return bins[len(bins)-1].Frequency
}

// Bandwidth returns the width between the points left and right of the
// strongest bin where the amplitude falls to peak/sqrt(2), interpolated
// linearly between bins. Without a crossing the spectrum edge is used.
func Bandwidth(bins []core.Bin) float64 {
	if len(bins) < 2 {
		return 0
	}
	peak := floats.MaxIdx(core.Amplitudes(bins))
	if bins[peak].Amplitude == 0 {
		return 0
	}
	threshold := bins[peak].Amplitude / math.Sqrt2

	lower := bins[0].Frequency
	for i := peak; i >= 1; i-- {
		if bins[i-1].Amplitude <= threshold && bins[i].Amplitude > threshold {
			lower = crossing(bins[i-1], bins[i], threshold)
			break
		}
	}

	upper := bins[len(bins)-1].Frequency
	for i := peak; i < len(bins)-1; i++ {
		if bins[i+1].Amplitude <= threshold && bins[i].Amplitude > threshold {
			upper = crossing(bins[i], bins[i+1], threshold)
			break
		}
	}
	return math.Max(upper-lower, 0)
}

func crossing(a, b core.Bin, threshold float64) float64 {
	d := b.Amplitude - a.Amplitude
	if d == 0 {
		return (a.Frequency + b.Frequency) / 2
	}
	t := (threshold - a.Amplitude) / d
	return a.Frequency + t*(b.Frequency-a.Frequency)
}
