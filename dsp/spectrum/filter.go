package spectrum

import "github.com/cwbudde/algo-fretboard/dsp/core"

// Filtered is the result of a band-pass over a spectrum.
type Filtered struct {
	Frequencies []float64  `json:"frequencies" yaml:"frequencies"`
	Amplitudes  []core.Bin `json:"amplitudes" yaml:"amplitudes"`
}

// Filter keeps the bins whose grid frequency lies in [minFreq, maxFreq].
//
// The grid is recomputed as i*sampleRate/len(bins) and the Frequency stored in
// each bin is not consulted. Returned bins are copied unchanged, so their
// Frequency fields may disagree with Filtered.Frequencies. An empty range
// yields two empty slices.
func Filter(bins []core.Bin, sampleRate, minFreq, maxFreq float64) Filtered {
	out := Filtered{
		Frequencies: []float64{},
		Amplitudes:  []core.Bin{},
	}

	n := len(bins)
	for i, b := range bins {
		f := float64(i) * sampleRate / float64(n)
		if f >= minFreq && f <= maxFreq {
			out.Frequencies = append(out.Frequencies, f)
			out.Amplitudes = append(out.Amplitudes, b)
		}
	}
	return out
}
