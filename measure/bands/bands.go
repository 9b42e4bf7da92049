package bands

import (
	"math"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Band is a closed frequency interval [MinFreq, MaxFreq] with a display name.
type Band struct {
	Name    string  `json:"name" yaml:"name" mapstructure:"name"`
	MinFreq float64 `json:"minFreq" yaml:"min_freq" mapstructure:"min_freq"`
	MaxFreq float64 `json:"maxFreq" yaml:"max_freq" mapstructure:"max_freq"`
}

// Contains reports whether f lies inside the band, bounds included.
func (b Band) Contains(f float64) bool {
	return f >= b.MinFreq && f <= b.MaxFreq
}

// CommonBands returns the default band split used for music material.
func CommonBands() []Band {
	return []Band{
		{Name: "Bass", MinFreq: 20, MaxFreq: 150},
		{Name: "Low-Mids", MinFreq: 150, MaxFreq: 400},
		{Name: "Mids", MinFreq: 400, MaxFreq: 2000},
		{Name: "High-Mids", MinFreq: 2000, MaxFreq: 6000},
		{Name: "Highs", MinFreq: 6000, MaxFreq: 20000},
	}
}

// Track returns one energy value per frame: the mean amplitude of the bins
// whose stored frequency lies in [minFreq, maxFreq]. Frames with no bin in
// range yield NaN.
func Track(frames [][]core.Bin, minFreq, maxFreq float64) []float64 {
	out := make([]float64, len(frames))
	band := Band{MinFreq: minFreq, MaxFreq: maxFreq}

	var amps []float64
	for i, frame := range frames {
		amps = amps[:0]
		for _, b := range frame {
			if band.Contains(b.Frequency) {
				amps = append(amps, b.Amplitude)
			}
		}
		if len(amps) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = floats.Sum(amps) / float64(len(amps))
	}
	return out
}

// TrackBand is Track over the interval of b.
func TrackBand(frames [][]core.Bin, b Band) []float64 {
	return Track(frames, b.MinFreq, b.MaxFreq)
}
