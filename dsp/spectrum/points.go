package spectrum

import "github.com/cwbudde/algo-fretboard/dsp/core"

// ToPoints converts bins to chart points (X = frequency, Y = amplitude).
func ToPoints(bins []core.Bin) []core.Point {
	out := make([]core.Point, len(bins))
	for i, b := range bins {
		out[i] = core.Point{X: b.Frequency, Y: b.Amplitude}
	}
	return out
}
