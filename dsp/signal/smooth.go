package signal

import "github.com/cwbudde/algo-fretboard/dsp/core"

// MovingAverage smooths series with a symmetric window of windowSize points
// on each side, clipped to the series bounds. Points near the edges average
// fewer neighbours. X values are preserved. windowSize <= 0 returns a copy.
func MovingAverage(series []core.Point, windowSize int) []core.Point {
	if windowSize < 0 {
		windowSize = 0
	}

	n := len(series)
	out := make([]core.Point, n)
	for i := range series {
		lo := max(0, i-windowSize)
		hi := min(n, i+windowSize+1)

		sum := 0.0
		for j := lo; j < hi; j++ {
			sum += series[j].Y
		}
		out[i] = core.Point{X: series[i].X, Y: sum / float64(hi-lo)}
	}
	return out
}
