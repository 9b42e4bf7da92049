// Package time summarises the level of a time series before it is analysed.
package time

import (
	"math"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Level holds time-domain level statistics of a series.
type Level struct {
	Length        int     `json:"length" yaml:"length"`
	Duration      float64 `json:"duration" yaml:"duration"` // seconds, from the X span
	DC            float64 `json:"dc" yaml:"dc"`
	RMS           float64 `json:"rms" yaml:"rms"`
	Peak          float64 `json:"peak" yaml:"peak"`
	CrestFactor   float64 `json:"crestFactor" yaml:"crest_factor"`
	ZeroCrossings int     `json:"zeroCrossings" yaml:"zero_crossings"`
	Variance      float64 `json:"variance" yaml:"variance"`
	Skewness      float64 `json:"skewness" yaml:"skewness"`
	Kurtosis      float64 `json:"kurtosis" yaml:"kurtosis"` // excess
}

// RMSDB returns the RMS level in dB.
func (l Level) RMSDB() float64 { return core.DisplayDB(l.RMS) }

// PeakDB returns the peak level in dB.
func (l Level) PeakDB() float64 { return core.DisplayDB(l.Peak) }

// Describe computes the level statistics of series. Higher moments need at
// least two points and a non-zero variance; otherwise they are 0.
func Describe(series []core.Point) Level {
	n := len(series)
	if n == 0 {
		return Level{}
	}

	y := make([]float64, n)
	for i, p := range series {
		y[i] = p.Y
	}

	l := Level{
		Length:        n,
		Duration:      series[n-1].X - series[0].X,
		DC:            stat.Mean(y, nil),
		RMS:           RMS(y),
		Peak:          Peak(y),
		ZeroCrossings: ZeroCrossings(y),
	}
	if l.RMS > 0 {
		l.CrestFactor = l.Peak / l.RMS
	}
	if n > 1 {
		l.Variance = stat.Variance(y, nil)
		if l.Variance > 0 {
			l.Skewness = stat.Skew(y, nil)
			l.Kurtosis = stat.ExKurtosis(y, nil)
		}
	}
	return l
}

// RMS returns the root mean square of samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(samples)), math.Abs(floats.Min(samples)))
}

// ZeroCrossings counts sign changes between consecutive samples. Zeros do
// not start or end a crossing.
func ZeroCrossings(samples []float64) int {
	count := 0
	prev := 0.0
	for _, v := range samples {
		if v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			count++
		}
		prev = v
	}
	return count
}
