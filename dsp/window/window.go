// Package window generates taper windows and applies them to sample buffers
// and time series before spectral analysis.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// ParseType resolves a window name. "none" and "" map to TypeRectangular and
// "hanning" is accepted as an alias of "hann".
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "rectangular":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	}
	return 0, fmt.Errorf("unknown window type: %q", name)
}

// Generate returns symmetric window coefficients of the given length.
//
// Coefficient i is evaluated at phase 2*pi*i/(length-1). A single-point
// window is [1]: the phase is undefined and the sample passes unchanged.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, i, length)
	}
	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf)))
}

// ApplySeries returns a copy of series with Y multiplied by the window. X is kept.
func ApplySeries(t Type, series []core.Point) []core.Point {
	samples := core.Samples(series)
	Apply(t, samples)

	out := make([]core.Point, len(series))
	for i, p := range series {
		out[i] = core.Point{X: p.X, Y: samples[i]}
	}
	return out
}

// ApplyHanning tapers both ends of series toward zero with
// 0.5*(1-cos(2*pi*i/(n-1))). A one-point series is returned unchanged.
func ApplyHanning(series []core.Point) []core.Point {
	return ApplySeries(TypeHann, series)
}

// CoherentGain returns the mean coefficient, the amplitude scaling a window
// applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return floats.Sum(coeffs) / float64(len(coeffs)), nil
}

func evalWindow(t Type, i, length int) float64 {
	phase := 2 * math.Pi * float64(i) / float64(length-1)

	switch t {
	case TypeHann:
		return 0.5 * (1 - math.Cos(phase))
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(phase)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default:
		return 1
	}
}
