package spectrum

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

const (
	// NoiseFraction is the share of quietest bins used to estimate the floor.
	NoiseFraction = 0.1
	// MinNoiseSample is the per-bin clamp applied before squaring.
	MinNoiseSample = 1e-15
	// MinNoiseFloor is the lower bound of any non-empty estimate.
	MinNoiseFloor = 1e-12
)

// NoiseFloor returns the RMS of the quietest 10% of bins (at least one bin).
// The result is at least MinNoiseFloor, except for empty input which returns 0.
func NoiseFloor(bins []core.Bin) float64 {
	return NoiseFloorValues(core.Amplitudes(bins))
}

// NoiseFloorValues is NoiseFloor over raw amplitudes. values is not modified.
func NoiseFloorValues(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	size := int(math.Floor(float64(len(sorted)) * NoiseFraction))
	if size < 1 {
		size = 1
	}

	sum := 0.0
	for _, v := range sorted[:size] {
		a := math.Max(math.Abs(v), MinNoiseSample)
		sum += a * a
	}

	rms := math.Sqrt(sum / float64(size))
	return math.Max(rms, MinNoiseFloor)
}
