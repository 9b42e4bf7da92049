package core

// Point is one sample of a time series: X is the time in seconds, Y the amplitude.
// It is also the x/y shape used for spectrum charts (X = Hz, Y = magnitude).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Bin is one point of a magnitude spectrum. Amplitude is never negative.
type Bin struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
}

// Samples returns the Y values of series.
func Samples(series []Point) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Y
	}
	return out
}

// SeriesFromSamples builds a uniformly sampled series starting at t=0.
// A non-positive sample rate yields X equal to the sample index.
func SeriesFromSamples(samples []float64, sampleRate float64) []Point {
	out := make([]Point, len(samples))
	step := 1.0
	if sampleRate > 0 {
		step = 1 / sampleRate
	}
	for i, v := range samples {
		out[i] = Point{X: float64(i) * step, Y: v}
	}
	return out
}

// Amplitudes returns the amplitude of every bin.
func Amplitudes(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Amplitude
	}
	return out
}

// Frequencies returns the stored frequency of every bin.
func Frequencies(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Frequency
	}
	return out
}
