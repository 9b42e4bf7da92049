package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

// Partial is one component of a synthesized tone: a multiple of the
// fundamental frequency and its relative amplitude.
type Partial struct {
	Multiplier float64
	Amplitude  float64
}

// GuitarPartials approximates the spectrum of a plucked guitar string.
var GuitarPartials = []Partial{
	{Multiplier: 1, Amplitude: 1.0},
	{Multiplier: 2, Amplitude: 0.5},
	{Multiplier: 3, Amplitude: 0.25},
	{Multiplier: 4, Amplitude: 0.125},
	{Multiplier: 5, Amplitude: 0.06},
	{Multiplier: 6, Amplitude: 0.03},
}

const (
	pluckDecay  = 2.0  // exp(-decay*t)
	pluckAttack = 0.02 // seconds of linear attack
	pluckGain   = 0.5
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// PluckedString synthesizes a decaying harmonic tone at freqHz lasting
// duration seconds, using GuitarPartials, a 20 ms attack and exp(-2t) decay.
func (g *Generator) PluckedString(freqHz, duration float64) ([]float64, error) {
	return g.Tone(freqHz, duration, GuitarPartials)
}

// Tone synthesizes a decaying tone from the given partials.
func (g *Generator) Tone(freqHz, duration float64, partials []Partial) ([]float64, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("tone frequency must be > 0: %f", freqHz)
	}
	samples := int(math.Floor(g.cfg.SampleRate * duration))
	if samples <= 0 {
		return nil, fmt.Errorf("tone duration yields no samples: %f", duration)
	}

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		decay := math.Exp(-t * pluckDecay)

		sample := 0.0
		for _, p := range partials {
			sample += math.Sin(2*math.Pi*freqHz*p.Multiplier*t) * p.Amplitude * decay
		}

		attack := 1.0
		if t < pluckAttack {
			attack = t / pluckAttack
		}
		out[i] = sample * attack * pluckGain
	}
	return out, nil
}

// Series converts samples produced by g into a time series at g's sample rate.
func (g *Generator) Series(samples []float64) []core.Point {
	return core.SeriesFromSamples(samples, g.cfg.SampleRate)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
