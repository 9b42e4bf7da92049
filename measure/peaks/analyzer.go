package peaks

import (
	"sort"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultAnalyzeMinFrequency = 20.0
	defaultMaxPeaks            = 50

	// relativeFloor drops peaks more than 40 dB below the strongest one.
	relativeFloor = 0.01
)

// Options configures Analyze.
type Options struct {
	MinSNR       float64 `json:"minSnr" yaml:"min_snr"`
	MinFrequency float64 `json:"minFrequency" yaml:"min_frequency"`
	MaxFrequency float64 `json:"maxFrequency" yaml:"max_frequency"`
	MaxPeaks     int     `json:"maxPeaks" yaml:"max_peaks"`
}

// DefaultOptions returns minSNR 3, range 20..20000 Hz and at most 50 peaks.
func DefaultOptions() Options {
	return Options{
		MinSNR:       DefaultMinSNR,
		MinFrequency: defaultAnalyzeMinFrequency,
		MaxFrequency: DefaultMaxFrequency,
		MaxPeaks:     defaultMaxPeaks,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMinSNR sets the linear SNR threshold.
func WithMinSNR(v float64) Option {
	return func(o *Options) {
		o.MinSNR = v
	}
}

// WithFrequencyRange sets the inclusive peak frequency range. An inverted
// range is kept as given and simply matches nothing.
func WithFrequencyRange(minFreq, maxFreq float64) Option {
	return func(o *Options) {
		o.MinFrequency = minFreq
		o.MaxFrequency = maxFreq
	}
}

// WithMaxPeaks caps the number of returned peaks. Non-positive values are ignored.
func WithMaxPeaks(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPeaks = n
		}
	}
}

// WithOptions replaces all settings at once.
func WithOptions(v Options) Option {
	return func(o *Options) {
		*o = v
	}
}

// Stats summarises the amplitudes of an analysed spectrum.
type Stats struct {
	MaxAmplitude    float64 `json:"maxAmplitude" yaml:"max_amplitude"`
	MinAmplitude    float64 `json:"minAmplitude" yaml:"min_amplitude"`
	MedianAmplitude float64 `json:"medianAmplitude" yaml:"median_amplitude"`
	NoiseFloor      float64 `json:"noiseFloor" yaml:"noise_floor"`
}

// Result holds ranked peaks and spectrum statistics.
type Result struct {
	Peaks []Peak `json:"peaks" yaml:"peaks"`
	Stats Stats  `json:"stats" yaml:"stats"`
}

// Analyzer ranks the peaks of magnitude spectra.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates an analyzer from DefaultOptions and opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Analyzer{opts: o}
}

// Options returns the effective analyzer settings.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze is a one-shot analysis with the given options.
func Analyze(bins []core.Bin, opts ...Option) Result {
	return NewAnalyzer(opts...).Analyze(bins)
}

// Analyze detects peaks, orders them by descending amplitude, drops those
// below 1% of the strongest, caps the list at MaxPeaks and attaches the
// harmonics found among the surviving peaks.
func (a *Analyzer) Analyze(bins []core.Bin) Result {
	res := Result{
		Peaks: []Peak{},
		Stats: computeStats(bins),
	}
	if len(bins) == 0 {
		return res
	}

	found := Find(bins, a.opts.MinSNR, a.opts.MinFrequency, a.opts.MaxFrequency)
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Amplitude > found[j].Amplitude
	})

	if len(found) > 0 {
		floor := found[0].Amplitude * relativeFloor
		kept := found[:0]
		for _, p := range found {
			if p.Amplitude >= floor {
				kept = append(kept, p)
			}
		}
		found = kept
	}

	found = truncate(found, a.opts.MaxPeaks)

	for i := range found {
		found[i].Harmonics = FindHarmonics(found[i].Frequency, found, DefaultHarmonicTolerance)
	}

	res.Peaks = found
	return res
}

// truncate keeps the first n peaks. A negative n drops the last -n peaks
// instead.
func truncate(found []Peak, n int) []Peak {
	if n < 0 {
		n = max(0, len(found)+n)
	}
	if len(found) > n {
		return found[:n]
	}
	return found
}

func computeStats(bins []core.Bin) Stats {
	if len(bins) == 0 {
		return Stats{}
	}

	amps := core.Amplitudes(bins)
	s := Stats{
		MaxAmplitude: floats.Max(amps),
		MinAmplitude: floats.Min(amps),
		NoiseFloor:   spectrum.NoiseFloorValues(amps),
	}

	sort.Float64s(amps)
	s.MedianAmplitude = amps[len(amps)/2]
	return s
}
