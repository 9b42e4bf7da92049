package guitar

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

const (
	// DefaultMaxNotes is the number of candidates Match returns.
	DefaultMaxNotes = 6
	// DefaultSNR and DefaultTolerance apply to empty spectra only.
	DefaultSNR       = 3.0
	DefaultTolerance = 5.0

	// MinNoiseFloor bounds the matcher's noise estimate from below.
	MinNoiseFloor = 0.001

	noiseFraction  = 0.2
	snrScale       = 0.3
	minDynamicSNR  = 2.0
	maxDynamicSNR  = 5.0
	maxTolerance   = 10.0
	maxHarmonic    = 5
	harmonicBoost  = 0.5
	harmonicCredit = 0.3
)

// Parameters are the spectrum dependent thresholds used by Match.
type Parameters struct {
	NoiseFloor float64 `json:"noiseFloor" yaml:"noise_floor"`
	SNR        float64 `json:"snr" yaml:"snr"`
	Tolerance  float64 `json:"tolerance" yaml:"tolerance"`
}

// Candidate is a scored catalogue note.
type Candidate struct {
	Note       `yaml:",inline"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	Harmonics  []float64 `json:"harmonics" yaml:"harmonics"`
	// Suppressed marks a candidate folded into a stronger one. Match never
	// returns suppressed candidates.
	Suppressed bool `json:"suppressed" yaml:"suppressed"`
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxNotes caps the number of returned candidates. Non-positive values are ignored.
func WithMaxNotes(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxNotes = n
		}
	}
}

// WithDefaults sets the SNR and tolerance reported for an empty spectrum.
func WithDefaults(snr, tolerance float64) Option {
	return func(m *Matcher) {
		m.defaultSNR = snr
		m.defaultTolerance = tolerance
	}
}

// Matcher ranks catalogue notes against magnitude spectra. It holds no
// per-call state and is safe for concurrent use.
type Matcher struct {
	maxNotes         int
	defaultSNR       float64
	defaultTolerance float64
}

// NewMatcher creates a matcher returning DefaultMaxNotes candidates.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		maxNotes:         DefaultMaxNotes,
		defaultSNR:       DefaultSNR,
		defaultTolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// MaxNotes returns the configured candidate limit.
func (m *Matcher) MaxNotes() int { return m.maxNotes }

// Match is a one-shot match with the given options.
func Match(bins []core.Bin, opts ...Option) []Candidate {
	return NewMatcher(opts...).Match(bins)
}

// NoiseFloor returns the mean of the quietest 20% of amplitudes, at least
// MinNoiseFloor. Spectra with fewer than five bins have no quiet window and
// return MinNoiseFloor.
func NoiseFloor(bins []core.Bin) float64 {
	k := int(math.Floor(float64(len(bins)) * noiseFraction))
	if k == 0 {
		return MinNoiseFloor
	}

	amps := core.Amplitudes(bins)
	sort.Float64s(amps)

	sum := 0.0
	for _, a := range amps[:k] {
		sum += a
	}
	return math.Max(sum/float64(k), MinNoiseFloor)
}

// Parameters derives the detection thresholds for bins. The SNR scales with
// the peak to noise ratio and is clamped to [2, 5]; the tolerance follows the
// spacing of the first two bins.
func (m *Matcher) Parameters(bins []core.Bin) Parameters {
	noise := NoiseFloor(bins)
	if len(bins) == 0 {
		return Parameters{NoiseFloor: noise, SNR: m.defaultSNR, Tolerance: m.defaultTolerance}
	}

	maxAmp := bins[0].Amplitude
	for _, b := range bins[1:] {
		if b.Amplitude > maxAmp {
			maxAmp = b.Amplitude
		}
	}
	snr := core.Clamp(maxAmp/noise*snrScale, minDynamicSNR, maxDynamicSNR)

	res := 1.0
	if len(bins) > 1 {
		if d := bins[1].Frequency - bins[0].Frequency; d != 0 && !math.IsNaN(d) {
			res = d
		}
	}
	tol := math.Max(2*res, math.Min(maxTolerance, 4*res))

	return Parameters{NoiseFloor: noise, SNR: snr, Tolerance: tol}
}

// Match returns up to MaxNotes unsuppressed candidates in descending
// confidence. Equal confidences keep catalogue order.
func (m *Matcher) Match(bins []core.Bin) []Candidate {
	p := m.Parameters(bins)
	peaks := detectPeaks(bins, p.NoiseFloor*p.SNR)

	candidates := make([]Candidate, 0)
	for _, peak := range peaks {
		for _, note := range catalogue {
			diff := math.Abs(note.Frequency - peak.Frequency)
			if diff > p.Tolerance {
				continue
			}

			harmonics := findHarmonics(note.Frequency, peaks, p)
			strength := 0.0
			for _, h := range harmonics {
				if hp, ok := firstWithin(peaks, h, p.Tolerance); ok {
					strength += hp.Amplitude / peak.Amplitude
				}
			}

			candidates = append(candidates, Candidate{
				Note:       note,
				Confidence: (peak.Amplitude / p.NoiseFloor) * (1 - diff/p.Tolerance) * (1 + strength*harmonicBoost),
				Harmonics:  harmonics,
			})
		}
	}

	byConfidence(candidates)
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if isHarmonic(candidates[j].Frequency, candidates[i].Frequency, p.Tolerance) {
				candidates[i].Confidence += candidates[j].Confidence * harmonicCredit
				candidates[j].Suppressed = true
			}
		}
	}

	out := candidates[:0]
	for _, c := range candidates {
		if !c.Suppressed {
			out = append(out, c)
		}
	}
	byConfidence(out)
	if len(out) > m.maxNotes {
		out = out[:m.maxNotes]
	}
	return out
}

func byConfidence(c []Candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Confidence > c[j].Confidence
	})
}

// detectPeaks keeps bins above threshold that are strictly louder than both
// neighbours. Missing neighbours at the edges count as silence.
func detectPeaks(bins []core.Bin, threshold float64) []core.Bin {
	var out []core.Bin
	for i, b := range bins {
		if b.Amplitude <= threshold {
			continue
		}
		prev, next := 0.0, 0.0
		if i > 0 {
			prev = bins[i-1].Amplitude
		}
		if i < len(bins)-1 {
			next = bins[i+1].Amplitude
		}
		if b.Amplitude > prev && b.Amplitude > next {
			out = append(out, b)
		}
	}
	return out
}

// findHarmonics returns the peaks matching harmonics 2..5 of f. The window
// widens and the amplitude requirement relaxes with the harmonic number.
func findHarmonics(f float64, peaks []core.Bin, p Parameters) []float64 {
	out := make([]float64, 0, maxHarmonic-1)
	for n := 2; n <= maxHarmonic; n++ {
		expected := f * float64(n)
		window := p.Tolerance * float64(n) / 2
		minAmp := p.NoiseFloor * (p.SNR / float64(n))

		for _, pk := range peaks {
			if math.Abs(pk.Frequency-expected) <= window && pk.Amplitude >= minAmp {
				out = append(out, pk.Frequency)
				break
			}
		}
	}
	return out
}

func firstWithin(peaks []core.Bin, f, tol float64) (core.Bin, bool) {
	for _, pk := range peaks {
		if math.Abs(pk.Frequency-f) <= tol {
			return pk, true
		}
	}
	return core.Bin{}, false
}

// isHarmonic reports whether f1 sits within tol of an integer multiple (>1) of f2.
func isHarmonic(f1, f2, tol float64) bool {
	ratio := f1 / f2
	nearest := math.Floor(ratio + 0.5)
	return math.Abs(ratio-nearest) < tol/f2 && nearest > 1
}
