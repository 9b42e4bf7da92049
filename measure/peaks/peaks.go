package peaks

import (
	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/spectrum"
)

// Detector defaults used by FindDefault.
const (
	DefaultMinSNR       = 3.0
	DefaultMinFrequency = 2.0
	DefaultMaxFrequency = 20000.0
)

// neighbourhood is the half-width, in bins, of the local-maximum test.
const neighbourhood = 1

// Peak is a detected spectral maximum. SNR is the linear ratio of Amplitude
// to the spectrum noise floor. Harmonics lists matched 2nd..5th harmonic
// frequencies in Hz.
type Peak struct {
	Frequency float64   `json:"frequency" yaml:"frequency"`
	Amplitude float64   `json:"amplitude" yaml:"amplitude"`
	Harmonics []float64 `json:"harmonics" yaml:"harmonics"`
	SNR       float64   `json:"snr" yaml:"snr"`
}

// LevelDB returns the amplitude in dB for display.
func (p Peak) LevelDB() float64 { return core.DisplayDB(p.Amplitude) }

// SNRDB returns the SNR in dB for display.
func (p Peak) SNRDB() float64 { return core.DisplayDB(p.SNR) }

// FindDefault runs Find with DefaultMinSNR, DefaultMinFrequency and
// DefaultMaxFrequency.
func FindDefault(bins []core.Bin) []Peak {
	return Find(bins, DefaultMinSNR, DefaultMinFrequency, DefaultMaxFrequency)
}

// Find returns the bins in [minFreq, maxFreq] whose amplitude is at least
// minSNR times the noise floor and that no direct neighbour exceeds.
//
// The noise floor is estimated over the whole spectrum, before the range is
// applied. Equal neighbours do not disqualify a bin, so a flat top yields
// one peak per bin. Peaks are returned in spectrum order.
func Find(bins []core.Bin, minSNR, minFreq, maxFreq float64) []Peak {
	out := []Peak{}
	if len(bins) == 0 {
		return out
	}

	noiseFloor := spectrum.NoiseFloor(bins)

	for i, b := range bins {
		if b.Frequency < minFreq || b.Frequency > maxFreq {
			continue
		}

		snr := b.Amplitude / noiseFloor
		if snr < minSNR {
			continue
		}

		if !isLocalMax(bins, i) {
			continue
		}

		out = append(out, Peak{
			Frequency: b.Frequency,
			Amplitude: b.Amplitude,
			Harmonics: []float64{},
			SNR:       snr,
		})
	}
	return out
}

func isLocalMax(bins []core.Bin, i int) bool {
	lo := max(0, i-neighbourhood)
	hi := min(len(bins), i+neighbourhood+1)
	for j := lo; j < hi; j++ {
		if j != i && bins[j].Amplitude > bins[i].Amplitude {
			return false
		}
	}
	return true
}
