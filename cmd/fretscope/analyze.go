package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/signal"
	"github.com/cwbudde/algo-fretboard/dsp/spectrum"
	"github.com/cwbudde/algo-fretboard/dsp/window"
	"github.com/cwbudde/algo-fretboard/internal/worker"
	"github.com/cwbudde/algo-fretboard/measure/guitar"
	"github.com/cwbudde/algo-fretboard/measure/peaks"
	"github.com/cwbudde/algo-fretboard/stats/frequency"
	timestats "github.com/cwbudde/algo-fretboard/stats/time"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errAbandoned = errors.New("spectrum request abandoned")

type peakRow struct {
	Frequency float64   `json:"frequency" yaml:"frequency"`
	Amplitude float64   `json:"amplitude" yaml:"amplitude"`
	LevelDB   float64   `json:"levelDb" yaml:"level_db"`
	SNR       float64   `json:"snr" yaml:"snr"`
	SNRDB     float64   `json:"snrDb" yaml:"snr_db"`
	Harmonics []float64 `json:"harmonics" yaml:"harmonics"`
}

type analyzeReport struct {
	Source     string             `json:"source" yaml:"source"`
	SampleRate float64            `json:"sampleRate" yaml:"sample_rate"`
	Points     int                `json:"points" yaml:"points"`
	Bins       int                `json:"bins" yaml:"bins"`
	Window     string             `json:"window" yaml:"window"`
	WindowGain float64            `json:"windowGain" yaml:"window_gain"`
	Level      timestats.Level    `json:"level" yaml:"level"`
	Shape      frequency.Shape    `json:"shape" yaml:"shape"`
	Stats      peaks.Stats        `json:"stats" yaml:"stats"`
	Peaks      []peakRow          `json:"peaks" yaml:"peaks"`
	Matcher    guitar.Parameters  `json:"matcher" yaml:"matcher"`
	Notes      []guitar.Candidate `json:"notes" yaml:"notes"`
	Spectrum   []core.Point       `json:"spectrum,omitempty" yaml:"spectrum,omitempty"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank spectral peaks and matching guitar notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := src.load(a)
			if err != nil {
				return err
			}
			report, err := a.analyze(cmd, in)
			if err != nil {
				return err
			}
			return a.write(report, report.table)
		},
	}
	src.register(cmd)

	f := cmd.Flags()
	f.String("window", "hann", "taper window (none, hann, hamming, blackman)")
	f.Int("smooth", 0, "moving average half width in samples (0 disables)")
	f.Float64("min-snr", peaks.DefaultMinSNR, "minimum peak SNR (linear)")
	f.Float64("min-freq", 20, "lowest peak frequency in Hz")
	f.Float64("max-freq", peaks.DefaultMaxFrequency, "highest peak frequency in Hz")
	f.Int("max-peaks", 50, "maximum number of peaks")
	f.Int("max-notes", guitar.DefaultMaxNotes, "maximum number of note candidates")
	f.Int("workers", 2, "spectrum worker goroutines")
	f.Bool("spectrum", false, "include the magnitude spectrum as (frequency, amplitude) points")
	return cmd
}

// condition smooths and tapers series according to the configuration.
func (a *app) condition(series []core.Point) ([]core.Point, window.Type, error) {
	wt, err := window.ParseType(a.cfg.Analysis.Window)
	if err != nil {
		return nil, 0, err
	}
	if a.cfg.Analysis.Smooth > 0 {
		series = signal.MovingAverage(series, a.cfg.Analysis.Smooth)
	}
	if wt == window.TypeHann {
		return window.ApplyHanning(series), wt, nil
	}
	return window.ApplySeries(wt, series), wt, nil
}

func (a *app) analyze(cmd *cobra.Command, in source) (analyzeReport, error) {
	series, wt, err := a.condition(in.Series)
	if err != nil {
		return analyzeReport{}, err
	}

	pool := worker.New(
		worker.WithWorkers(a.cfg.Worker.Workers),
		worker.WithQueueSize(a.cfg.Worker.QueueSize),
		worker.WithLogger(a.logger.Named("worker")),
	)
	defer pool.Close()

	out, err := pool.Submit(cmd.Context(), worker.Request{
		Data:       series,
		SampleRate: in.SampleRate,
		MinFreq:    0,
		MaxFreq:    in.SampleRate,
	})
	if err != nil {
		return analyzeReport{}, fmt.Errorf("submit spectrum request: %w", err)
	}
	resp, ok := <-out
	if !ok {
		return analyzeReport{}, errAbandoned
	}
	bins := resp.Amplitudes

	res := peaks.NewAnalyzer(peaks.WithOptions(a.cfg.Analysis.PeakOptions())).Analyze(bins)
	matcher := guitar.NewMatcher(guitar.WithMaxNotes(a.cfg.Notes.MaxNotes))

	// Empty input has no window gain.
	gain, _ := window.CoherentGain(window.Generate(wt, len(series)))

	report := analyzeReport{
		Source:     in.Name,
		SampleRate: in.SampleRate,
		Points:     len(series),
		Bins:       len(bins),
		Window:     wt.String(),
		WindowGain: gain,
		Level:      timestats.Describe(in.Series),
		Shape:      frequency.Describe(bins),
		Stats:      res.Stats,
		Peaks:      make([]peakRow, len(res.Peaks)),
		Matcher:    matcher.Parameters(bins),
		Notes:      matcher.Match(bins),
	}
	if withSpectrum, _ := cmd.Flags().GetBool("spectrum"); withSpectrum {
		report.Spectrum = spectrum.ToPoints(bins)
	}
	for i, p := range res.Peaks {
		report.Peaks[i] = peakRow{
			Frequency: p.Frequency,
			Amplitude: p.Amplitude,
			LevelDB:   p.LevelDB(),
			SNR:       p.SNR,
			SNRDB:     p.SNRDB(),
			Harmonics: p.Harmonics,
		}
	}

	a.logger.Info("analysis complete",
		zap.String("source", in.Name),
		zap.Int("bins", len(bins)),
		zap.Int("peaks", len(report.Peaks)),
		zap.Int("notes", len(report.Notes)))
	return report, nil
}

func (r analyzeReport) table(t *tableWriter) {
	t.printf("Source:\t%s\n", r.Source)
	t.printf("Sample rate:\t%.0f Hz\n", r.SampleRate)
	t.printf("Points / bins:\t%d / %d\n", r.Points, r.Bins)
	t.printf("Window:\t%s (gain %.3f)\n", r.Window, r.WindowGain)
	t.printf("Level rms/peak:\t%.1f / %.1f dB (crest %.2f)\n", r.Level.RMSDB(), r.Level.PeakDB(), r.Level.CrestFactor)
	t.printf("Centroid / rolloff:\t%.1f / %.1f Hz\n", r.Shape.Centroid, r.Shape.Rolloff)
	t.printf("Noise floor:\t%.3g (%.1f dB)\n", r.Stats.NoiseFloor, core.DisplayDB(r.Stats.NoiseFloor))
	t.printf("Amplitude max/median/min:\t%.3g / %.3g / %.3g\n",
		r.Stats.MaxAmplitude, r.Stats.MedianAmplitude, r.Stats.MinAmplitude)
	t.flush()

	t.printf("\nFREQ (Hz)\tAMPLITUDE\tLEVEL (dB)\tSNR (dB)\tHARMONICS\n")
	for _, p := range r.Peaks {
		t.printf("%.2f\t%.4g\t%.1f\t%.1f\t%v\n", p.Frequency, p.Amplitude, p.LevelDB, p.SNRDB, p.Harmonics)
	}
	t.flush()

	t.printf("\nMatcher:\tnoise %.4g, snr %.1f, tolerance %.1f Hz\n",
		r.Matcher.NoiseFloor, r.Matcher.SNR, r.Matcher.Tolerance)
	t.printf("STRING\tFRET\tNOTE\tFREQ (Hz)\tCONFIDENCE\tHARMONICS\n")
	for _, n := range r.Notes {
		t.printf("%d\t%d\t%s\t%.0f\t%.1fx\t%d\n", n.String, n.Fret, n.Name, n.Frequency, n.Confidence, len(n.Harmonics))
	}
	if len(r.Notes) == 0 {
		t.printf("no guitar notes detected\n")
	}
	t.flush()
}
