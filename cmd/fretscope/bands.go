package main

import (
	"math"

	"github.com/cwbudde/algo-fretboard/measure/bands"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// energy encodes NaN as null.
type energy float64

func (e energy) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(e)) || math.IsInf(float64(e), 0) {
		return []byte("null"), nil
	}
	return []byte(formatFloat(float64(e))), nil
}

type bandRow struct {
	Name     string      `json:"name" yaml:"name"`
	MinFreq  float64     `json:"minFreq" yaml:"min_freq"`
	MaxFreq  float64     `json:"maxFreq" yaml:"max_freq"`
	Energies []energy    `json:"energies" yaml:"energies"`
	Average  float64     `json:"averageEnergy" yaml:"average_energy"`
	Trend    bands.Trend `json:"trend" yaml:"trend"`
}

type bandsReport struct {
	Source     string    `json:"source" yaml:"source"`
	SampleRate float64   `json:"sampleRate" yaml:"sample_rate"`
	WindowSize int       `json:"windowSize" yaml:"window_size"`
	Hop        int       `json:"hop" yaml:"hop"`
	Windows    int       `json:"windows" yaml:"windows"`
	Bands      []bandRow `json:"bands" yaml:"bands"`
}

func newBandsCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Track band energy and trends over successive windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := src.load(a)
			if err != nil {
				return err
			}
			report, err := a.bands(cmd, in)
			if err != nil {
				return err
			}
			return a.write(report, report.table)
		},
	}
	src.register(cmd)

	f := cmd.Flags()
	f.String("window", "hann", "taper window applied to every analysis window")
	f.Int("window-size", 4410, "analysis window length in samples")
	f.Int("hop", 0, "samples between window starts (0 = window size)")
	f.Float64("threshold", bands.DefaultTrendThreshold, "relative change treated as stable")
	return cmd
}

func (a *app) bands(cmd *cobra.Command, in source) (bandsReport, error) {
	bc := a.cfg.Bands
	hop := bc.Hop
	if hop <= 0 {
		hop = bc.WindowSize
	}

	windows := bands.SplitWindows(in.Series, bc.WindowSize, hop)
	for i, w := range windows {
		tapered, _, err := a.condition(w)
		if err != nil {
			return bandsReport{}, err
		}
		windows[i] = tapered
	}

	defs := bc.BandList()
	analysis, err := bands.Analyze(cmd.Context(), windows, in.SampleRate, defs, bc.TrendThreshold)
	if err != nil {
		return bandsReport{}, err
	}

	report := bandsReport{
		Source:     in.Name,
		SampleRate: in.SampleRate,
		WindowSize: bc.WindowSize,
		Hop:        hop,
		Windows:    len(windows),
		Bands:      make([]bandRow, len(analysis)),
	}
	for i, ba := range analysis {
		row := bandRow{
			Name:     ba.Name,
			MinFreq:  defs[i].MinFreq,
			MaxFreq:  defs[i].MaxFreq,
			Energies: make([]energy, len(ba.Energies)),
			Average:  ba.AverageEnergy(),
			Trend:    ba.Trend,
		}
		for j, e := range ba.Energies {
			row.Energies[j] = energy(e)
		}
		report.Bands[i] = row
	}

	a.logger.Info("band analysis complete",
		zap.String("source", in.Name),
		zap.Int("windows", len(windows)),
		zap.Int("bands", len(defs)))
	return report, nil
}

func (r bandsReport) table(t *tableWriter) {
	t.printf("Source:\t%s\n", r.Source)
	t.printf("Windows:\t%d x %d samples, hop %d\n", r.Windows, r.WindowSize, r.Hop)
	t.flush()

	t.printf("\nBAND\tRANGE (Hz)\tAVERAGE\tTREND\n")
	for _, b := range r.Bands {
		t.printf("%s\t%.0f-%.0f\t%.4g\t%s\n", b.Name, b.MinFreq, b.MaxFreq, b.Average, b.Trend)
	}
	t.flush()
}
