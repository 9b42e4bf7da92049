package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/signal"
	"github.com/cwbudde/algo-fretboard/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sourceFlags struct {
	input    string
	note     float64
	duration float64
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.input, "input", "i", "", "JSON time series file ({\"data\":[...],\"sampleRate\":...})")
	f.Float64Var(&s.note, "note", 0, "synthesize a plucked string at this frequency in Hz")
	f.Float64Var(&s.duration, "duration", 1, "length of the synthesized tone in seconds")
	cmd.MarkFlagsMutuallyExclusive("input", "note")
	cmd.MarkFlagsOneRequired("input", "note")
}

type source struct {
	Name       string
	Series     []core.Point
	SampleRate float64
}

func (s *sourceFlags) load(a *app) (source, error) {
	if s.input != "" {
		f, err := os.Open(s.input)
		if err != nil {
			return source{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		req, err := worker.DecodeRequest(f)
		if err != nil {
			return source{}, fmt.Errorf("%s: %w", s.input, err)
		}
		a.logger.Debug("input loaded",
			zap.String("file", s.input),
			zap.Int("points", len(req.Data)),
			zap.Float64("sample_rate", req.SampleRate))
		return source{Name: s.input, Series: req.Data, SampleRate: req.SampleRate}, nil
	}

	g := signal.NewGenerator(core.WithSampleRate(a.cfg.SampleRate))
	samples, err := g.PluckedString(s.note, s.duration)
	if err != nil {
		return source{}, err
	}
	return source{
		Name:       fmt.Sprintf("plucked %.2f Hz", s.note),
		Series:     g.Series(samples),
		SampleRate: g.Config().SampleRate,
	}, nil
}
