package bands

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/fft"
	"golang.org/x/sync/errgroup"
)

// BandAnalysis is the energy history and trend of one band.
type BandAnalysis struct {
	Name     string    `json:"name" yaml:"name"`
	Energies []float64 `json:"energies" yaml:"energies"`
	Trend    Trend     `json:"trend" yaml:"trend"`
}

// AverageEnergy returns the mean of the finite energies, or 0 when there are none.
func (a BandAnalysis) AverageEnergy() float64 {
	sum, n := 0.0, 0
	for _, e := range a.Energies {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			continue
		}
		sum += e
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Analyze computes the spectrum of every window, tracks the energy of each
// band across the windows and classifies its trend with threshold. Spectra
// are computed concurrently; results keep window and band order.
//
// The context only stops work that has not started yet; a cancelled context
// returns its error and no analysis.
func Analyze(ctx context.Context, windows [][]core.Point, sampleRate float64, bands []Band, threshold float64) ([]BandAnalysis, error) {
	frames, err := Spectra(ctx, windows, sampleRate)
	if err != nil {
		return nil, err
	}

	out := make([]BandAnalysis, len(bands))
	for i, b := range bands {
		energies := TrackBand(frames, b)
		out[i] = BandAnalysis{
			Name:     b.Name,
			Energies: energies,
			Trend:    DetectTrend(energies, threshold),
		}
	}
	return out, nil
}

// Spectra computes the magnitude spectrum of each window concurrently.
func Spectra(ctx context.Context, windows [][]core.Point, sampleRate float64) ([][]core.Bin, error) {
	frames := make([][]core.Bin, len(windows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range windows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = fft.Compute(w, sampleRate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("band spectra: %w", err)
	}
	return frames, nil
}

// SplitWindows cuts series into consecutive windows of size points starting
// every hop points. Only complete windows are returned; they share memory
// with series. hop <= 0 uses size, size <= 0 returns nil.
func SplitWindows(series []core.Point, size, hop int) [][]core.Point {
	if size <= 0 {
		return nil
	}
	if hop <= 0 {
		hop = size
	}

	var out [][]core.Point
	for start := 0; start+size <= len(series); start += hop {
		out = append(out, series[start:start+size:start+size])
	}
	return out
}
