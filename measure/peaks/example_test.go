package peaks_test

import (
	"fmt"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/measure/peaks"
)

func ExampleAnalyze() {
	bins := []core.Bin{
		{Frequency: 100, Amplitude: 0.001},
		{Frequency: 440, Amplitude: 1.0},
		{Frequency: 600, Amplitude: 0.001},
		{Frequency: 880, Amplitude: 0.5},
		{Frequency: 1000, Amplitude: 0.001},
		{Frequency: 1320, Amplitude: 0.3},
		{Frequency: 1500, Amplitude: 0.001},
	}

	res := peaks.Analyze(bins, peaks.WithMaxPeaks(10))
	for _, p := range res.Peaks {
		fmt.Printf("%.0f Hz snr=%.0f harmonics=%v\n", p.Frequency, p.SNR, p.Harmonics)
	}
	// Output:
	// 440 Hz snr=1000 harmonics=[880 1320]
	// 880 Hz snr=500 harmonics=[]
	// 1320 Hz snr=300 harmonics=[]
}

func ExampleFindHarmonics() {
	candidates := []peaks.Peak{
		{Frequency: 440, Amplitude: 1.0, SNR: 10},
		{Frequency: 880, Amplitude: 0.5, SNR: 5},
		{Frequency: 1320, Amplitude: 0.3, SNR: 3},
	}
	fmt.Println(peaks.FindHarmonics(440, candidates, peaks.DefaultHarmonicTolerance))
	// Output:
	// [880 1320]
}
