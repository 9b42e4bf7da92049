package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/internal/testutil"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			testutil.RequireFinite(t, w)
			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("coefficient %d not symmetric: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateHannFormula(t *testing.T) {
	const n = 10
	w := Generate(TypeHann, n)
	for i, v := range w {
		want := 0.5 * (1 - math.Cos((2*math.Pi*float64(i))/float64(n-1)))
		if v != want {
			t.Fatalf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for zero length")
	}
	w := Generate(TypeHann, 1)
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
}

func TestApplyHanningTapersEdges(t *testing.T) {
	series := make([]core.Point, 10)
	for i := range series {
		series[i] = core.Point{X: float64(i), Y: 1}
	}

	got := ApplyHanning(series)
	if got[0].Y >= 0.1 || got[9].Y >= 0.1 {
		t.Fatalf("edges not tapered: %v %v", got[0].Y, got[9].Y)
	}
	if got[4].Y < 0.9 {
		t.Fatalf("centre attenuated: %v", got[4].Y)
	}
	for i := range got {
		if got[i].X != series[i].X {
			t.Fatalf("X changed at %d", i)
		}
	}
	if series[0].Y != 1 {
		t.Fatal("input was modified")
	}
}

func TestApplyHanningSinglePoint(t *testing.T) {
	in := []core.Point{{X: 0.5, Y: 0.7}}
	got := ApplyHanning(in)
	if len(got) != 1 || got[0] != in[0] {
		t.Fatalf("ApplyHanning(single) = %v, want %v", got, in)
	}
	if len(ApplyHanning(nil)) != 0 {
		t.Fatal("expected empty output for empty input")
	}
}

func TestApplyMatchesApplySeries(t *testing.T) {
	samples := testutil.DeterministicNoise(9, 1, 33)
	series := core.SeriesFromSamples(samples, 100)

	buf := append([]float64(nil), samples...)
	Apply(TypeBlackman, buf)
	got := ApplySeries(TypeBlackman, series)

	testutil.RequireSliceNearlyEqual(t, core.Samples(got), buf, 1e-15)
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"":         TypeRectangular,
		"none":     TypeRectangular,
		"Hanning":  TypeHann,
		"hann":     TypeHann,
		"hamming":  TypeHamming,
		"blackman": TypeBlackman,
	}
	for name, want := range tests {
		got, err := ParseType(name)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestCoherentGain(t *testing.T) {
	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}

	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0.5},
		{TypeHamming, 0.54},
		{TypeBlackman, 0.42},
	}
	for _, tt := range tests {
		gain, err := CoherentGain(Generate(tt.typ, 1001))
		if err != nil {
			t.Fatalf("%s: %v", tt.typ, err)
		}
		if math.Abs(gain-tt.want) > 1e-3 {
			t.Fatalf("%s coherent gain = %v, want ~%v", tt.typ, gain, tt.want)
		}
	}
}
