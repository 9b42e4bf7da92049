package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
	if _, err := g1.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestPluckedString(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	out, err := g.PluckedString(196, 0.5)
	if err != nil {
		t.Fatalf("PluckedString() error = %v", err)
	}
	if len(out) != 4000 {
		t.Fatalf("len = %d, want 4000", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("attack should start at 0, got %v", out[0])
	}

	peak := 0.0
	for _, v := range out {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 || peak > 1 {
		t.Fatalf("peak = %v, want within (0, 1]", peak)
	}

	if _, err := g.PluckedString(0, 1); err == nil {
		t.Fatal("expected error for zero frequency")
	}
	if _, err := g.PluckedString(196, 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestSeries(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(4))
	s := g.Series([]float64{1, 2})
	if s[1].X != 0.25 || s[1].Y != 2 {
		t.Fatalf("Series = %v", s)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	silent, err := Normalize([]float64{0, 0}, 1)
	if err != nil || silent[0] != 0 {
		t.Fatalf("Normalize(silence) = %v, %v", silent, err)
	}
}
