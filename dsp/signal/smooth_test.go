package signal

import (
	"testing"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

func pointsOf(ys ...float64) []core.Point {
	out := make([]core.Point, len(ys))
	for i, y := range ys {
		out[i] = core.Point{X: float64(i), Y: y}
	}
	return out
}

func TestMovingAverageSmoothsSpike(t *testing.T) {
	in := pointsOf(1, 2, 10, 2, 1)
	out := MovingAverage(in, 1)

	if out[2].Y >= 10 {
		t.Fatalf("spike not smoothed: %v", out[2].Y)
	}
	if out[2].Y != 14.0/3 {
		t.Fatalf("out[2] = %v, want %v", out[2].Y, 14.0/3)
	}
	// Edges average fewer neighbours.
	if out[0].Y != 1.5 {
		t.Fatalf("out[0] = %v, want 1.5", out[0].Y)
	}
	for i := range out {
		if out[i].X != in[i].X {
			t.Fatalf("X changed at %d", i)
		}
	}
}

func TestMovingAverageWholeSeriesWindow(t *testing.T) {
	in := pointsOf(1, 2, 3, 4)
	out := MovingAverage(in, 10)
	for i, p := range out {
		if p.Y != 2.5 {
			t.Fatalf("out[%d] = %v, want 2.5", i, p.Y)
		}
	}
}

func TestMovingAverageZeroWindow(t *testing.T) {
	in := pointsOf(3, 1, 4)
	out := MovingAverage(in, 0)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
	if len(MovingAverage(nil, 3)) != 0 {
		t.Fatal("expected empty output")
	}
}
