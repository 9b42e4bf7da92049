package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 3, min: 2, max: 5, expected: 3},
		{name: "below", value: 0.6, min: 2, max: 5, expected: 2},
		{name: "above", value: 30, min: 2, max: 5, expected: 5},
		{name: "swapped", value: 30, min: 5, max: 2, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDisplayDB(t *testing.T) {
	if got := DisplayDB(0.1); math.Abs(got+20) > 1e-10 {
		t.Fatalf("DisplayDB(0.1) = %v, want -20", got)
	}
	if got := DisplayDB(0); math.Abs(got+300) > 1e-9 {
		t.Fatalf("DisplayDB(0) = %v, want -300", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {8, 8}, {17, 32}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if IsPowerOfTwo(0) || IsPowerOfTwo(12) || !IsPowerOfTwo(16) {
		t.Fatal("IsPowerOfTwo mismatch")
	}
}
