package core

import "math"

// dBOffset keeps the dB conversion of silent bins finite.
const dBOffset = 1e-15

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// DisplayDB converts a linear ratio to dB for tables, offsetting by 1e-15 so
// that zero maps to -300 dB instead of -Inf.
func DisplayDB(linear float64) float64 {
	return 20 * math.Log10(linear+dBOffset)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
