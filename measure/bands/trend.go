package bands

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Trend classifies the development of a band's energy.
type Trend int

const (
	TrendStable Trend = iota
	TrendIncreasing
	TrendDecreasing
)

// DefaultTrendThreshold is the relative change below which energy counts as stable.
const DefaultTrendThreshold = 0.1

// trendSpan is the number of frames averaged on each side of the comparison.
const trendSpan = 3

func (t Trend) String() string {
	switch t {
	case TrendIncreasing:
		return "increasing"
	case TrendDecreasing:
		return "decreasing"
	default:
		return "stable"
	}
}

// MarshalText encodes the trend by name.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a trend name.
func (t *Trend) UnmarshalText(text []byte) error {
	v, err := ParseTrend(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTrend parses the names produced by Trend.String.
func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stable":
		return TrendStable, nil
	case "increasing":
		return TrendIncreasing, nil
	case "decreasing":
		return TrendDecreasing, nil
	default:
		return TrendStable, fmt.Errorf("unknown trend: %q", s)
	}
}

// DetectTrend compares the mean of the last three energies with the mean of
// the (up to) three energies preceding them. Both sums are divided by three
// even when fewer values exist. The relative change is classified as stable
// when its magnitude is below threshold, otherwise by its sign.
//
// Fewer than two energies are stable. With fewer than six the previous window
// is short or empty, which can make the change infinite (classified by sign)
// or NaN. A NaN change is neither below threshold nor positive and therefore
// reports TrendDecreasing; NaN energies propagate the same way.
func DetectTrend(energies []float64, threshold float64) Trend {
	n := len(energies)
	if n < 2 {
		return TrendStable
	}

	recent := floats.Sum(energies[max(0, n-trendSpan):]) / trendSpan
	previous := floats.Sum(energies[max(0, n-2*trendSpan):max(0, n-trendSpan)]) / trendSpan

	change := (recent - previous) / previous
	if math.Abs(change) < threshold {
		return TrendStable
	}
	if change > 0 {
		return TrendIncreasing
	}
	return TrendDecreasing
}
