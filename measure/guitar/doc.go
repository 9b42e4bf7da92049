// Package guitar maps magnitude spectra onto the notes of a standard-tuned
// six string guitar.
//
// The catalogue holds the first thirteen positions of every string. A
// Matcher detects spectral peaks, scores every catalogue note lying within
// a resolution-dependent tolerance of a peak, rewards notes whose overtones
// are present and folds candidates that are harmonics of a stronger one
// into it:
//
//	m := guitar.NewMatcher(guitar.WithMaxNotes(3))
//	for _, c := range m.Match(bins) {
//		fmt.Printf("string %d fret %d %s (%.1fx)\n", c.String, c.Fret, c.Name, c.Confidence)
//	}
package guitar
