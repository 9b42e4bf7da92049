// Package bands tracks spectral energy in named frequency bands over a
// sequence of analysis frames and classifies how that energy develops.
//
// Track reduces each frame to the mean amplitude of the bins whose stored
// frequency lies inside a closed band. A frame without any such bin yields
// NaN; the value is returned as data and flows into DetectTrend unchanged.
//
// DetectTrend compares the mean of the last three energies with the mean of
// the three before them:
//
//	energies := bands.Track(frames, 150, 400)
//	switch bands.DetectTrend(energies, 0.1) {
//	case bands.TrendIncreasing:
//		// the band is getting louder
//	}
//
// Analyze runs the whole chain for a batch of time windows, computing the
// window spectra concurrently.
package bands
