// Package peaks finds significant local maxima in magnitude spectra, links
// them into harmonic series and ranks them.
//
// Find is the raw detector (spectrum order), FindHarmonics the harmonic
// matcher and Analyze the orchestrator that ranks, prunes and annotates the
// detector output.
package peaks
