// Package spectrum provides helpers that operate on magnitude spectra.
//
// It covers magnitude extraction from complex bins, band-pass filtering on an
// index-derived frequency grid, noise-floor estimation and conversion between
// spectrum bins and chart points. Degenerate inputs (empty spectra, empty
// ranges) are returned as empty results rather than errors.
package spectrum
