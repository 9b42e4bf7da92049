// Package fft turns real-valued time series into magnitude spectra.
//
// Transforms run on algo-fft plans of power-of-two size. Inputs of other
// lengths are zero-padded to the next power of two; the reported bins are
// spaced at sampleRate/paddedLength but the output is truncated to floor(N/2)
// bins of the unpadded length N. Padding interpolates the spectrum, it does
// not add resolution: the true resolution of an N-sample capture stays
// sampleRate/N.
package fft
