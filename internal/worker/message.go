package worker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/dsp/fft"
	"github.com/cwbudde/algo-fretboard/dsp/spectrum"
)

// Request asks for the band-limited spectrum of a time series.
type Request struct {
	Data       []core.Point `json:"data"`
	SampleRate float64      `json:"sampleRate"`
	MinFreq    float64      `json:"minFreq"`
	MaxFreq    float64      `json:"maxFreq"`
}

// Response carries the filtered spectrum and echoes the requested range.
type Response struct {
	Amplitudes  []core.Bin `json:"amplitudes"`
	Frequencies []float64  `json:"frequencies"`
	MinFreq     float64    `json:"minFreq"`
	MaxFreq     float64    `json:"maxFreq"`
}

// Handle computes the response for req synchronously.
func Handle(req Request) Response {
	bins := fft.Compute(req.Data, req.SampleRate)
	f := spectrum.Filter(bins, req.SampleRate, req.MinFreq, req.MaxFreq)
	return Response{
		Amplitudes:  f.Amplitudes,
		Frequencies: f.Frequencies,
		MinFreq:     req.MinFreq,
		MaxFreq:     req.MaxFreq,
	}
}

// DecodeRequest reads one JSON request from r.
func DecodeRequest(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	if req.SampleRate <= 0 {
		return Request{}, fmt.Errorf("request sample rate must be > 0: %v", req.SampleRate)
	}
	return req, nil
}

// EncodeResponse writes resp as JSON to w.
func EncodeResponse(w io.Writer, resp Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
