package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fretboard/dsp/core"
)

// Plan is a reusable forward transform of a fixed power-of-two size.
// A Plan is not safe for concurrent use.
type Plan struct {
	n       int
	plan    *algofft.Plan[complex128]
	scratch []complex128
}

// NewPlan prepares a forward transform of length n.
func NewPlan(n int) (*Plan, error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fft size must be a power of two > 0: %d", n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft plan %d: %w", n, err)
	}

	return &Plan{n: n, plan: plan}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int { return p.n }

// Forward computes the forward DFT of src into dst.
func (p *Plan) Forward(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("fft buffer length must be %d: dst %d, src %d", p.n, len(dst), len(src))
	}
	return p.plan.Forward(dst, src)
}

// Transform computes the forward DFT of data in place.
func (p *Plan) Transform(data []complex128) error {
	if p.scratch == nil {
		p.scratch = make([]complex128, p.n)
	}
	if err := p.Forward(p.scratch, data); err != nil {
		return err
	}
	copy(data, p.scratch)
	return nil
}
