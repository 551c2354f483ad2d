package onepole

import (
	"fmt"

	"github.com/cwbudde/algo-safe/dsp/core"
)

// Smoother is a stateful exponential low-pass filter for streaming input.
// Processing a signal from a reset state produces the same output as
// [Filter] with the same tau and sample interval.
//
// A Smoother is not safe for concurrent use.
type Smoother struct {
	cfg   core.ProcessorConfig
	tau   float64
	alpha float64
	beta  float64
	y     float64
}

// New creates a Smoother with time constant tau in seconds. The sample
// interval defaults to [core.DefaultSampleInterval] and can be changed with
// [core.WithSampleInterval] or [core.WithSampleRate].
func New(tau float64, opts ...core.ProcessorOption) (*Smoother, error) {
	s := &Smoother{cfg: core.ApplyProcessorOptions(opts...)}
	if err := s.SetTau(tau); err != nil {
		return nil, err
	}
	return s, nil
}

// SetTau changes the time constant and keeps the current state.
func (s *Smoother) SetTau(tau float64) error {
	alpha, err := Alpha(tau, s.cfg.SampleInterval)
	if err != nil {
		return fmt.Errorf("onepole: set tau: %w", err)
	}
	s.tau = tau
	s.alpha = alpha
	s.beta = 1 - alpha
	return nil
}

// Tau returns the time constant in seconds.
func (s *Smoother) Tau() float64 { return s.tau }

// Alpha returns the current blending coefficient.
func (s *Smoother) Alpha() float64 { return s.alpha }

// SampleInterval returns the configured sample interval in seconds.
func (s *Smoother) SampleInterval() float64 { return s.cfg.SampleInterval }

// State returns the previous output sample.
func (s *Smoother) State() float64 { return s.y }

// SetState overrides the previous output sample, e.g. to start from a known
// steady state instead of zero.
func (s *Smoother) SetState(y float64) { s.y = y }

// Reset clears the filter state.
func (s *Smoother) Reset() { s.y = 0 }

// ProcessSample filters one sample.
func (s *Smoother) ProcessSample(x float64) float64 {
	s.y = s.alpha*x + s.beta*s.y
	return s.y
}

// ProcessBlock filters src into dst. Both slices must have equal length;
// dst and src may alias.
func (s *Smoother) ProcessBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("onepole: ProcessBlock length mismatch")
	}
	y := s.y
	for i, x := range src {
		y = s.alpha*x + s.beta*y
		dst[i] = y
	}
	s.y = y
}

// ProcessInPlace filters buf in place.
func (s *Smoother) ProcessInPlace(buf []float64) {
	s.ProcessBlock(buf, buf)
}
