// Package onepole provides a first-order exponential low-pass filter
// (single-pole recursive smoother) for uniformly sampled signals.
//
// The filter is parameterized by a time constant tau and a sample interval
// dt, both in seconds. Its blending coefficient is
//
//	alpha = dt / (tau + dt)
//
// and the output recursion, starting from a zero state, is
//
//	y[0] = alpha*x[0]
//	y[i] = alpha*x[i] + (1-alpha)*y[i-1]
//
// Degenerate settings are well defined: tau = 0 gives alpha = 1 and passes
// the input through unchanged, dt = 0 gives alpha = 0 and an all-zero
// output. tau + dt = 0 is rejected with [ErrDomain].
//
// # Usage
//
//	y, err := onepole.Filter(x, 0.01, 1e-4)
//
// For streaming input use a [Smoother], which carries the filter state
// across blocks:
//
//	s, err := onepole.New(0.01, core.WithSampleRate(10000))
//	s.ProcessInPlace(block)
//
// [Response] and [MagnitudeAt] describe the filter in the frequency domain.
package onepole
