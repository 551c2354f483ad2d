package onepole

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// CutoffHz returns the -3 dB corner frequency 1/(2*pi*tau) of the analog
// prototype. tau must be positive.
func CutoffHz(tau float64) (float64, error) {
	if !(tau > 0) || math.IsInf(tau, 0) {
		return 0, fmt.Errorf("%w: cutoff needs tau > 0, got %g", ErrDomain, tau)
	}
	return 1 / (2 * math.Pi * tau), nil
}

// MagnitudeAt returns the exact magnitude response |H(e^jw)| of the discrete
// filter at freqHz, with w = 2*pi*freqHz*dt.
func MagnitudeAt(tau, dt, freqHz float64) (float64, error) {
	alpha, err := Alpha(tau, dt)
	if err != nil {
		return 0, err
	}

	w := 2 * math.Pi * freqHz * dt
	den := 1 - complex(1-alpha, 0)*cmplx.Exp(complex(0, -w))
	if den == 0 {
		return math.Inf(1), nil
	}
	return alpha / cmplx.Abs(den), nil
}

// Response returns the magnitude spectrum of the first n samples of the
// filter's impulse response, bins 0..n/2. Bin k corresponds to k/(n*dt) Hz.
// n must be a power of two and at least 2.
func Response(tau, dt float64, n int) ([]float64, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	impulse := make([]float64, n)
	impulse[0] = 1
	h, err := Filter(impulse, tau, dt)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("onepole: fft plan: %w", err)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("onepole: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// BinFrequency returns the frequency in Hz of bin k of an n-point [Response].
func BinFrequency(k, n int, dt float64) float64 {
	if n <= 0 || dt <= 0 {
		return 0
	}
	return float64(k) / (float64(n) * dt)
}
