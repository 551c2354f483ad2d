package onepole

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-safe/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by filter construction and processing.
var (
	ErrDomain      = errors.New("onepole: tau + dt must be non-zero and finite")
	ErrInvalidSize = errors.New("onepole: response size must be a power of two >= 2")
)

// Alpha returns the blending coefficient dt / (tau + dt).
func Alpha(tau, dt float64) (float64, error) {
	den := tau + dt
	if den == 0 {
		return 0, fmt.Errorf("%w: tau=%g dt=%g", ErrDomain, tau, dt)
	}

	alpha := dt / den
	if !core.IsFinite(alpha) {
		return 0, fmt.Errorf("%w: tau=%g dt=%g", ErrDomain, tau, dt)
	}

	return alpha, nil
}

// Filter applies the exponential low-pass filter to x and returns a new slice
// of the same length. The input is not modified. An empty input yields an
// empty, non-nil result.
func Filter(x []float64, tau, dt float64) ([]float64, error) {
	alpha, err := Alpha(tau, dt)
	if err != nil {
		return nil, err
	}

	y := make([]float64, len(x))
	if len(x) == 0 {
		return y, nil
	}

	vecmath.ScaleBlock(y, x, alpha)

	beta := 1 - alpha
	for i := 1; i < len(y); i++ {
		y[i] += beta * y[i-1]
	}

	return y, nil
}
