package onepole

import (
	"errors"
	"math"
	"testing"
)

func TestCutoffHz(t *testing.T) {
	fc, err := CutoffHz(1 / (2 * math.Pi))
	if err != nil {
		t.Fatalf("CutoffHz() error = %v", err)
	}
	if math.Abs(fc-1) > 1e-12 {
		t.Fatalf("CutoffHz() = %v, want 1", fc)
	}
	for _, tau := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := CutoffHz(tau); !errors.Is(err, ErrDomain) {
			t.Fatalf("CutoffHz(%v) error = %v, want ErrDomain", tau, err)
		}
	}
}

func TestMagnitudeAt(t *testing.T) {
	dc, err := MagnitudeAt(0.01, 1e-3, 0)
	if err != nil {
		t.Fatalf("MagnitudeAt() error = %v", err)
	}
	if math.Abs(dc-1) > 1e-12 {
		t.Fatalf("DC gain = %v, want 1", dc)
	}

	// With dt much smaller than tau the discrete filter follows the analog
	// prototype, so the corner sits near -3 dB.
	const tau, dt = 0.01, 1e-6
	fc, _ := CutoffHz(tau)
	g, err := MagnitudeAt(tau, dt, fc)
	if err != nil {
		t.Fatalf("MagnitudeAt() error = %v", err)
	}
	if math.Abs(g-1/math.Sqrt2) > 1e-3 {
		t.Fatalf("gain at cutoff = %v, want ~%v", g, 1/math.Sqrt2)
	}
}

func TestResponseMatchesAnalytic(t *testing.T) {
	const tau, dt, n = 1e-3, 1e-3, 256
	mag, err := Response(tau, dt, n)
	if err != nil {
		t.Fatalf("Response() error = %v", err)
	}
	if len(mag) != n/2+1 {
		t.Fatalf("len = %d, want %d", len(mag), n/2+1)
	}
	for k, got := range mag {
		want, err := MagnitudeAt(tau, dt, BinFrequency(k, n, dt))
		if err != nil {
			t.Fatalf("MagnitudeAt() error = %v", err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got, want)
		}
	}
	// alpha = 0.5: Nyquist gain is alpha/(2-alpha) = 1/3.
	if math.Abs(mag[n/2]-1.0/3) > 1e-9 {
		t.Fatalf("Nyquist gain = %v, want 1/3", mag[n/2])
	}
}

func TestResponseDecreasing(t *testing.T) {
	mag, err := Response(0.004, 1e-3, 64)
	if err != nil {
		t.Fatalf("Response() error = %v", err)
	}
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[k-1]+1e-12 {
			t.Fatalf("bin %d: magnitude rose from %v to %v", k, mag[k-1], mag[k])
		}
	}
}

func TestResponseInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 3, 100} {
		if _, err := Response(0.01, 1e-3, n); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Response(n=%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
	if _, err := Response(-1e-3, 1e-3, 8); !errors.Is(err, ErrDomain) {
		t.Fatalf("Response() error = %v, want ErrDomain", err)
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(4, 16, 1e-3); math.Abs(got-250) > 1e-9 {
		t.Fatalf("BinFrequency() = %v, want 250", got)
	}
	if got := BinFrequency(1, 0, 1e-3); got != 0 {
		t.Fatalf("BinFrequency() = %v, want 0 for n=0", got)
	}
}
