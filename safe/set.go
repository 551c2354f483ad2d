package safe

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Channels is the number of independent parameter slots (electrodes) per set.
const Channels = 3

// Parameter keys as used by [Set.Map] and [Set.Get].
const (
	KeyTau1      = "tau1"
	KeyTau2      = "tau2"
	KeyTau3      = "tau3"
	KeyA1        = "a1"
	KeyA2        = "a2"
	KeyA3        = "a3"
	KeyStimLimit = "stim_limit"
	KeyGScale    = "g_scale"
)

// Keys lists all parameter keys in draw order.
var Keys = []string{KeyTau1, KeyTau2, KeyTau3, KeyA1, KeyA2, KeyA3, KeyStimLimit, KeyGScale}

// Set is one SAFE parameter set. Time constants are in seconds, weights are
// dimensionless, StimLimit is in mA and GScale is a dimensionless gain.
type Set struct {
	Tau1      [Channels]float64
	Tau2      [Channels]float64
	Tau3      [Channels]float64
	A1        [Channels]float64
	A2        [Channels]float64
	A3        [Channels]float64
	StimLimit [Channels]float64
	GScale    [Channels]float64
}

func (s *Set) field(key string) (*[Channels]float64, bool) {
	switch key {
	case KeyTau1:
		return &s.Tau1, true
	case KeyTau2:
		return &s.Tau2, true
	case KeyTau3:
		return &s.Tau3, true
	case KeyA1:
		return &s.A1, true
	case KeyA2:
		return &s.A2, true
	case KeyA3:
		return &s.A3, true
	case KeyStimLimit:
		return &s.StimLimit, true
	case KeyGScale:
		return &s.GScale, true
	default:
		return nil, false
	}
}

// Get returns a copy of the values stored under key.
func (s Set) Get(key string) ([]float64, error) {
	f, ok := s.field(key)
	if !ok {
		return nil, fmt.Errorf("%w: unknown parameter key %q", ErrInvalidArgument, key)
	}
	out := make([]float64, Channels)
	copy(out, f[:])
	return out, nil
}

// Map returns the set as a key to values mapping. The slices are copies.
func (s Set) Map() map[string][]float64 {
	m := make(map[string][]float64, len(Keys))
	for _, k := range Keys {
		f, _ := s.field(k)
		m[k] = append([]float64(nil), f[:]...)
	}
	return m
}

// WeightSums returns A1+A2+A3 for each channel.
func (s Set) WeightSums() [Channels]float64 {
	var sums [Channels]float64
	vecmath.AddBlock(sums[:], s.A1[:], s.A2[:])
	vecmath.AddBlockInPlace(sums[:], s.A3[:])
	return sums
}
