package safe

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-safe/dsp/core"
)

// ErrOutOfRange reports a parameter set that violates its sampling contract.
var ErrOutOfRange = errors.New("safe: parameter out of range")

// WeightTolerance bounds the deviation of the general weight sum from 1.
const WeightTolerance = 1e-12

// CardiacTau3 is the fixed cardiac third time constant in seconds.
const CardiacTau3 = 0.001

// ValidateGeneral checks drawn fields against their ranges and that the
// weights of each channel sum to 1.
func ValidateGeneral(s Set) error {
	if err := checkRanges(s, generalRanges); err != nil {
		return fmt.Errorf("general: %w", err)
	}
	for ch, sum := range s.WeightSums() {
		if !core.NearlyEqual(sum, 1, WeightTolerance) {
			return fmt.Errorf("general: %w: channel %d weights sum to %v", ErrOutOfRange, ch, sum)
		}
	}
	return nil
}

// ValidateCardiac checks drawn fields against their ranges, the fixed Tau3
// and the zero A3 weights.
func ValidateCardiac(s Set) error {
	if err := checkRanges(s, cardiacRanges); err != nil {
		return fmt.Errorf("cardiac: %w", err)
	}
	for ch := range Channels {
		if s.Tau3[ch] != CardiacTau3 {
			return fmt.Errorf("cardiac: %w: channel %d tau3 = %v", ErrOutOfRange, ch, s.Tau3[ch])
		}
		if s.A3[ch] != 0 {
			return fmt.Errorf("cardiac: %w: channel %d a3 = %v", ErrOutOfRange, ch, s.A3[ch])
		}
	}
	return nil
}

// ValidatePair validates both sets and the cardiac A2 = 1 - general A1
// coupling between them.
func ValidatePair(general, cardiac Set) error {
	if err := ValidateGeneral(general); err != nil {
		return err
	}
	if err := ValidateCardiac(cardiac); err != nil {
		return err
	}
	for ch := range Channels {
		if want := 1 - general.A1[ch]; cardiac.A2[ch] != want {
			return fmt.Errorf("cardiac: %w: channel %d a2 = %v, want 1 - general a1 = %v",
				ErrOutOfRange, ch, cardiac.A2[ch], want)
		}
	}
	return nil
}

func checkRanges(s Set, ranges map[string]Range) error {
	for _, key := range Keys {
		r, ok := ranges[key]
		if !ok {
			continue
		}
		f, _ := s.field(key)
		for ch, v := range f {
			if !r.Contains(v) {
				return fmt.Errorf("%w: %s[%d] = %v not in [%v, %v]", ErrOutOfRange, key, ch, v, r.Min, r.Max)
			}
		}
	}
	return nil
}
