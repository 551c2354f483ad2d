package safe

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidArgument reports a malformed sampler argument such as a negative
// seed, a nil source or an unknown parameter key.
var ErrInvalidArgument = errors.New("safe: invalid argument")

// Range is a closed-open sampling interval [Min, Max).
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max]. The upper bound is
// inclusive so that zero-width ranges contain their single value.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var generalRanges = map[string]Range{
	KeyTau1:      {Min: 0.0005, Max: 0.0010},
	KeyTau2:      {Min: 0.01, Max: 0.02},
	KeyTau3:      {Min: 0.0001, Max: 0.0003},
	KeyA1:        {Min: 0.2, Max: 0.3},
	KeyA2:        {Min: 0.45, Max: 0.55},
	KeyStimLimit: {Min: 20, Max: 40},
	KeyGScale:    {Min: 0.31, Max: 0.35},
}

var cardiacRanges = map[string]Range{
	KeyTau1:      {Min: 0.002, Max: 0.003},
	KeyTau2:      {Min: 0.0015, Max: 0.002},
	KeyTau3:      {Min: 0.001, Max: 0.001},
	KeyA1:        {Min: 0.7, Max: 0.8},
	KeyStimLimit: {Min: 14, Max: 20},
	KeyGScale:    {Min: 0.30, Max: 0.35},
}

// GeneralRange returns the sampling range of a drawn general-model key.
// Derived keys (a3) report false.
func GeneralRange(key string) (Range, bool) {
	r, ok := generalRanges[key]
	return r, ok
}

// CardiacRange returns the sampling range of a drawn cardiac-model key.
// Derived keys (a2, a3) report false.
func CardiacRange(key string) (Range, bool) {
	r, ok := cardiacRanges[key]
	return r, ok
}

// Option configures [Sample].
type Option func(*config) error

type config struct {
	src rand.Source
}

// WithSeed makes sampling reproducible. The seed must be non-negative.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		src, err := NewSource(seed)
		if err != nil {
			return err
		}
		c.src = src
		return nil
	}
}

// WithSource draws from a caller-owned random source. The source advances by
// one value per sampled element; sharing it between goroutines needs
// external synchronization.
func WithSource(src rand.Source) Option {
	return func(c *config) error {
		if src == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidArgument)
		}
		c.src = src
		return nil
	}
}

// NewSource returns the PCG stream used for a given seed.
func NewSource(seed int64) (*rand.PCG, error) {
	if seed < 0 {
		return nil, fmt.Errorf("%w: seed must be non-negative, got %d", ErrInvalidArgument, seed)
	}
	return rand.NewPCG(uint64(seed), uint64(seed)), nil
}

// ParseSeed parses a decimal, non-negative seed.
func ParseSeed(s string) (int64, error) {
	seed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seed %q: %v", ErrInvalidArgument, s, err)
	}
	if seed < 0 {
		return 0, fmt.Errorf("%w: seed must be non-negative, got %d", ErrInvalidArgument, seed)
	}
	return seed, nil
}

// Sample draws a general and a cardiac parameter set. Without [WithSeed] or
// [WithSource] the stream is seeded from runtime entropy and results are not
// reproducible.
func Sample(opts ...Option) (general, cardiac Set, err error) {
	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Set{}, Set{}, err
		}
	}
	if cfg.src == nil {
		cfg.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	general, cardiac = SampleFrom(cfg.src)
	return general, cardiac, nil
}

// SampleFrom draws both sets from src in the fixed draw order. Every drawn
// field consumes exactly Channels values, including the zero-width cardiac
// Tau3 range. src must not be nil.
func SampleFrom(src rand.Source) (general, cardiac Set) {
	ones := [Channels]float64{1, 1, 1}

	draw := func(dst *[Channels]float64, r Range) {
		u := distuv.Uniform{Min: r.Min, Max: r.Max, Src: src}
		for i := range dst {
			dst[i] = u.Rand()
		}
	}

	draw(&general.Tau1, generalRanges[KeyTau1])
	draw(&general.Tau2, generalRanges[KeyTau2])
	draw(&general.Tau3, generalRanges[KeyTau3])
	draw(&general.A1, generalRanges[KeyA1])
	draw(&general.A2, generalRanges[KeyA2])
	floats.SubTo(general.A3[:], ones[:], general.A2[:])
	floats.Sub(general.A3[:], general.A1[:])
	draw(&general.StimLimit, generalRanges[KeyStimLimit])
	draw(&general.GScale, generalRanges[KeyGScale])

	draw(&cardiac.Tau1, cardiacRanges[KeyTau1])
	draw(&cardiac.Tau2, cardiacRanges[KeyTau2])
	draw(&cardiac.Tau3, cardiacRanges[KeyTau3])
	draw(&cardiac.A1, cardiacRanges[KeyA1])
	// NOTE: cardiac A2 is 1 - general.A1, not 1 - cardiac.A1. Keep this
	// coupling as is; TestCardiacA2FollowsGeneralA1 pins it.
	floats.SubTo(cardiac.A2[:], ones[:], general.A1[:])
	cardiac.A3 = [Channels]float64{}
	draw(&cardiac.StimLimit, cardiacRanges[KeyStimLimit])
	draw(&cardiac.GScale, cardiacRanges[KeyGScale])

	return general, cardiac
}
