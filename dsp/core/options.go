package core

// DefaultSampleInterval is the sample spacing used when no option overrides
// it: 10 kHz, a common rate for stimulation and biopotential recordings.
const DefaultSampleInterval = 1e-4

// ProcessorConfig defines common sampling settings shared by processors.
type ProcessorConfig struct {
	// SampleInterval is the time between two samples in seconds (dt).
	SampleInterval float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the default sampling configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleInterval: DefaultSampleInterval,
	}
}

// SampleRate returns the sample rate in Hz implied by the sample interval.
// It returns 0 when the interval is not positive.
func (c ProcessorConfig) SampleRate() float64 {
	if c.SampleInterval <= 0 {
		return 0
	}
	return 1 / c.SampleInterval
}

// WithSampleInterval sets the sample interval dt in seconds.
// Zero is accepted and describes a processor that ignores new input.
func WithSampleInterval(dt float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if dt >= 0 && IsFinite(dt) {
			cfg.SampleInterval = dt
		}
	}
}

// WithSampleRate sets the sample interval from a sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleInterval = 1 / sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
