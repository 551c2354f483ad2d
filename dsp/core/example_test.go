package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-safe/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(2000),
	)

	fmt.Printf("dt=%.4f rate=%.0f\n", cfg.SampleInterval, cfg.SampleRate())

	// Output:
	// dt=0.0005 rate=2000
}
