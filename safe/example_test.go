package safe_test

import (
	"fmt"

	"github.com/cwbudde/algo-safe/safe"
)

func ExampleSample() {
	general, cardiac, err := safe.Sample(safe.WithSeed(0))
	if err != nil {
		panic(err)
	}

	fmt.Printf("general stim_limit: %.3f %.3f %.3f\n",
		general.StimLimit[0], general.StimLimit[1], general.StimLimit[2])
	fmt.Printf("general weight sums: %.6f\n", general.WeightSums())
	fmt.Printf("cardiac tau3: %v\n", cardiac.Tau3)
	// Output:
	// general stim_limit: 36.574 27.640 22.736
	// general weight sums: [1.000000 1.000000 1.000000]
	// cardiac tau3: [0.001 0.001 0.001]
}
