package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dadd/dsp/core"
)

func ExampleApplyObservationOptions() {
	o := core.ApplyObservationOptions(
		core.WithSampleRate(1024),
		core.WithFFTSize(1024),
		core.WithSpectra(65),
	)

	fmt.Printf("bin=%.0fHz duration=%.0fs drift(32 bins)=%.1fHz/s\n", o.BinWidth(), o.Duration(), o.DriftRate(32))

	// Output:
	// bin=1Hz duration=65s drift(32 bins)=0.5Hz/s
}
