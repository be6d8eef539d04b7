//go:build amd64 && !purego

package lanes

import (
	"github.com/cwbudde/algo-dadd/internal/accum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the lane kernels with the accum registry.
//
// SSE2 is the amd64 baseline, so the lane kernels are preferred unless
// ForceGeneric is set.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "hwy",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		PairSum:   PairSum,
		SingleSum: SingleSum,
		SubSat:    SubSat,
	})
}
