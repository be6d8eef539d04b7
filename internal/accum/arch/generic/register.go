package generic

import (
	"github.com/cwbudde/algo-dadd/internal/accum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the scalar kernels with the accum registry.
//
// Priority: 0 (used only when no lane kernel is available or ForceGeneric is set)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		PairSum:   PairSum,
		SingleSum: SingleSum,
		SubSat:    SubSat,
	})
}
