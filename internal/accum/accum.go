// Package accum provides saturating uint16 accumulator kernels for the DADD
// path-sum engine.
//
// The kernel is selected once, on first use, from the implementations
// registered with registry.Global: the generic scalar kernels everywhere and
// the go-highway lane kernels on amd64.
package accum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-dadd/internal/accum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Max is the saturation value of an accumulator.
const Max = math.MaxUint16

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

func kernels() *registry.OpEntry {
	implOnce.Do(func() {
		entry := registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("accum: no kernel registered (missing generic fallback?)")
		}
		if entry.PairSum == nil || entry.SingleSum == nil || entry.SubSat == nil {
			panic("accum: selected kernel " + entry.Name + " is incomplete")
		}
		impl = entry
	})
	return impl
}

// Implementation returns the name of the selected kernel.
func Implementation() string {
	return kernels().Name
}

// PairSum combines the drift-k rows of two adjacent sub-blocks in place:
// lower becomes lower[j]+upper[j+k] and upper becomes lower[j]+upper[j+k+1],
// both saturating. Reads past the row end contribute nothing.
func PairSum(drift int, lower, upper []uint16) {
	kernels().PairSum(drift, lower, upper)
}

// SingleSum stores lower[j]+upper[j+offset] into upper, saturating.
func SingleSum(offset int, lower, upper []uint16) {
	kernels().SingleSum(offset, lower, upper)
}

// SubSat replaces every element of row with max(0, row[i]-value).
func SubSat(row []uint16, value uint16) {
	kernels().SubSat(row, value)
}

// AddSat returns a+b clamped at Max.
func AddSat(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > Max {
		return Max
	}
	return uint16(s)
}
