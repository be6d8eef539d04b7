//go:build amd64 && !purego

// Package lanes implements the accumulator kernels on go-highway vectors.
//
// Whole lanes are processed with saturating vector adds; the columns left over
// at the end of a row are finished with the generic scalar rule, so results
// are identical to the generic kernels for any row length.
package lanes

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-dadd/internal/accum/arch/generic"
)

// PairSum is the lane-vectorized form of generic.PairSum.
func PairSum(drift int, lower, upper []uint16) {
	generic.CheckPair(drift, lower, upper)

	n := len(lower)
	width := hwy.MaxLanes[uint16]()

	// A block is complete while its shifted upper read, which ends at
	// j+drift+width, stays inside the row.
	j := 0
	for ; j+drift+width < n; j += width {
		l := hwy.Load(lower[j:])
		u0 := hwy.Load(upper[j+drift:])
		u1 := hwy.Load(upper[j+drift+1:])
		hwy.Store(hwy.SaturatedAdd(l, u0), lower[j:])
		hwy.Store(hwy.SaturatedAdd(l, u1), upper[j:])
	}

	generic.PairSumFrom(j, drift, lower, upper)
}

// SingleSum is the lane-vectorized form of generic.SingleSum.
func SingleSum(offset int, lower, upper []uint16) {
	generic.CheckPair(offset, lower, upper)

	n := len(lower)
	width := hwy.MaxLanes[uint16]()

	j := 0
	for ; j+offset+width <= n; j += width {
		l := hwy.Load(lower[j:])
		u := hwy.Load(upper[j+offset:])
		hwy.Store(hwy.SaturatedAdd(l, u), upper[j:])
	}

	generic.SingleSumFrom(j, offset, lower, upper)
}

// SubSat is the lane-vectorized form of generic.SubSat.
func SubSat(row []uint16, value uint16) {
	width := hwy.MaxLanes[uint16]()
	v := hwy.Set(value)

	j := 0
	for ; j+width <= len(row); j += width {
		hwy.Store(hwy.SaturatedSub(hwy.Load(row[j:]), v), row[j:])
	}

	generic.SubSatFrom(j, row, value)
}
