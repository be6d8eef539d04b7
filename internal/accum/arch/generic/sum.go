package generic

import "math"

// addSat returns a+b clamped at the accumulator maximum.
func addSat(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(s)
}

// subSat returns a-b floored at zero.
func subSat(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

// CheckPair panics unless lower and upper are equal-length rows and drift is
// non-negative.
func CheckPair(drift int, lower, upper []uint16) {
	if len(lower) != len(upper) {
		panic("accum: row length mismatch")
	}
	if drift < 0 {
		panic("accum: negative drift")
	}
}

// PairSum combines the drift-k rows of two adjacent sub-blocks in place.
//
// On return lower holds the drift 2k sum lower[j] + upper[j+k] and upper holds
// the drift 2k+1 sum lower[j] + upper[j+k+1]. Reads beyond the end of the row
// contribute nothing, so the trailing columns of upper receive a copy of
// lower. All additions saturate.
func PairSum(drift int, lower, upper []uint16) {
	CheckPair(drift, lower, upper)
	PairSumFrom(0, drift, lower, upper)
}

// PairSumFrom applies the PairSum rule to columns [start, len(lower)).
// Columns before start must already have been combined by the caller.
func PairSumFrom(start, drift int, lower, upper []uint16) {
	n := len(lower)
	for j := start; j < n; j++ {
		l := lower[j]
		if k := j + drift; k < n {
			lower[j] = addSat(l, upper[k])
		}
		if k := j + drift + 1; k < n {
			upper[j] = addSat(l, upper[k])
		} else {
			upper[j] = l
		}
	}
}

// SingleSum adds lower to upper read at offset, storing into upper:
// upper[j] = lower[j] + upper[j+offset]. Columns whose upper read falls past
// the row end get a copy of lower. lower is not modified.
func SingleSum(offset int, lower, upper []uint16) {
	CheckPair(offset, lower, upper)
	SingleSumFrom(0, offset, lower, upper)
}

// SingleSumFrom applies the SingleSum rule to columns [start, len(lower)).
func SingleSumFrom(start, offset int, lower, upper []uint16) {
	n := len(lower)
	for j := start; j < n; j++ {
		if k := j + offset; k < n {
			upper[j] = addSat(lower[j], upper[k])
		} else {
			upper[j] = lower[j]
		}
	}
}

// SubSat replaces every element with max(0, row[i]-value).
func SubSat(row []uint16, value uint16) {
	SubSatFrom(0, row, value)
}

// SubSatFrom applies SubSat to row[start:].
func SubSatFrom(start int, row []uint16, value uint16) {
	for i := start; i < len(row); i++ {
		row[i] = subSat(row[i], value)
	}
}
