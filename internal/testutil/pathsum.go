package testutil

import "math"

// PathOffsets returns, for each of rows spectra, the column offset of the
// drift path that the combine tree accumulates for drift. Offset 0 is the
// start bin; the last entry is drift.
//
// Paths are defined by the tree's split rule (halve the rows, pair equal
// drifts of both halves, join the odd top row at the far end), which is the
// path set the DADD combine sums. They are not the rounded straight line
// round(drift*r/(rows-1)) and differ from it for many shapes.
func PathOffsets(drift, rows int) []int {
	if rows == 1 {
		return []int{0}
	}
	lower := rows / 2
	upper := rows - lower

	var lo, up []int
	start := 0
	if upper > lower && drift == rows-1 {
		lo = PathOffsets(lower-1, lower)
		up = PathOffsets(upper-1, upper)
		start = lower
	} else {
		i := drift / 2
		lo = PathOffsets(i, lower)
		up = PathOffsets(i, upper)
		start = i + drift%2
	}

	out := make([]int, 0, rows)
	out = append(out, lo...)
	for _, o := range up {
		out = append(out, start+o)
	}
	return out
}

// BruteForcePathSum sums data along the drift path starting at bin, treating
// columns past the end of a row as zero and saturating at the uint16 maximum.
func BruteForcePathSum(data []uint16, rows, bins, bin, drift int) uint16 {
	sum := 0
	for r, o := range PathOffsets(drift, rows) {
		if c := bin + o; c < bins {
			sum += int(data[r*bins+c])
		}
	}
	return uint16(min(sum, math.MaxUint16))
}

// BruteForce returns the expected path sums of a rows×bins buffer, indexed
// [drift][bin].
func BruteForce(data []uint16, rows, bins int) [][]uint16 {
	out := make([][]uint16, rows)
	for d := range out {
		out[d] = make([]uint16, bins)
		for b := range out[d] {
			out[d][b] = BruteForcePathSum(data, rows, bins, b, d)
		}
	}
	return out
}
