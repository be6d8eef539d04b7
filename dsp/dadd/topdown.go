package dadd

import (
	"fmt"

	"github.com/cwbudde/algo-dadd/internal/accum"
)

// kernelFn merges two rows: PairSum and SingleSum share this shape.
type kernelFn func(drift int, lower, upper []Accum)

// PairSum merges the drift-k rows of two adjacent sub-blocks in place.
// lower receives the drift 2k sum and upper the drift 2k+1 sum; reads past the
// end of the row contribute nothing. All additions saturate.
func PairSum(drift int, lower, upper []Accum) {
	accum.PairSum(drift, lower, upper)
}

// SingleSum stores lower[j]+upper[j+offset] into upper (saturating). It
// resolves the one drift of an odd block that has no partner in the lower
// half.
func SingleSum(offset int, lower, upper []Accum) {
	accum.SingleSum(offset, lower, upper)
}

// TopDown runs the combine tree over rows×bins accumulators in data. On
// return row Position(d, rows) holds the path sum for drift d.
func TopDown(rows, bins int, data []Accum) {
	checkBuffer(rows, bins, data)
	topDown(rows, bins, data, accum.PairSum, accum.SingleSum)
}

func checkBuffer(rows, bins int, data []Accum) {
	if rows < 0 || bins < 0 {
		panic(fmt.Sprintf("dadd: invalid buffer shape %d×%d", rows, bins))
	}
	if len(data) < rows*bins {
		panic(fmt.Sprintf("dadd: buffer holds %d accumulators, need %d", len(data), rows*bins))
	}
}

func checkRegion(data []Accum, spectra, usableBins, stride int) {
	if usableBins > stride {
		panic(fmt.Sprintf("dadd: %d usable bins exceed row stride %d", usableBins, stride))
	}
	checkBuffer(spectra, stride, data)
}

func topDown(rows, bins int, data []Accum, pair, single kernelFn) {
	if rows <= 1 {
		return
	}
	lowerRows := rows / 2
	upperRows := rows - lowerRows
	upper := data[lowerRows*bins:]

	topDown(lowerRows, bins, data, pair, single)
	topDown(upperRows, bins, upper, pair, single)

	row := func(buf []Accum, r int) []Accum {
		return buf[r*bins : (r+1)*bins : (r+1)*bins]
	}

	// The maximum drift of the upper half has no partner; it must be
	// resolved before the pair loop overwrites the last lower row.
	if upperRows > lowerRows {
		single(upperRows-1, row(data, lowerRows-1), row(data, rows-1))
	}
	for i := 0; i < lowerRows; i++ {
		pair(i, row(data, position(i, lowerRows)), row(upper, position(i, upperRows)))
	}
}

// mergeOp is one scheduled kernel call on absolute buffer rows.
type mergeOp struct {
	drift int
	lower int
	upper int
}

// mergeLevel holds the kernel calls of one tree depth. Singles must run
// before pairs; calls within each group touch disjoint rows.
type mergeLevel struct {
	singles []mergeOp
	pairs   []mergeOp
}

// schedule flattens the combine tree of rows into levels, deepest first, so
// that every level only depends on levels before it.
func schedule(rows int) []mergeLevel {
	type block struct{ start, rows int }

	var depth [][]block
	for cur := []block{{0, rows}}; len(cur) > 0; {
		depth = append(depth, cur)
		var next []block
		for _, b := range cur {
			if b.rows > 1 {
				lo := b.rows / 2
				next = append(next, block{b.start, lo}, block{b.start + lo, b.rows - lo})
			}
		}
		cur = next
	}

	var levels []mergeLevel
	for d := len(depth) - 1; d >= 0; d-- {
		var lvl mergeLevel
		for _, b := range depth[d] {
			if b.rows <= 1 {
				continue
			}
			lo := b.rows / 2
			up := b.rows - lo
			if up > lo {
				lvl.singles = append(lvl.singles, mergeOp{up - 1, b.start + lo - 1, b.start + b.rows - 1})
			}
			for i := 0; i < lo; i++ {
				lvl.pairs = append(lvl.pairs, mergeOp{i, b.start + position(i, lo), b.start + lo + position(i, up)})
			}
		}
		if len(lvl.singles)+len(lvl.pairs) > 0 {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// forEach runs fn for every index in [0, n).
type forEach func(n int, fn func(i int))

func sequential(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// runSchedule evaluates a flattened tree. It is equivalent to topDown.
func runSchedule(levels []mergeLevel, bins int, data []Accum, each forEach, pair, single kernelFn) {
	row := func(r int) []Accum {
		return data[r*bins : (r+1)*bins : (r+1)*bins]
	}
	for _, lvl := range levels {
		each(len(lvl.singles), func(i int) {
			op := lvl.singles[i]
			single(op.drift, row(op.lower), row(op.upper))
		})
		each(len(lvl.pairs), func(i int) {
			op := lvl.pairs[i]
			pair(op.drift, row(op.lower), row(op.upper))
		})
	}
}
