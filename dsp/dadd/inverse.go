package dadd

import "github.com/cwbudde/algo-dadd/internal/accum/arch/generic"

// UnpairSum undoes PairSum(drift, lower, upper) in place.
//
// The result is exact when no addition of the forward merge saturated. The
// forward merge never reads the first drift columns of the upper row, so
// those are returned as zero. The combine tree as a whole discards columns
// and has no inverse; UnpairSum and UnsingleSum undo single merges only.
func UnpairSum(drift int, lower, upper []Accum) {
	generic.CheckPair(drift, lower, upper)
	n := len(lower)
	for j := n - 1; j >= 0; j-- {
		l := upper[j]
		if k := j + drift + 1; k < n {
			l -= upper[k]
		}
		if k := j + drift; k < n {
			upper[k] = lower[j] - l
		}
		lower[j] = l
	}
	clear(upper[:min(drift, n)])
}

// UnsingleSum undoes SingleSum(offset, lower, upper) in place. lower is not
// modified; the first offset columns of upper are returned as zero.
func UnsingleSum(offset int, lower, upper []Accum) {
	generic.CheckPair(offset, lower, upper)
	n := len(lower)
	for j := n - 1 - offset; j >= 0; j-- {
		upper[j+offset] = upper[j] - lower[j]
	}
	clear(upper[:min(offset, n)])
}
