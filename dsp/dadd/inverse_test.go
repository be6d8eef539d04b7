package dadd

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-dadd/internal/testutil"
)

func TestUnpairSumRestoresRows(t *testing.T) {
	const n = 37
	for drift := 0; drift <= n+2; drift++ {
		lower := testutil.RandomLevels(uint64(drift), n, 1000)
		upper := testutil.RandomLevels(uint64(drift+500), n, 1000)
		gotLower, gotUpper := slices.Clone(lower), slices.Clone(upper)

		PairSum(drift, gotLower, gotUpper)
		UnpairSum(drift, gotLower, gotUpper)

		if !slices.Equal(gotLower, lower) {
			t.Fatalf("drift %d: lower = %v, want %v", drift, gotLower, lower)
		}
		wantUpper := slices.Clone(upper)
		clear(wantUpper[:min(drift, n)])
		if !slices.Equal(gotUpper, wantUpper) {
			t.Fatalf("drift %d: upper = %v, want %v", drift, gotUpper, wantUpper)
		}
	}
}

func TestUnsingleSumRestoresRows(t *testing.T) {
	const n = 21
	for offset := 0; offset <= n; offset++ {
		lower := testutil.RandomLevels(uint64(offset), n, 1000)
		upper := testutil.RandomLevels(uint64(offset+77), n, 1000)
		gotLower, gotUpper := slices.Clone(lower), slices.Clone(upper)

		SingleSum(offset, gotLower, gotUpper)
		UnsingleSum(offset, gotLower, gotUpper)

		if !slices.Equal(gotLower, lower) {
			t.Fatalf("offset %d: lower modified", offset)
		}
		wantUpper := slices.Clone(upper)
		clear(wantUpper[:min(offset, n)])
		if !slices.Equal(gotUpper, wantUpper) {
			t.Fatalf("offset %d: upper = %v, want %v", offset, gotUpper, wantUpper)
		}
	}
}
