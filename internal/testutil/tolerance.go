package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(got) {
		t.Fatalf("%s = %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireAccumEqual fails t at the first element where got and want differ,
// reporting its row and column for a buffer of the given stride.
func RequireAccumEqual(t *testing.T, got, want []uint16, stride int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	stride = max(stride, 1)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("row %d col %d: got %d, want %d", i/stride, i%stride, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
