package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]complex128, 2, 8)
	out := EnsureLen(buf, 6)
	if len(out) != 6 || cap(out) != 8 {
		t.Fatalf("len/cap = %d/%d, want 6/8", len(out), cap(out))
	}
	if &out[0] != &buf[0] {
		t.Fatal("EnsureLen did not reuse capacity")
	}
}

func TestEnsureLenGrowAndZero(t *testing.T) {
	if out := EnsureLen([]float64(nil), 3); len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out := EnsureLen(make([]uint16, 4), -1); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}
