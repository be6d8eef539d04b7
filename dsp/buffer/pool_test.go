package buffer

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(2, 8)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(2, 4)
	b.Set(0, 0, 42)
	b.Set(1, 3, 43)
	p.Put(b)

	b2 := p.Get(2, 4)
	for i, v := range b2.Data() {
		if v != 0 {
			t.Fatalf("reused Data()[%d] = %d, want 0", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil) // must not panic
}

func TestPoolLimitDropsLargeBuffers(t *testing.T) {
	p := NewPoolLimit(16)

	// Put must accept an oversized buffer without retaining it; Get then
	// still returns a correctly shaped buffer.
	p.Put(New(4, 8))
	b := p.Get(2, 4)
	if b.Rows() != 2 || b.Stride() != 4 || b.Len() != 8 {
		t.Fatalf("shape = %d×%d (len %d), want 2×4", b.Rows(), b.Stride(), b.Len())
	}
	p.Put(b)
}
