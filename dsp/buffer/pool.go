package buffer

import "sync"

// Pool recycles detection buffers between activities. Buffers larger than
// the retention limit are dropped on Put instead of being kept alive.
type Pool struct {
	pool   sync.Pool
	maxCap int
}

// NewPool returns a Pool that retains buffers of any size.
func NewPool() *Pool {
	return NewPoolLimit(0)
}

// NewPoolLimit returns a Pool that only retains buffers holding at most
// maxAccums accumulators. maxAccums <= 0 disables the limit.
func NewPoolLimit(maxAccums int) *Pool {
	p := &Pool{maxCap: maxAccums}
	p.pool.New = func() any { return new(Buffer) }
	return p
}

// Get returns a zeroed rows×stride Buffer. Hand it back with Put.
func (p *Pool) Get(rows, stride int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(rows, stride)
	return b
}

// Put makes b available to later Get calls. b must not be used afterwards.
// nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b == nil || (p.maxCap > 0 && b.Cap() > p.maxCap) {
		return
	}
	p.pool.Put(b)
}
