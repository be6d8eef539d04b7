package buffer

import "fmt"

// Buffer is a two-dimensional accumulator array stored row-major in one
// contiguous slice. Row r occupies Data()[r*Stride() : (r+1)*Stride()].
type Buffer struct {
	data   []uint16
	rows   int
	stride int
}

// New returns a zero-filled Buffer with the given shape.
// Negative dimensions are treated as zero.
func New(rows, stride int) *Buffer {
	rows, stride = max(rows, 0), max(stride, 0)
	return &Buffer{data: make([]uint16, rows*stride), rows: rows, stride: stride}
}

// FromSlice wraps an existing slice without copying. It panics if data is
// shorter than rows*stride.
func FromSlice(data []uint16, rows, stride int) *Buffer {
	if rows < 0 || stride < 0 || len(data) < rows*stride {
		panic(fmt.Sprintf("buffer: slice of %d accumulators cannot hold %d×%d", len(data), rows, stride))
	}
	return &Buffer{data: data[:rows*stride], rows: rows, stride: stride}
}

// Data returns the underlying rows*stride accumulators.
func (b *Buffer) Data() []uint16 {
	return b.data
}

// Rows returns the number of rows.
func (b *Buffer) Rows() int {
	return b.rows
}

// Stride returns the number of accumulators per row.
func (b *Buffer) Stride() int {
	return b.stride
}

// Len returns rows*stride.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Row returns row r as a slice sharing the buffer memory.
func (b *Buffer) Row(r int) []uint16 {
	if r < 0 || r >= b.rows {
		panic(fmt.Sprintf("buffer: row %d out of range [0, %d)", r, b.rows))
	}
	return b.data[r*b.stride : (r+1)*b.stride : (r+1)*b.stride]
}

// At returns the accumulator at (r, c).
func (b *Buffer) At(r, c int) uint16 {
	return b.Row(r)[c]
}

// Set stores v at (r, c).
func (b *Buffer) Set(r, c int, v uint16) {
	b.Row(r)[c] = v
}

// Resize changes the shape, reusing existing capacity when possible.
// The row layout changes with the stride, so the whole buffer is zeroed.
func (b *Buffer) Resize(rows, stride int) {
	rows, stride = max(rows, 0), max(stride, 0)
	n := rows * stride
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		b.data = make([]uint16, n)
	}
	b.rows, b.stride = rows, stride
	b.Zero()
}

// Zero sets every accumulator to 0.
func (b *Buffer) Zero() {
	clear(b.data)
}

// ZeroColumns sets columns [start, end) of every row to 0.
// Indices are clamped to the row bounds.
func (b *Buffer) ZeroColumns(start, end int) {
	start = max(start, 0)
	end = min(end, b.stride)
	if start >= end {
		return
	}
	for r := 0; r < b.rows; r++ {
		clear(b.data[r*b.stride+start : r*b.stride+end])
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	data := make([]uint16, len(b.data))
	copy(data, b.data)
	return &Buffer{data: data, rows: b.rows, stride: b.stride}
}
