package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-dadd/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(2, 4)
	copy(b.Row(0), []uint16{1, 2, 3, 4})
	copy(b.Row(1), []uint16{5, 6, 7, 8})

	b.ZeroColumns(1, 3)

	fmt.Println(b.Row(0), b.Row(1))
	fmt.Println(b.Rows(), b.Stride(), b.Len())

	// Output:
	// [1 0 0 4] [5 0 0 8]
	// 2 4 8
}
