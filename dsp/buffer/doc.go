// Package buffer provides the detection buffer: a contiguous rows × stride
// arena of 16-bit accumulators, plus a pool for reuse across activities.
// The DADD engine accepts the raw []uint16 from Data(); Buffer is a
// convenience that keeps the row/stride arithmetic in one place.
package buffer
