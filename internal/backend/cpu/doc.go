// Package cpu implements the raw float32 compute kernels the autograd
// operations are built on: matrix multiplication (plain and transposed
// variants), elementwise maps, reductions, and the row-wise log-softmax.
//
// Kernels operate on flat slices with explicit dimensions and perform no
// shape validation of their own; callers (the autograd ops) validate shapes
// before dispatching. Matrix multiplication is cache-blocked with a tile size
// derived from the detected L1 data cache and parallelized over rows.
package cpu
