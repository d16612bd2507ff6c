// Package matrix offers a generic dense matrix with a selectable memory layout.
//
// The matrix package provides:
//
//   - Dense[T], a rows×cols container over any numeric.Number, stored in
//     RowMajor (row*cols+col) or ColumnMajor (row+col*rows) order. The layout
//     is fixed at construction; constructors copy caller data and Clone
//     deep-copies, so no two matrices share a buffer.
//   - Bounds-checked access (At, Set) that returns ErrOutOfRange instead of
//     panicking.
//   - Arithmetic: Mul (always RowMajor), Add and Sub (layout-preserving when
//     operands agree, RowMajor otherwise), tolerance Equal, Transpose and
//     ToLayout.
//
// NewRandom and Mul accept WithPool to spread work over a started
// threadpool.Pool. Work is split into contiguous, disjoint index or row ranges
// of at least WithMinOpsPerThread elements; the calling goroutine computes
// the leftover tail and then awaits every dispatched chunk, so results are
// complete when the call returns. Serial and parallel products are bitwise
// identical.
//
// See the examples in this package and the examples/ program for usage.
package matrix
