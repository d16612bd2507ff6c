// SPDX-License-Identifier: MIT

// Package matrix: storage layout.
// Layout is the fixed mapping from a logical (row, col) position to an offset
// in a matrix's flat buffer. It is chosen once at construction and never
// changes afterwards.
package matrix

import "strconv"

// Layout selects the element order of the flat buffer.
//
//	|1 2 3|
//	|4 5 6|   RowMajor    → 1 2 3 4 5 6 7 8 9   (row*cols + col)
//	|7 8 9|   ColumnMajor → 1 4 7 2 5 8 3 6 9   (row + col*rows)
type Layout uint8

const (
	// RowMajor stores rows contiguously.
	RowMajor Layout = iota
	// ColumnMajor stores columns contiguously.
	ColumnMajor
)

// String returns "RowMajor" or "ColumnMajor".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return "Layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the declared layouts.
func (l Layout) Valid() bool { return l == RowMajor || l == ColumnMajor }

// strides returns the buffer step for one row and for one column, so that
// offset(row, col) == row*rowStride + col*colStride.
func (l Layout) strides(rows, cols int) (rowStride, colStride int) {
	if l == ColumnMajor {
		return 1, rows
	}

	return cols, 1
}

// offset maps (row, col) to a buffer offset. Callers check bounds first.
func (l Layout) offset(row, col, rows, cols int) int {
	if l == ColumnMajor {
		return row + col*rows
	}

	return row*cols + col
}
