// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer whose element order is fixed by a Layout chosen
//     at construction (offset = row*cols+col or row+col*rows).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the buffer exclusively: every constructor copies caller data and
//     Clone deep-copies, so two matrices never alias.
//
// Complexity quicksheet:
//   - NewZeros/NewFromData/NewFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/densemat/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"  // method tag used in error wrappers
	ctxSet      = "Set" // method tag used in error wrappers
	ctxZeros    = "NewZeros"
	ctxFromData = "NewFromData"
	ctxFromRows = "NewFromRows"
	ctxIdentity = "NewIdentity"
	ctxRandom   = "NewRandom"
)

// ---------- Formatting literals ----------

const (
	_fmtPrecision  = 6
	_fmtFieldWidth = _fmtPrecision + 3 // two integral digits and the dot
	_fmtFloatCell  = "%9.6f"
	_fmtIntCell    = "%9d"
	_fmtHeader     = "| %s Matrix of height X width: %dX%d |\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; preserves the sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete dense matrix of T.
//   - r,c hold dimensions (rows, cols), fixed at construction.
//   - layout fixes the buffer order, also fixed at construction.
//   - data is a flat buffer of exactly r*c elements.
type Dense[T numeric.Number] struct {
	r, c   int
	layout Layout
	data   []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// validateShape is the single shape check shared by every constructor.
func validateShape(rows, cols int, layout Layout) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}
	if !layout.Valid() {
		return ErrUnknownLayout
	}

	return nil
}

// newDense allocates without validation; callers have validated the shape.
func newDense[T numeric.Number](rows, cols int, layout Layout) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, layout: layout, data: make([]T, rows*cols)}
}

// NewZeros creates an rows×cols matrix with every element set to zero.
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and the layout.
//   - Stage 2: allocate a zero-filled buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions, ErrUnknownLayout (both match ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros[T numeric.Number](rows, cols int, layout Layout) (*Dense[T], error) {
	if err := validateShape(rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxZeros, err)
	}

	return newDense[T](rows, cols, layout), nil
}

// NewFromData creates a matrix from a flat slice already in layout order.
// The slice is copied verbatim; later changes to data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrUnknownLayout, ErrDataLength.
func NewFromData[T numeric.Number](rows, cols int, data []T, layout Layout) (*Dense[T], error) {
	if err := validateShape(rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromData, fmt.Errorf("len %d for %dx%d: %w", len(data), rows, cols, ErrDataLength))
	}
	m := newDense[T](rows, cols, layout)
	copy(m.data, data)

	return m, nil
}

// NewFromRows creates a matrix from nested rows given in logical order and
// reorders the elements into the requested layout.
// Implementation:
//   - Stage 1: the first row fixes the width; it must be non-empty.
//   - Stage 2: every other row must have the same width.
//   - Stage 3: copy each element to layout.offset(i, j).
//
// Errors:
//   - ErrRaggedRows (no rows, empty first row, unequal widths), ErrUnknownLayout.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T numeric.Number](rows [][]T, layout Layout) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrRaggedRows)
	}
	r, c := len(rows), len(rows[0])
	if !layout.Valid() {
		return nil, matrixErrorf(ctxFromRows, ErrUnknownLayout)
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
	}

	m := newDense[T](r, c, layout)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[layout.offset(i, j, r, c)] = rows[i][j]
		}
	}

	return m, nil
}

// NewIdentity returns I_n: ones on the main diagonal, zeros elsewhere (RowMajor).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T numeric.Number](n int) (*Dense[T], error) {
	if err := validateShape(n, n, RowMajor); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	m := newDense[T](n, n, RowMajor)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = numeric.One[T]()
	}

	return m, nil
}

// NewRandom creates a rows×cols matrix filled by calling gen once per element.
// Implementation:
//   - Stage 1: validate shape, layout and generator.
//   - Stage 2: preallocate the whole buffer.
//   - Stage 3: with a started pool (WithPool) and rows*cols above the
//     minimum-work threshold, split the flat index range into contiguous
//     chunks of max(len/threads, minOps), dispatch them, fill the tail on the
//     calling goroutine and await every chunk. Otherwise fill serially.
//
// Behavior highlights:
//   - Chunks are disjoint, so workers never write the same offset.
//   - The matrix is fully initialized when NewRandom returns.
//   - gen must be safe for concurrent use when a pool is supplied
//     (random.FastGen and random.UniformGen are).
//
// Errors:
//   - ErrInvalidDimensions, ErrUnknownLayout, ErrNilGenerator;
//     a panic inside gen on a worker is returned as threadpool.ErrTaskPanicked.
//
// Complexity:
//   - Time O(r*c) calls to gen, Space O(r*c).
func NewRandom[T numeric.Number](rows, cols int, gen func() T, opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(rows, cols, o.layout); err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}
	if gen == nil {
		return nil, matrixErrorf(ctxRandom, ErrNilGenerator)
	}

	m := newDense[T](rows, cols, o.layout)
	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			m.data[i] = gen()
		}
	}

	n := rows * cols
	if !shouldParallelize(o.pool, n, o.minOps) {
		fill(0, n)
		return m, nil
	}
	if err := parallelRanges(o.pool, ctxRandom, n, o.minOps, fill); err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}

	return m, nil
}

// Rows returns the row count (height). Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (width). Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Height is an alias of Rows.
func (m *Dense[T]) Height() int { return m.r }

// Width is an alias of Cols.
func (m *Dense[T]) Width() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the storage order fixed at construction.
func (m *Dense[T]) Layout() Layout { return m.layout }

// indexOf checks bounds (row first, then column) and computes the
// layout-specific offset.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.layout.offset(row, col, m.r, m.c), nil
}

// At returns the element at logical position (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()); the row is
//     checked first.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at logical position (row, col).
// Errors: ErrOutOfRange (row checked first).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with the same shape and layout.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDense[T](m.r, m.c, m.layout)
	copy(cp.data, m.data)

	return cp
}

// Data returns a copy of the buffer in storage (layout) order.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and o are equal under DefaultEpsilonFactor.
// See the package-level Equal for options.
func (m *Dense[T]) Equal(o *Dense[T]) bool { return Equal(m, o) }

// String renders a bordered grid for diagnostics (not an exchange format).
//
//	| RowMajor Matrix of height X width: 2X2 |
//	|---------------------|
//	|  1.000000  2.000000 |
//	|  3.000000  4.000000 |
//	|---------------------|
//
// Floats use %9.6f cells, integers %9d. Rows are rendered in logical order
// whatever the layout.
func (m *Dense[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtHeader, m.layout, m.r, m.c)

	bar := "|-" + strings.Repeat("-", m.c*(_fmtFieldWidth+1)) + "|"
	cell := _fmtIntCell
	if numeric.IsFloat[T]() {
		cell = _fmtFloatCell
	}

	b.WriteString(bar)
	b.WriteByte('\n')
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("| ")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, cell, m.data[m.layout.offset(i, j, m.r, m.c)])
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(bar)

	return b.String()
}
