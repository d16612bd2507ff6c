// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense: element-wise
// addition and subtraction, matrix multiplication (optionally parallel),
// tolerance equality, transpose and layout conversion. All functions perform
// strict fail-fast validation before any work is dispatched.
//
// Purpose:
//   - Define operation tags for uniform error reporting.
//   - Keep serial and parallel kernels bitwise identical: each output element
//     is always accumulated by the same code in the same k order.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densemat/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opToLayout  = "ToLayout"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a ± b element-wise.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: same layout → one flat loop over both buffers; the result keeps
//     that layout.
//   - Stage 3: mixed layouts → nested i→j loop through logical offsets of both
//     operands; the result is RowMajor.
//
// Behavior highlights:
//   - The mixed path never tries to keep either operand's layout.
//   - Inputs remain immutable; one allocation for the result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T numeric.Number](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if a.layout == b.layout {
		out := newDense[T](a.r, a.c, a.layout)
		if subtract {
			for idx := range out.data {
				out.data[idx] = a.data[idx] - b.data[idx]
			}
		} else {
			for idx := range out.data {
				out.data[idx] = a.data[idx] + b.data[idx]
			}
		}

		return out, nil
	}

	rows, cols := a.r, a.c
	out := newDense[T](rows, cols, RowMajor)
	aRS, aCS := a.layout.strides(rows, cols)
	bRS, bCS := b.layout.strides(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		row := out.data[i*cols : (i+1)*cols]
		for j = 0; j < cols; j++ {
			av, bv := a.data[i*aRS+j*aCS], b.data[i*bRS+j*bCS]
			if subtract {
				row[j] = av - bv
			} else {
				row[j] = av + bv
			}
		}
	}

	return out, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must match exactly).
//
// Notes:
//   - Equal layouts: flat fast path, result keeps the layout.
//   - Different layouts: logical-index path, result is RowMajor.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b. Same rules as Add.
func Sub[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// mulRows computes output rows [lo,hi) of out = a*b. out is RowMajor.
// Operands are read through their strides, so any layout pair works.
// Loop order is i→k→j: each out[i][j] accumulates k = 0..n-1 in order.
func mulRows[T numeric.Number](a, b, out *Dense[T], lo, hi int) {
	n, cols := a.c, b.c
	aRS, aCS := a.layout.strides(a.r, a.c)
	bRS, bCS := b.layout.strides(b.r, b.c)

	var i, k, j int
	for i = lo; i < hi; i++ {
		row := out.data[i*cols : (i+1)*cols]
		for k = 0; k < n; k++ {
			aik := a.data[i*aRS+k*aCS]
			bk := k * bRS
			for j = 0; j < cols; j++ {
				row[j] += aik * b.data[bk+j*bCS]
			}
		}
	}
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil operands, a.Cols() == b.Rows()).
//   - Stage 2: allocate C (a.Rows() × b.Cols(), always RowMajor).
//   - Stage 3: serial when no started pool is given (WithPool) or when
//     a.Rows()*b.Cols() does not exceed the minimum-work threshold. Otherwise
//     split output rows into chunks of max(rows/threads, ceil(minOps/b.Cols()))
//     rows, dispatch whole chunks to the pool, compute the remainder rows on
//     the calling goroutine and await every chunk.
//
// Behavior highlights:
//   - A and B are read-only; each chunk writes only its own rows of C.
//   - The result never preserves input layouts.
//   - Serial and parallel paths produce bitwise identical results.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; a worker panic surfaces as
//     threadpool.ErrTaskPanicked.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T numeric.Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	rows, cols := a.r, b.c
	out := newDense[T](rows, cols, RowMajor)
	if !shouldParallelize(o.pool, rows*cols, o.minOps) {
		mulRows(a, b, out, 0, rows)
		return out, nil
	}

	minRows := (o.minOps + cols - 1) / cols
	err := parallelRanges(o.pool, opMul, rows, minRows, func(lo, hi int) {
		mulRows(a, b, out, lo, hi)
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and every pair of
// logically corresponding elements satisfies numeric.AreEqual with the
// configured factor (WithEpsilonFactor, default 3). Layouts may differ.
//
// Notes:
//   - Two nil matrices are equal; nil and non-nil are not.
//   - Integer element types compare exactly.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal[T numeric.Number](a, b *Dense[T], opts ...Option) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	factor := gatherOptions(opts...).epsFactor

	if a.layout == b.layout {
		for idx := range a.data {
			if !numeric.AreEqual(a.data[idx], b.data[idx], factor) {
				return false
			}
		}

		return true
	}

	aRS, aCS := a.layout.strides(a.r, a.c)
	bRS, bCS := b.layout.strides(b.r, b.c)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if !numeric.AreEqual(a.data[i*aRS+j*aCS], b.data[i*bRS+j*bCS], factor) {
				return false
			}
		}
	}

	return true
}

// Transpose returns mᵀ (cols × rows) in m's layout.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDense[T](m.c, m.r, m.layout)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[m.layout.offset(j, i, m.c, m.r)] = m.data[m.layout.offset(i, j, m.r, m.c)]
		}
	}

	return out, nil
}

// ToLayout returns a copy of m holding the same logical values stored in
// layout l. When l equals m.Layout() the result is a plain Clone.
//
// Errors: ErrNilMatrix, ErrUnknownLayout.
// Complexity: Time O(r*c), Space O(r*c).
func ToLayout[T numeric.Number](m *Dense[T], l Layout) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToLayout, err)
	}
	if !l.Valid() {
		return nil, matrixErrorf(opToLayout, ErrUnknownLayout)
	}
	if l == m.layout {
		return m.Clone(), nil
	}

	out := newDense[T](m.r, m.c, l)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[l.offset(i, j, m.r, m.c)] = m.data[m.layout.offset(i, j, m.r, m.c)]
		}
	}

	return out, nil
}
