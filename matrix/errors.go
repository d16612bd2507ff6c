// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached with fmt.Errorf("<Op>: %w", ErrX) at the operation facade, so
// callers always match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> argument/shape -> dimension mismatch -> index range.

var (
	// ErrInvalidArgument reports malformed constructor input: non-positive
	// dimensions, empty or ragged rows, data length mismatch, nil generator,
	// unknown layout.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside [0, bound).
	// At/Set return it; they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// on different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Specific ErrInvalidArgument cases. errors.Is matches both the case and
// ErrInvalidArgument.
var (
	// ErrInvalidDimensions: rows or cols < 1.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrDataLength: flat data length differs from rows*cols.
	ErrDataLength = fmt.Errorf("%w: data length must equal rows*cols", ErrInvalidArgument)

	// ErrRaggedRows: nested rows are empty or of unequal length.
	ErrRaggedRows = fmt.Errorf("%w: rows must be non-empty and of equal length", ErrInvalidArgument)

	// ErrUnknownLayout: a Layout value other than RowMajor or ColumnMajor.
	ErrUnknownLayout = fmt.Errorf("%w: unknown layout", ErrInvalidArgument)

	// ErrNilGenerator: NewRandom called without a generator.
	ErrNilGenerator = fmt.Errorf("%w: generator is nil", ErrInvalidArgument)
)
