// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"github.com/katalvlaran/densemat/numeric"
	"github.com/katalvlaran/densemat/random"
)

// NewUniform returns a rows×cols matrix of values drawn uniformly from
// [min, max] using the package-level entropy-seeded source of package random.
// Options are those of NewRandom (WithPool, WithLayout, WithMinOpsPerThread).
// Panics when min > max.
func NewUniform[T numeric.Number](rows, cols int, min, max T, opts ...Option) (*Dense[T], error) {
	return NewRandom(rows, cols, random.UniformGen(min, max), opts...)
}

// ZerosLike returns a new zero matrix with the same shape and layout as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewZeros[T](m.r, m.c, m.layout)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity[T](m.r)
}

// Sum is an alias for Add (intention-revealing name).
func Sum[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub (intention-revealing name).
func Diff[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul (intention-revealing name).
func Product[T numeric.Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return Mul(a, b, opts...)
}
