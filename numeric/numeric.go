// SPDX-License-Identifier: MIT

// Package numeric defines the element capability set shared by the matrix
// engine: the Number constraint, additive/multiplicative identities,
// absolute value, machine epsilon and tolerance-based equality.
//
// Purpose:
//   - Replace per-type branching with a single generic surface.
//   - Keep equality semantics in one place: exact for integers, magnitude-scaled
//     epsilon for floating types.
//
// Complexity quicksheet:
//   - Every function here is O(1) and allocation-free.
package numeric

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// DefaultEpsilonFactor scales machine epsilon in float comparisons.
const DefaultEpsilonFactor = 3.0

// Number is the element constraint of the matrix engine: every built-in
// integer and floating type (including named types over them).
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// IsFloat reports whether T is a floating-point type.
// Integer division truncates 1/2 to zero; floating division does not.
func IsFloat[T Number]() bool {
	var one, two T = 1, 2

	return one/two != 0
}

// Abs returns |v|. For unsigned types it is the identity.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Epsilon returns the machine epsilon of T as float64:
// 2^-23 for 4-byte floats, 2^-52 for 8-byte floats and 0 for integers.
func Epsilon[T Number]() float64 {
	if !IsFloat[T]() {
		return 0
	}
	var z T
	if unsafe.Sizeof(z) == 4 {
		return float64(math.Nextafter32(1, 2) - 1)
	}

	return math.Nextafter(1, 2) - 1
}

// AreEqual compares a and b.
// Implementation:
//   - Stage 1: integers compare exactly.
//   - Stage 2: floats compare as |a-b| < factor*eps(T)*max(1,|a|,|b|).
//
// Behavior highlights:
//   - The max(1, ...) floor keeps values close to zero comparable.
//   - NaN is never equal to anything; equal infinities are equal.
//
// Complexity:
//   - Time O(1), Space O(1).
func AreEqual[T Number](a, b T, factor float64) bool {
	if !IsFloat[T]() {
		return a == b
	}
	if a == b { // covers equal infinities
		return true
	}
	fa, fb := float64(a), float64(b)
	scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))

	return math.Abs(fa-fb) < factor*Epsilon[T]()*scale
}

// Comparator binds an epsilon factor to AreEqual.
type Comparator[T Number] struct {
	Factor float64
}

// NewComparator returns a Comparator using DefaultEpsilonFactor.
func NewComparator[T Number]() Comparator[T] {
	return Comparator[T]{Factor: DefaultEpsilonFactor}
}

// Equal reports whether a and b are equal under the comparator's factor.
func (c Comparator[T]) Equal(a, b T) bool { return AreEqual(a, b, c.Factor) }
