// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/numeric"
	"github.com/stretchr/testify/require"
)

// TestDefaultsDocumented pins the documented defaults.
func TestDefaultsDocumented(t *testing.T) {
	require.Equal(t, matrix.RowMajor, matrix.DefaultLayout)
	require.Equal(t, 1<<14, matrix.DefaultMinOpsPerThread)
	require.Equal(t, numeric.DefaultEpsilonFactor, float64(matrix.DefaultEpsilonFactor))
}

// TestOptionConstructorsPanicOnNonsense ensures programmer errors are loud.
func TestOptionConstructorsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithMinOpsPerThread(0) })
	require.Panics(t, func() { matrix.WithMinOpsPerThread(-3) })
	require.Panics(t, func() { matrix.WithEpsilonFactor(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilonFactor(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithEpsilonFactor(-1) })
	require.Panics(t, func() { matrix.WithLayout(matrix.Layout(3)) })

	require.NotPanics(t, func() { matrix.WithEpsilonFactor(0) })
	require.NotPanics(t, func() { matrix.WithPool(nil) })
}

// TestWithEpsilonFactorZeroIsExact: a zero factor leaves only exact equality.
func TestWithEpsilonFactorZeroIsExact(t *testing.T) {
	a := mustRows(t, [][]float64{{1}}, matrix.RowMajor)
	b := mustRows(t, [][]float64{{math.Nextafter(1, 2)}}, matrix.RowMajor)

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, b, matrix.WithEpsilonFactor(0)))
	require.True(t, matrix.Equal(a, a.Clone(), matrix.WithEpsilonFactor(0)))
}

func TestLayoutString(t *testing.T) {
	require.Equal(t, "RowMajor", matrix.RowMajor.String())
	require.Equal(t, "ColumnMajor", matrix.ColumnMajor.String())
	require.Equal(t, "Layout(5)", matrix.Layout(5).String())
	require.False(t, matrix.Layout(5).Valid())
}
