// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for constructors/kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/numeric"
	"github.com/katalvlaran/densemat/random"
	"github.com/katalvlaran/densemat/threadpool"
	"github.com/stretchr/testify/require"
)

// layouts enumerates both storage orders for table-driven tests.
var layouts = []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor}

// mustRows builds a matrix from nested rows or fails the test.
func mustRows[T numeric.Number](tb testing.TB, rows [][]T, layout matrix.Layout) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, layout)
	require.NoError(tb, err)

	return m
}

// mustSeeded builds an r×c float64 matrix from a seeded source, filled serially
// so the values are reproducible for a given seed.
func mustSeeded(tb testing.TB, r, c int, seed uint64, layout matrix.Layout) *matrix.Dense[float64] {
	tb.Helper()
	gen := random.SourceGen(random.NewSource(seed), -10.0, 10.0)
	m, err := matrix.NewRandom(r, c, gen, matrix.WithLayout(layout))
	require.NoError(tb, err)

	return m
}

// mustIntegral is mustSeeded with integer-valued elements in [-1000, 1000],
// so sums and differences are exact in float64.
func mustIntegral(tb testing.TB, r, c int, seed uint64, layout matrix.Layout) *matrix.Dense[float64] {
	tb.Helper()
	src := random.NewSource(seed)
	gen := func() float64 { return float64(random.UniformFrom(src, -1000, 1000)) }
	m, err := matrix.NewRandom(r, c, gen, matrix.WithLayout(layout))
	require.NoError(tb, err)

	return m
}

// mustPool builds a started pool of n workers and stops it when the test ends.
func mustPool(tb testing.TB, n int) *threadpool.Pool {
	tb.Helper()
	p, err := threadpool.New(n)
	require.NoError(tb, err)
	tb.Cleanup(p.Stop)

	return p
}

// withProcs raises GOMAXPROCS to at least n for the rest of the test, so pool
// sizes up to n are not clamped on small hosts.
func withProcs(tb testing.TB, n int) {
	tb.Helper()
	prev := runtime.GOMAXPROCS(0)
	if prev >= n {
		return
	}
	runtime.GOMAXPROCS(n)
	tb.Cleanup(func() { runtime.GOMAXPROCS(prev) })
}

// logical reads m back into nested rows through At.
func logical[T numeric.Number](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}
