// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/threadpool"
	"github.com/stretchr/testify/require"
)

// TestParallelRangesTailPanicAwaitsWorkers panics only in the caller's tail
// while slow pooled chunks are still running; the error must come back after
// every chunk finished.
func TestParallelRangesTailPanicAwaitsWorkers(t *testing.T) {
	withProcs(t, 2)
	p := mustPool(t, 2)

	const n = 7 // chunks [0,3) [3,6), tail [6,7)
	var covered atomic.Int64
	err := matrix.ParallelRanges(p, "test", n, 3, func(lo, hi int) {
		if hi == n && lo == 6 {
			panic("tail boom")
		}
		time.Sleep(20 * time.Millisecond)
		covered.Add(int64(hi - lo))
	})
	require.ErrorIs(t, err, threadpool.ErrTaskPanicked)
	var pe *threadpool.PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "tail boom", pe.Value)
	require.EqualValues(t, 6, covered.Load())
}

// TestParallelRangesRefusedChunksRunLocally stops the pool first, so every
// chunk is refused and runs on the caller; panics there are still returned.
func TestParallelRangesRefusedChunksRunLocally(t *testing.T) {
	withProcs(t, 2)
	p := mustPool(t, 2)
	p.Stop()

	var covered atomic.Int64
	err := matrix.ParallelRanges(p, "test", 8, 2, func(lo, hi int) {
		covered.Add(int64(hi - lo))
	})
	require.NoError(t, err)
	require.EqualValues(t, 8, covered.Load())

	calls := 0
	err = matrix.ParallelRanges(p, "test", 8, 2, func(lo, hi int) {
		calls++
		panic("refused boom")
	})
	require.ErrorIs(t, err, threadpool.ErrTaskPanicked)
	require.Equal(t, 2, calls, "every refused chunk runs despite earlier panics")
}
