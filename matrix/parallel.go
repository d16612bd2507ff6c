// SPDX-License-Identifier: MIT
// Package matrix: range partitioning over a worker pool.
//
// Purpose:
//   - Split an index range [0,n) into contiguous, disjoint chunks and run them
//     on a threadpool.Pool while the calling goroutine handles the tail.
//   - Shared by NewRandom (flat element ranges) and Mul (output row ranges).
//
// Contract:
//   - Every chunk is awaited before parallelRanges returns; callers observe a
//     fully written result or an error.
//   - Chunks never overlap, so fn may write its range without locking.

package matrix

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/densemat/threadpool"
)

// shouldParallelize reports whether work of n units (output elements) is worth
// dispatching: the pool must be started and n must exceed the threshold.
func shouldParallelize(p *threadpool.Pool, n, minOps int) bool {
	return p != nil && p.IsStarted() && n > minOps
}

// parallelRanges runs fn over [0,n) split into chunks of
// max(n/ThreadCount(), minChunk) units.
//
// Implementation:
//   - Stage 1: compute the chunk size; dispatch every whole chunk via Pool.Go.
//   - Stage 2: run the remainder [lo,n) on the calling goroutine.
//   - Stage 3: await every future with threadpool.WaitAll, even when a local
//     range failed, and combine all failures.
//
// Behavior highlights:
//   - A chunk the pool refuses (stopped concurrently) runs locally instead.
//   - Panics inside fn surface as threadpool.ErrTaskPanicked wherever fn ran.
//
// Complexity:
//   - Dispatch O(n/chunk); the work itself is fn's.
func parallelRanges(p *threadpool.Pool, tag string, n, minChunk int, fn func(lo, hi int)) error {
	threads := p.ThreadCount()
	chunk := n / threads
	if chunk < minChunk {
		chunk = minChunk
	}

	var local error
	futures := make([]*threadpool.Future[struct{}], 0, n/chunk)
	lo := 0
	for ; lo+chunk <= n; lo += chunk {
		from, to := lo, lo+chunk
		f, err := p.Go(func() error {
			fn(from, to)
			return nil
		})
		if err != nil {
			p.Logger().Debug("matrix: chunk ran locally",
				zap.String("op", tag), zap.Int("lo", from), zap.Int("hi", to), zap.Error(err))
			local = multierr.Append(local, runLocal(fn, from, to))
			continue
		}
		futures = append(futures, f)
	}
	if lo < n {
		local = multierr.Append(local, runLocal(fn, lo, n))
	}

	p.Logger().Debug("matrix: parallel dispatch",
		zap.String("op", tag),
		zap.Int("units", n),
		zap.Int("chunk", chunk),
		zap.Int("dispatched", len(futures)),
		zap.Int("tail", n-lo),
	)

	return multierr.Append(local, threadpool.WaitAll(futures...))
}

// runLocal runs fn on the calling goroutine and converts a panic into a
// *threadpool.PanicError, matching what a worker delivers on its Future.
func runLocal(fn func(lo, hi int), lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &threadpool.PanicError{Value: r}
		}
	}()
	fn(lo, hi)

	return nil
}
