// SPDX-License-Identifier: MIT

package threadpool

import (
	"context"

	"go.uber.org/multierr"
)

// Future is the handle to the eventual result of a submitted task.
// It resolves exactly once; every Wait after that returns the same pair.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve publishes the outcome. The channel close orders the writes before
// any reader that observed Done.
func (f *Future[T]) resolve(v T, err error) {
	f.value, f.err = v, err
	close(f.done)
}

// Done is closed once the task has finished.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Resolved reports, without blocking, whether the task has finished.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the task finishes and returns its result or failure.
// A task discarded by an abrupt Stop never finishes; do not Wait on it.
func (f *Future[T]) Wait() (T, error) {
	<-f.done

	return f.value, f.err
}

// WaitContext is Wait bounded by ctx. Cancelling ctx abandons the wait only;
// the task itself keeps running.
func (f *Future[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// WaitAll awaits every future in order and combines all failures.
// Awaiting never stops early, so no failure is dropped.
func WaitAll[T any](futures ...*Future[T]) error {
	var errs error
	for _, f := range futures {
		if _, err := f.Wait(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
