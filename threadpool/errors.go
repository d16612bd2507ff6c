// SPDX-License-Identifier: MIT
// Package threadpool: sentinel error set.
// Every configuration failure wraps ErrConfiguration so callers can match
// the whole family with errors.Is(err, ErrConfiguration) or a single case
// with its own sentinel.

package threadpool

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the umbrella for lifecycle misuse of a Pool.
	ErrConfiguration = errors.New("threadpool: configuration error")

	// ErrAlreadyStarted is returned by Start on a running pool.
	ErrAlreadyStarted = fmt.Errorf("%w: pool already started", ErrConfiguration)

	// ErrNotStarted is returned by Submit on a pool that is not running.
	ErrNotStarted = fmt.Errorf("%w: pool is not started", ErrConfiguration)

	// ErrInvalidThreadCount is returned when fewer than one worker is requested.
	ErrInvalidThreadCount = fmt.Errorf("%w: thread count must be >= 1", ErrConfiguration)

	// ErrNilTask is returned when a nil function is submitted.
	ErrNilTask = errors.New("threadpool: task is nil")

	// ErrTaskPanicked is delivered on a Future whose task panicked.
	ErrTaskPanicked = errors.New("threadpool: task panicked")
)

// PanicError carries the recovered value of a panicking task.
// It matches ErrTaskPanicked through errors.Is.
type PanicError struct {
	Value any
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTaskPanicked, e.Value)
}

// Unwrap exposes ErrTaskPanicked to errors.Is.
func (e *PanicError) Unwrap() error { return ErrTaskPanicked }
