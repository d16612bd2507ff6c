// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: parallelism is opt-in through an explicitly passed pool.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/katalvlaran/densemat/numeric"
	"github.com/katalvlaran/densemat/threadpool"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the storage order used when none is requested.
	DefaultLayout = RowMajor

	// DefaultMinOpsPerThread is the minimum-work threshold: operations with
	// fewer output elements stay single-threaded, and no dispatched chunk is
	// smaller than this many elements.
	DefaultMinOpsPerThread = 1 << 14

	// DefaultEpsilonFactor scales machine epsilon in Equal.
	DefaultEpsilonFactor = numeric.DefaultEpsilonFactor
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinOpsInvalid    = "matrix: WithMinOpsPerThread: n must be >= 1"
	panicEpsFactorInvalid = "matrix: WithEpsilonFactor: factor must be finite, non-negative"
	panicLayoutInvalid    = "matrix: WithLayout: unknown layout"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pool      *threadpool.Pool // nil ⇒ single-threaded
	layout    Layout           // NewRandom storage order
	minOps    int              // minimum-work threshold (elements)
	epsFactor float64          // Equal tolerance factor
}

// WithPool lets NewRandom and Mul dispatch work to p when it is started.
// A nil pool is accepted and means single-threaded.
func WithPool(p *threadpool.Pool) Option {
	return func(o *Options) { o.pool = p }
}

// WithLayout sets the storage order of matrices built by NewRandom.
// Panics on an unknown layout.
func WithLayout(l Layout) Option {
	if !l.Valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithMinOpsPerThread sets the minimum-work threshold in output elements.
// Panics when n < 1.
func WithMinOpsPerThread(n int) Option {
	if n < 1 {
		panic(panicMinOpsInvalid)
	}

	return func(o *Options) { o.minOps = n }
}

// WithEpsilonFactor sets the factor applied to machine epsilon by Equal.
// Panics when factor is NaN, infinite or negative.
func WithEpsilonFactor(factor float64) Option {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		panic(panicEpsFactorInvalid)
	}

	return func(o *Options) { o.epsFactor = factor }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		layout:    DefaultLayout,
		minOps:    DefaultMinOpsPerThread,
		epsFactor: DefaultEpsilonFactor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
