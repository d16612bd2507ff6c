// SPDX-License-Identifier: MIT

package threadpool

import "go.uber.org/zap"

// Defaults for a freshly constructed Pool.
const (
	// DefaultAutoStart starts workers inside New.
	DefaultAutoStart = true

	// DefaultDrainOnStop keeps the abrupt shutdown policy: Stop discards
	// tasks that are still queued.
	DefaultDrainOnStop = false
)

const panicNilLogger = "threadpool: WithLogger: logger must not be nil"

// Option configures a Pool at construction time.
type Option func(*options)

type options struct {
	autoStart   bool
	drainOnStop bool
	logger      *zap.Logger
}

func defaultOptions() options {
	return options{
		autoStart:   DefaultAutoStart,
		drainOnStop: DefaultDrainOnStop,
		logger:      zap.NewNop(),
	}
}

// WithAutoStart controls whether New starts the workers immediately.
func WithAutoStart(start bool) Option {
	return func(o *options) { o.autoStart = start }
}

// WithDrainOnStop makes Stop run every queued task before workers exit.
// Without it Stop is abrupt and queued futures never resolve.
func WithDrainOnStop(drain bool) Option {
	return func(o *options) { o.drainOnStop = drain }
}

// WithLogger routes lifecycle and task-failure events to l.
// Panics on nil (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}
