// SPDX-License-Identifier: MIT

// Package threadpool provides a fixed-size pool of worker goroutines that
// consume tasks from one shared FIFO queue.
//
// Purpose:
//   - Give CPU-bound callers (matrix kernels) a long-lived set of workers
//     instead of spawning goroutines per operation.
//   - Return a Future for every submission so callers can await results and
//     observe failures, including recovered panics.
//
// Lifecycle:
//
//	New ──(autostart)──▶ Started ──Stop──▶ Stopped ──Start──▶ Started ...
//
// A stopped pool may be started again. Stop is abrupt by default: workers
// exit as soon as they observe the termination flag, so tasks still queued
// are discarded and their futures never resolve. WithDrainOnStop(true)
// selects draining instead. Never Stop while holding futures you intend
// to Wait on under the abrupt policy.
//
// Concurrency model:
//   - One sync.Mutex guards the queue, flags and counters; one sync.Cond
//     wakes idle workers. Tasks execute outside the lock.
//   - Dequeue is FIFO; completion order across workers is not ordered.
package threadpool

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// HardwareConcurrency is the upper bound on worker count: the number of
// goroutines the runtime will execute simultaneously.
func HardwareConcurrency() int { return runtime.GOMAXPROCS(0) }

func clampThreads(n int) int {
	if hw := HardwareConcurrency(); n > hw {
		return hw
	}

	return n
}

// Pool is a fixed set of workers sharing one task queue.
// The zero value is not usable; construct with New.
type Pool struct {
	mu        sync.Mutex
	cond      *sync.Cond
	queue     []func() // FIFO; head at index 0
	terminate bool     // set by Stop, cleared by Start
	started   bool
	threads   int // worker count of the current (or next) run
	waiting   int // workers parked on cond
	wg        sync.WaitGroup

	drainOnStop bool
	log         *zap.Logger
}

// New constructs a pool sized min(threadCount, HardwareConcurrency()).
// Workers start immediately unless WithAutoStart(false) is given.
//
// Errors:
//   - ErrInvalidThreadCount when threadCount < 1.
func New(threadCount int, opts ...Option) (*Pool, error) {
	if threadCount < 1 {
		return nil, ErrInvalidThreadCount
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool{
		terminate:   true,
		threads:     clampThreads(threadCount),
		drainOnStop: o.drainOnStop,
		log:         o.logger,
	}
	p.cond = sync.NewCond(&p.mu)

	if o.autoStart {
		if err := p.Start(threadCount); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Start spawns min(threadCount, HardwareConcurrency()) workers.
// Implementation:
//   - Stage 1: validate threadCount and the lifecycle state under the lock.
//   - Stage 2: reset flags and the waiting counter, spawn workers.
//
// Errors:
//   - ErrInvalidThreadCount when threadCount < 1.
//   - ErrAlreadyStarted when the pool is running (or still stopping).
func (p *Pool) Start(threadCount int) error {
	if threadCount < 1 {
		return ErrInvalidThreadCount
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return ErrAlreadyStarted
	}

	p.threads = clampThreads(threadCount)
	p.waiting = 0
	p.terminate = false
	p.started = true

	p.wg.Add(p.threads)
	for id := 0; id < p.threads; id++ {
		go p.worker(id)
	}
	p.log.Debug("threadpool: started",
		zap.Int("requested", threadCount),
		zap.Int("threads", p.threads),
		zap.Bool("drainOnStop", p.drainOnStop))

	return nil
}

// Stop terminates the workers and waits for them to exit.
// Implementation:
//   - Stage 1: set the termination flag under the lock; wake every worker.
//   - Stage 2: join all workers (a running task is never interrupted).
//   - Stage 3: drop whatever is left in the queue and mark the pool stopped.
//
// Behavior highlights:
//   - Abrupt by default: queued tasks are discarded, their futures stay
//     unresolved. With WithDrainOnStop(true) the queue is emptied first.
//   - Stop on a pool that is not started is a no-op.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.terminate = true
	p.mu.Unlock()
	p.cond.Broadcast()

	p.wg.Wait()

	p.mu.Lock()
	discarded := len(p.queue)
	threads := p.threads
	p.queue = nil
	p.started = false
	p.mu.Unlock()

	if discarded > 0 {
		p.log.Warn("threadpool: stopped with queued tasks discarded", zap.Int("discarded", discarded))
	}
	p.log.Debug("threadpool: stopped", zap.Int("threads", threads))
}

// worker is the Idle → Executing → Idle loop; it ends in Terminated.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		p.waiting++
		for len(p.queue) == 0 && !p.terminate {
			p.cond.Wait() // releases the lock while parked
		}
		p.waiting--

		if p.terminate && (!p.drainOnStop || len(p.queue) == 0) {
			p.mu.Unlock()
			p.log.Debug("threadpool: worker exit", zap.Int("worker", id))
			return
		}

		task := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task()
	}
}

// enqueue appends a ready-to-run closure and wakes exactly one worker.
func (p *Pool) enqueue(task func()) error {
	p.mu.Lock()
	if !p.started || p.terminate {
		p.mu.Unlock()
		return ErrNotStarted
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()

	return nil
}

// Submit queues fn on p and returns a Future for its result.
// Implementation:
//   - Stage 1: reject nil fn.
//   - Stage 2: wrap fn so a panic is recovered and delivered as *PanicError
//     (matching ErrTaskPanicked) instead of killing the worker.
//   - Stage 3: enqueue under the lock and signal one worker.
//
// Errors:
//   - ErrNilTask, ErrNotStarted.
//
// Complexity:
//   - O(1) amortized; never blocks beyond the enqueue lock.
func Submit[T any](p *Pool, fn func() (T, error)) (*Future[T], error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	f := newFuture[T]()
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("threadpool: task panicked", zap.Any("panic", r), zap.Stack("stack"))
				var zero T
				f.resolve(zero, &PanicError{Value: r})
			}
		}()
		v, err := fn()
		f.resolve(v, err)
	}
	if err := p.enqueue(run); err != nil {
		return nil, err
	}

	return f, nil
}

// Go is Submit for tasks that only report an error.
func (p *Pool) Go(fn func() error) (*Future[struct{}], error) {
	if fn == nil {
		return nil, ErrNilTask
	}

	return Submit(p, func() (struct{}, error) { return struct{}{}, fn() })
}

// HasQueuedTasks reports whether tasks are waiting to be dequeued.
func (p *Pool) HasQueuedTasks() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.queue) > 0
}

// IsIdle reports whether every worker is parked and the queue is empty.
// Intended for polling in tests, not for coordination.
func (p *Pool) IsIdle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.started && p.waiting == p.threads && len(p.queue) == 0
}

// IsStarted reports whether the pool accepts submissions.
func (p *Pool) IsStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.started && !p.terminate
}

// ThreadCount returns the worker count of the current (or last) run.
func (p *Pool) ThreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.threads
}

// Logger returns the pool's logger so callers dispatching work can log
// alongside it.
func (p *Pool) Logger() *zap.Logger { return p.log }
