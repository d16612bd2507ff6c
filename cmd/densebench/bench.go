// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/densemat/config"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/numeric"
	"github.com/katalvlaran/densemat/threadpool"
)

// errMismatch reports a pooled product that differs from the serial one.
var errMismatch = errors.New("densebench: pooled product differs from serial product")

// benchElem lists the element types the driver can run; all are signed so
// the symmetric value ranges below are representable.
type benchElem interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// result is one table row.
type result struct {
	size   int
	serial time.Duration
	pooled time.Duration
	equal  bool
}

func runBenchmarks(w io.Writer, pool *threadpool.Pool, cfg *config.Config, log *zap.Logger) error {
	switch cfg.Element {
	case config.ElementFloat32:
		return runBench[float32](w, pool, cfg, log)
	case config.ElementInt32:
		return runBench[int32](w, pool, cfg, log)
	case config.ElementInt64:
		return runBench[int64](w, pool, cfg, log)
	default:
		return runBench[float64](w, pool, cfg, log)
	}
}

func runBench[T benchElem](w io.Writer, pool *threadpool.Pool, cfg *config.Config, log *zap.Logger) error {
	layout, err := cfg.MatrixLayout()
	if err != nil {
		return err
	}
	lo, hi := T(-1), T(1)
	if !numeric.IsFloat[T]() {
		lo, hi = T(-9), T(9)
	}
	fill := []matrix.Option{
		matrix.WithPool(pool),
		matrix.WithLayout(layout),
		matrix.WithMinOpsPerThread(cfg.MinOpsPerThread),
	}
	pooled := []matrix.Option{
		matrix.WithPool(pool),
		matrix.WithMinOpsPerThread(cfg.MinOpsPerThread),
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "size\telement\tlayout\tthreads\tserial\tpooled\tspeedup\tequal\t\n")

	var mismatch error
	for _, n := range cfg.Sizes {
		a, err := matrix.NewUniform(n, n, lo, hi, fill...)
		if err != nil {
			return err
		}
		b, err := matrix.NewUniform(n, n, lo, hi, fill...)
		if err != nil {
			return err
		}

		r := result{size: n}
		var serial, par *matrix.Dense[T]
		if r.serial, serial, err = bestOf(cfg.Repeat, func() (*matrix.Dense[T], error) { return matrix.Mul(a, b) }); err != nil {
			return err
		}
		if r.pooled, par, err = bestOf(cfg.Repeat, func() (*matrix.Dense[T], error) { return matrix.Mul(a, b, pooled...) }); err != nil {
			return err
		}
		r.equal = matrix.Equal(serial, par)

		log.Info("densebench: product timed",
			zap.Int("size", n),
			zap.String("element", cfg.Element),
			zap.Stringer("layout", layout),
			zap.Duration("serial", r.serial),
			zap.Duration("pooled", r.pooled),
			zap.Bool("equal", r.equal),
		)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%.2fx\t%t\t\n",
			r.size, cfg.Element, layout, pool.ThreadCount(),
			r.serial.Round(time.Microsecond), r.pooled.Round(time.Microsecond),
			speedup(r.serial, r.pooled), r.equal)
		if !r.equal && mismatch == nil {
			mismatch = fmt.Errorf("%w: size %d", errMismatch, n)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return mismatch
}

// bestOf runs fn repeat times and returns the fastest duration with the last result.
func bestOf[T numeric.Number](repeat int, fn func() (*matrix.Dense[T], error)) (time.Duration, *matrix.Dense[T], error) {
	var (
		best time.Duration
		out  *matrix.Dense[T]
	)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		m, err := fn()
		if err != nil {
			return 0, nil, err
		}
		if d := time.Since(start); i == 0 || d < best {
			best = d
		}
		out = m
	}

	return best, out, nil
}

func speedup(serial, pooled time.Duration) float64 {
	if pooled <= 0 {
		return 0
	}

	return float64(serial) / float64(pooled)
}
