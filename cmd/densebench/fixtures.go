// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/densemat/config"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrixio"
	"github.com/katalvlaran/densemat/threadpool"
)

// verifyFixtures checks every stored product of dir against Mul, serially and
// through pool. Fixtures are single precision, so they are read as float32.
func verifyFixtures(ctx context.Context, w io.Writer, dir string, pool *threadpool.Pool, cfg *config.Config, log *zap.Logger) error {
	square, random, err := matrixio.LoadCases[float32](ctx, dir)
	if err != nil {
		return err
	}

	opts := []matrix.Option{matrix.WithPool(pool), matrix.WithMinOpsPerThread(cfg.MinOpsPerThread)}
	var failed int
	for _, c := range append(square, random...) {
		serial, err := matrix.Mul(c.A, c.B)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		par, err := matrix.Mul(c.A, c.B, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		ok := matrix.Equal(serial, c.C, matrix.WithEpsilonFactor(fixtureEpsFactor(c.A.Cols()))) && matrix.Equal(serial, par)
		if !ok {
			failed++
			log.Warn("densebench: fixture mismatch", zap.String("case", c.Name))
		}
		fmt.Fprintf(w, "%-16s %dx%d * %dx%d  %s\n", c.Name, c.A.Rows(), c.A.Cols(), c.B.Rows(), c.B.Cols(), verdict(ok))
	}
	fmt.Fprintf(w, "%d cases, %d failed\n", len(square)+len(random), failed)
	if failed > 0 {
		return fmt.Errorf("densebench: %d fixture cases failed", failed)
	}

	return nil
}

// fixtureEpsFactor scales the tolerance with the number of summed terms.
func fixtureEpsFactor(inner int) float64 {
	return matrix.DefaultEpsilonFactor * float64(inner+1)
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}

	return "FAIL"
}
