// Package densemat is a dense matrix engine whose products and bulk fills can
// be spread across a shared, fixed-size worker pool.
//
// What is densemat?
//
//	A small, generic library that brings together:
//		• numeric/    – the Number constraint, machine epsilon, tolerance equality
//		• random/     – uniform and fast value generators, seeded sources
//		• threadpool/ – fixed workers over one FIFO queue, futures, abrupt or draining Stop
//		• matrix/     – Dense[T] in RowMajor or ColumnMajor layout, Mul/Add/Sub/Equal
//		• matrixio/   – numpy savetxt fixtures and multiplication test cases
//		• config/     – YAML, .env and environment driven benchmark settings
//
// Parallelism is always explicit: pass matrix.WithPool(p) to NewRandom or
// Mul. Work below the minimum-work threshold stays on the calling goroutine;
// larger work is split into disjoint row or index ranges, the caller computes
// the remainder, and every chunk is awaited before the call returns.
//
// Quick start:
//
//	pool, _ := threadpool.New(4)
//	defer pool.Stop()
//
//	a, _ := matrix.NewUniform(512, 512, -1.0, 1.0, matrix.WithPool(pool))
//	b, _ := matrix.NewUniform(512, 512, -1.0, 1.0, matrix.WithPool(pool))
//	c, _ := matrix.Mul(a, b, matrix.WithPool(pool))
//	fmt.Println(c.Rows(), c.Cols())
//
// The densebench command (cmd/densebench) times products with and without a
// pool; the examples/ directory holds runnable scenarios.
package densemat
