// SPDX-License-Identifier: MIT

// Command densebench times dense matrix products with and without a worker
// pool and checks that both paths agree.
//
// Usage:
//
//	densebench [-config densebench.yaml] [-env .env] [-threads N] [-log-level debug]
//	densebench -demo
//	densebench -fixtures testdata/cases
//
// Configuration precedence, lowest first: built-in defaults, the YAML file,
// DENSEMAT_* variables (a .env file is loaded into the environment first),
// then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/katalvlaran/densemat/config"
	"github.com/katalvlaran/densemat/threadpool"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "densebench:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("densebench", flag.ContinueOnError)
	var (
		cfgPath  = flags.String("config", "", "YAML configuration file (optional)")
		envFile  = flags.String("env", ".env", "dotenv file loaded into the environment; a missing file is ignored")
		threads  = flags.Int("threads", -1, "worker count override (0 = all CPUs)")
		logLevel = flags.String("log-level", "", "log level override (debug, info, warn, error)")
		demo     = flags.Bool("demo", false, "print the demonstration products and exit")
		fixtures = flags.String("fixtures", "", "verify every multiplication case in this directory and exit")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *threads >= 0 {
		cfg.Threads = *threads
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof))
	defer undo()
	if err != nil {
		logger.Warn("densebench: GOMAXPROCS left unchanged", zap.Error(err))
	}

	if *demo {
		return runDemo(stdout)
	}

	n := cfg.Threads
	if n == 0 {
		n = threadpool.HardwareConcurrency()
	}
	pool, err := threadpool.New(n,
		threadpool.WithLogger(logger.Named("pool")),
		threadpool.WithDrainOnStop(cfg.DrainOnStop),
	)
	if err != nil {
		return err
	}
	defer pool.Stop()
	logger.Info("densebench: pool started", zap.Int("threads", pool.ThreadCount()))

	if *fixtures != "" {
		return verifyFixtures(ctx, stdout, *fixtures, pool, cfg, logger)
	}

	return runBenchmarks(stdout, pool, cfg, logger)
}

// newLogger builds a production zap logger at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
