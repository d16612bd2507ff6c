// SPDX-License-Identifier: MIT

// Package config holds the settings of the densebench driver: worker count,
// problem sizes, element type and layout, dispatch threshold and logging.
//
// Precedence, lowest first: Default() → YAML file → DENSEMAT_* environment.
// Binaries load .env files (godotenv) before calling Load, so values from a
// .env file behave like real environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densemat/matrix"
)

// Environment variable names.
const (
	EnvThreads     = "DENSEMAT_THREADS"
	EnvSizes       = "DENSEMAT_SIZES"
	EnvLayout      = "DENSEMAT_LAYOUT"
	EnvElement     = "DENSEMAT_ELEMENT"
	EnvMinOps      = "DENSEMAT_MIN_OPS"
	EnvRepeat      = "DENSEMAT_REPEAT"
	EnvDrainOnStop = "DENSEMAT_DRAIN_ON_STOP"
	EnvLogLevel    = "DENSEMAT_LOG_LEVEL"
)

// Supported element types.
const (
	ElementFloat32 = "float32"
	ElementFloat64 = "float64"
	ElementInt32   = "int32"
	ElementInt64   = "int64"
)

// ErrInvalidConfig is returned by Validate and by malformed overrides.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the benchmark configuration.
type Config struct {
	Threads         int    `yaml:"threads"`
	Sizes           []int  `yaml:"sizes"`
	Layout          string `yaml:"layout"`
	Element         string `yaml:"element"`
	MinOpsPerThread int    `yaml:"min_ops_per_thread"`
	Repeat          int    `yaml:"repeat"`
	DrainOnStop     bool   `yaml:"drain_on_stop"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the built-in configuration. Threads 0 means one worker per
// available CPU.
func Default() *Config {
	return &Config{
		Threads:         0,
		Sizes:           []int{64, 128, 256, 512},
		Layout:          matrix.RowMajor.String(),
		Element:         ElementFloat64,
		MinOpsPerThread: matrix.DefaultMinOpsPerThread,
		Repeat:          3,
		DrainOnStop:     false,
		LogLevel:        "info",
	}
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment overrides, then validates it.
// A missing file is an error: an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from DENSEMAT_* variables that are set and
// non-empty. Sizes is a comma separated list.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup(EnvThreads); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr(EnvThreads, v, err)
		}
		c.Threads = n
	}
	if v, ok := lookup(EnvSizes); ok {
		sizes, err := parseSizes(v)
		if err != nil {
			return envErr(EnvSizes, v, err)
		}
		c.Sizes = sizes
	}
	if v, ok := lookup(EnvLayout); ok {
		c.Layout = v
	}
	if v, ok := lookup(EnvElement); ok {
		c.Element = v
	}
	if v, ok := lookup(EnvMinOps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr(EnvMinOps, v, err)
		}
		c.MinOpsPerThread = n
	}
	if v, ok := lookup(EnvRepeat); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr(EnvRepeat, v, err)
		}
		c.Repeat = n
	}
	if v, ok := lookup(EnvDrainOnStop); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envErr(EnvDrainOnStop, v, err)
		}
		c.DrainOnStop = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}

	return nil
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0 (0 = all CPUs), got %d", ErrInvalidConfig, c.Threads)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: sizes must be >= 1, got %d", ErrInvalidConfig, n)
		}
	}
	if _, err := c.MatrixLayout(); err != nil {
		return err
	}
	switch c.Element {
	case ElementFloat32, ElementFloat64, ElementInt32, ElementInt64:
	default:
		return fmt.Errorf("%w: element %q (want float32, float64, int32 or int64)", ErrInvalidConfig, c.Element)
	}
	if c.MinOpsPerThread < 1 {
		return fmt.Errorf("%w: min_ops_per_thread must be >= 1, got %d", ErrInvalidConfig, c.MinOpsPerThread)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be >= 1, got %d", ErrInvalidConfig, c.Repeat)
	}
	if _, err := c.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// MatrixLayout maps Layout ("RowMajor"/"ColumnMajor", case-insensitive) to
// matrix.Layout.
func (c *Config) MatrixLayout() (matrix.Layout, error) {
	for _, l := range []matrix.Layout{matrix.RowMajor, matrix.ColumnMajor} {
		if strings.EqualFold(c.Layout, l.String()) {
			return l, nil
		}
	}

	return 0, fmt.Errorf("%w: layout %q (want RowMajor or ColumnMajor)", ErrInvalidConfig, c.Layout)
}

// ZapLevel parses LogLevel.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return lvl, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}

func envErr(key, val string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, val, err)
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}
