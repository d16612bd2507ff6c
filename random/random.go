// SPDX-License-Identifier: MIT

// Package random produces pseudo-random values of any numeric.Number type
// within an inclusive range.
//
// Two families are offered:
//   - Uniform: statistically uniform draws from a ChaCha8 stream seeded from
//     OS entropy. The shared source is mutex-guarded.
//   - Fast: cheap draws from the runtime generator using a plain
//     scale/modulo reduction. Lower quality, no shared lock, safe as the
//     default generator for parallel matrix fills.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/katalvlaran/densemat/numeric"
)

const panicBadRange = "random: min must not exceed max"

// Source is a goroutine-safe uniform generator.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a deterministic Source for reproducible fixtures.
func NewSource(seed uint64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	return &Source{rng: rand.New(rand.NewChaCha8(key))}
}

// NewEntropySource returns a Source seeded from the operating system.
func NewEntropySource() *Source {
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic("random: reading OS entropy: " + err.Error())
	}

	return &Source{rng: rand.New(rand.NewChaCha8(key))}
}

// uint64n draws uniformly from [0, n]; n == MaxUint64 covers the full range.
func (s *Source) uint64n(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n == math.MaxUint64 {
		return s.rng.Uint64()
	}

	return s.rng.Uint64N(n + 1)
}

// unit draws from the closed interval [0, 1].
func (s *Source) unit() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return float64(s.rng.Uint64()>>11) / float64(1<<53-1)
}

var shared = NewEntropySource()

// Uniform returns a uniformly distributed value in [min, max] drawn from the
// package-level entropy-seeded source.
// Panics when min > max.
func Uniform[T numeric.Number](min, max T) T {
	return UniformFrom(shared, min, max)
}

// UniformFrom is Uniform over an explicit Source.
// Implementation:
//   - Stage 1: validate min <= max.
//   - Stage 2: floats scale a closed unit draw; integers draw an offset in
//     [0, max-min] computed in uint64 two's complement, which is exact for
//     signed and unsigned types alike.
//
// Complexity:
//   - Time O(1), Space O(1).
func UniformFrom[T numeric.Number](s *Source, min, max T) T {
	if min > max {
		panic(panicBadRange)
	}
	if numeric.IsFloat[T]() {
		lo, hi := float64(min), float64(max)

		return T(lo + s.unit()*(hi-lo))
	}
	span := uint64(max) - uint64(min)

	return min + T(s.uint64n(span))
}

// Fast returns a value in [min, max] from the runtime generator.
// Floats: min + raw/(rawMax/(max-min)). Integers: min + raw%(max-min+1).
// Panics when min > max.
func Fast[T numeric.Number](min, max T) T {
	if min > max {
		panic(panicBadRange)
	}
	raw := rand.Uint64()
	if numeric.IsFloat[T]() {
		width := float64(max) - float64(min)
		if width == 0 {
			return min
		}

		return min + T(float64(raw)/(float64(math.MaxUint64)/width))
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return min + T(raw)
	}

	return min + T(raw%(span+1))
}

// UniformGen returns a generator bound to [min, max] for matrix.NewRandom.
func UniformGen[T numeric.Number](min, max T) func() T {
	return func() T { return Uniform(min, max) }
}

// FastGen returns a Fast generator bound to [min, max] for matrix.NewRandom.
func FastGen[T numeric.Number](min, max T) func() T {
	if min > max {
		panic(panicBadRange)
	}

	return func() T { return Fast(min, max) }
}

// SourceGen returns a generator drawing from s; useful for reproducible fills.
// Parallel fills interleave draws across workers, so only serial fills are
// reproducible element by element.
func SourceGen[T numeric.Number](s *Source, min, max T) func() T {
	if min > max {
		panic(panicBadRange)
	}

	return func() T { return UniformFrom(s, min, max) }
}
