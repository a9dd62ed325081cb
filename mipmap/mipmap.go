// SPDX-License-Identifier: MIT

package mipmap

import (
	"fmt"
	"iter"
	"math/bits"
)

// New builds the full pyramid of source.
//
// Algorithm:
//  1. levels[0] = copy(source); the caller's slice is never aliased.
//  2. While the newest level has more than one value, append
//     downsample(newest).
//  3. An empty source yields a single empty level; downsampling is never
//     invoked on it.
//
// The result is deterministic: equal inputs give equal pyramids.
//
// Errors:
//   - ErrOverflow — an averaged value did not fit T. No partial pyramid is
//     returned.
//
// Complexity: O(N) time, O(N) memory (N + N/2 + N/4 + … ≤ 2N values).
func New[T Number](source []T, opts ...Option) (*MipMap[T], error) {
	o := gatherOptions(opts...)
	d := domainOf[T]()

	levels := make([][]T, 0, levelCount(len(source)))
	base := make([]T, len(source))
	copy(base, source)
	levels = append(levels, base)

	for cur := base; len(cur) > 1; {
		next, err := downsample(d, cur)
		if err != nil {
			o.logger.Error().
				Err(err).
				Int("at_level", len(levels)).
				Int("source_len", len(source)).
				Msg("mipmap build aborted")

			return nil, fmt.Errorf("build level %d: %w", len(levels), err)
		}
		levels = append(levels, next)
		cur = next
	}

	o.logger.Debug().
		Int("source_len", len(source)).
		Int("levels", len(levels)).
		Msg("mipmap built")

	return &MipMap[T]{levels: levels}, nil
}

// MustNew is like New but panics when construction fails. Use it when the
// element type is wide enough that overflow indicates a programming error.
func MustNew[T Number](source []T, opts ...Option) *MipMap[T] {
	m, err := New(source, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// levelCount returns ceil(log2(n)) + 1, with one level for n ≤ 1.
func levelCount(n int) int {
	if n <= 1 {
		return 1
	}

	return bits.Len(uint(n-1)) + 1
}

// NumLevels returns the number of stored levels.
func (m *MipMap[T]) NumLevels() int {
	return len(m.levels)
}

// Len returns the length of level 0, i.e. of the source series.
func (m *MipMap[T]) Len() int {
	return len(m.levels[0])
}

// Level returns the level at index, 0 being the source resolution.
// ok is false for index < 0 or index >= NumLevels(); one past the end is
// absent, not a fault.
func (m *MipMap[T]) Level(index int) (Level[T], bool) {
	if index < 0 || index >= len(m.levels) {
		return Level[T]{}, false
	}

	return Level[T]{data: m.levels[index]}, true
}

// Coarsest returns the terminal level (a single value, or empty for an
// empty source).
func (m *MipMap[T]) Coarsest() Level[T] {
	return Level[T]{data: m.levels[len(m.levels)-1]}
}

// Levels iterates over all levels, finest to coarsest.
func (m *MipMap[T]) Levels() iter.Seq2[int, Level[T]] {
	return func(yield func(int, Level[T]) bool) {
		for i, data := range m.levels {
			if !yield(i, Level[T]{data: data}) {
				return
			}
		}
	}
}

// LevelFor returns the finest level holding at most maxPoints values,
// e.g. the level to draw into a viewport maxPoints pixels wide.
// ok is false when maxPoints < 1.
//
// Complexity: O(log N).
func (m *MipMap[T]) LevelFor(maxPoints int) (index int, level Level[T], ok bool) {
	if maxPoints < 1 {
		return 0, Level[T]{}, false
	}
	for i, data := range m.levels {
		if len(data) <= maxPoints {
			return i, Level[T]{data: data}, true
		}
	}

	// Unreachable: the coarsest level has at most one value.
	return 0, Level[T]{}, false
}

// Span returns the half-open range [lo, hi) of source indices summarized by
// element i of the given level. Pairing is aligned, so element i of level k
// covers source indices [i·2^k, (i+1)·2^k), clipped to Len().
// ok is false when level or i is out of range.
func (m *MipMap[T]) Span(level, i int) (lo, hi int, ok bool) {
	if level < 0 || level >= len(m.levels) || i < 0 || i >= len(m.levels[level]) {
		return 0, 0, false
	}
	lo = i << level
	hi = min((i+1)<<level, m.Len())

	return lo, hi, true
}
