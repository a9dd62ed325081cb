// SPDX-License-Identifier: MIT

package mipmap

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of a pyramid: every Go integer and
// floating-point type, including named types derived from them. All of
// them support addition and conversion to and from float64, which is what
// pairwise averaging needs.
type Number interface {
	constraints.Integer | constraints.Float
}

// MipMap stores every level of a 1-D pyramid, finest (index 0) to
// coarsest. The zero value is not usable; build one with New or MustNew.
//
// Invariants (established by New, never changed afterwards):
//   - levels[0] is an owned copy of the source.
//   - len(levels[k]) == ceil(len(levels[k-1]) / 2) for k ≥ 1.
//   - the last level has length ≤ 1 (0 only for an empty source).
type MipMap[T Number] struct {
	levels [][]T
}

// Level is a read-only view of one pyramid level.
//
// It holds a reference to storage owned by the MipMap, so obtaining a Level
// is O(1). None of its methods expose that storage for writing: Values and
// AppendTo copy, All yields elements by value.
type Level[T Number] struct {
	data []T
}

// Len returns the number of values in the level.
func (l Level[T]) Len() int {
	return len(l.data)
}

// At returns the i-th value of the level, or ErrOutOfRange.
func (l Level[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.data) {
		var zero T

		return zero, ErrOutOfRange
	}

	return l.data[i], nil
}

// Values returns a fresh copy of the level. The result is never nil, so an
// empty level compares equal to []T{}.
func (l Level[T]) Values() []T {
	out := make([]T, len(l.data))
	copy(out, l.data)

	return out
}

// AppendTo appends the level's values to dst and returns the extended slice.
// Use it to reuse a buffer across frames.
func (l Level[T]) AppendTo(dst []T) []T {
	return append(dst, l.data...)
}

// All iterates over (index, value) pairs in order.
func (l Level[T]) All() iter.Seq2[int, T] {
	return slices.All(l.data)
}
