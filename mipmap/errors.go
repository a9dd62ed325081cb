// SPDX-License-Identifier: MIT
// Package mipmap: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (level, pair index, operands) is attached with %w at the call site.
//   - Algorithms never panic on data-triggered conditions. MustNew is the one
//     deliberate exception and documents it.
//   - A missing level is not an error: Level reports it through its bool result.

package mipmap

import "errors"

var (
	// ErrOverflow indicates that the average of a pair could not be
	// represented in the element type T (e.g. two MaxInt64 values, whose
	// float64 mean rounds to 2^63). The pyramid is discarded rather than
	// returned with wrapped or truncated data.
	ErrOverflow = errors.New("mipmap: averaged value not representable in element type")

	// ErrOutOfRange indicates an element index outside a Level's bounds.
	// Level.At returns it instead of panicking.
	ErrOutOfRange = errors.New("mipmap: index out of range")
)
