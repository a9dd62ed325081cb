// SPDX-License-Identifier: MIT

// Package mipmap builds multi-resolution pyramids ("mipmaps") of
// one-dimensional numeric series.
//
// 🚀 What is a 1-D mipmap?
//
//	A stack of progressively coarser copies of a series. Level 0 is the
//	source itself; every following level halves the previous one by
//	averaging neighbouring pairs, until a single value remains:
//
//	  level 0: [2 4 6 8 9]
//	  level 1: [3 7 9]      (2+4)/2, (6+8)/2, 9 passes through
//	  level 2: [5 9]
//	  level 3: [7]
//
//	All levels are computed once, eagerly, so a renderer that zooms in and
//	out of a long time-series can pick a resolution in O(1) instead of
//	re-reducing the data on every frame.
//
// ✨ Key features:
//   - generic over every Go integer and float type (Number)
//   - eager construction: O(N) time, ≤ 2N stored values
//   - read-only Level views; the pyramid never aliases caller memory
//   - explicit overflow detection (ErrOverflow) instead of silent wrap-around
//   - zoom helpers: LevelFor(maxPoints) and Span(level, i)
//
// ⚙️ Usage:
//
//	mm, err := mipmap.New([]int{2, 4, 6, 8, 9})
//	if err != nil {
//	  // errors.Is(err, mipmap.ErrOverflow)
//	}
//	lvl, ok := mm.Level(1) // [3 7 9], true
//	_, ok = mm.Level(mm.NumLevels()) // false: one past the end is absent
//
// Concurrency:
//
//	Construction is single-threaded. A built *MipMap is never mutated, so
//	any number of goroutines may read it without locking.
//
// Performance:
//
//   - Build:  O(N) time, O(N) memory (geometric series N + N/2 + …).
//   - Lookup: O(1).
package mipmap
