// Package mipmap1d is a small toolkit for multi-resolution views of long
// one-dimensional numeric series: build the pyramid once, then read any
// zoom level in O(1).
//
// 🚀 What is mipmap1d?
//
//	A generic, zero-surprise library around a single data structure:
//		• mipmap/ — the pyramid: eager pairwise-average levels, read-only
//		  Level views, zoom helpers (LevelFor, Span), ErrOverflow detection
//		• signal/ — deterministic pulse, chirp and ramp generators for
//		  fixtures, demos and benchmarks
//		• cmd/mipmap — command-line front end (flags + YAML config)
//
// ✨ Why a 1-D mipmap?
//
//   - Rendering a million-sample series into a 1920-pixel chart needs a
//     few thousand points, not a million.
//   - Reductions are computed once: O(N) build, ≤ 2N values stored.
//   - Works over every Go integer and float type via generics.
//
// Quick ASCII example:
//
//	level 0:  2 4 6 8 9
//	level 1:   3   7   9
//	level 2:     5     9
//	level 3:        7
//
//	go get github.com/katalvlaran/mipmap1d/mipmap
package mipmap1d
