// SPDX-License-Identifier: MIT

package mipmap_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mipmap1d/mipmap"
	"github.com/katalvlaran/mipmap1d/signal"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build the pyramid of a short, odd-length integer series.
//	  source = [2, 4, 6, 8, 9]
//
// Effect:
//
//	Pairs are averaged left to right; the trailing 9 passes through
//	unchanged until it finally pairs up at level 2.
//
// Complexity: O(N) time, O(N) memory
func ExampleNew() {
	mm, err := mipmap.New([]int{2, 4, 6, 8, 9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, lvl := range mm.Levels() {
		fmt.Printf("level %d: %v\n", i, lvl.Values())
	}
	_, ok := mm.Level(mm.NumLevels())
	fmt.Println("num_levels:", mm.NumLevels(), "past end present:", ok)
	// Output:
	// level 0: [2 4 6 8 9]
	// level 1: [3 7 9]
	// level 2: [5 9]
	// level 3: [7]
	// num_levels: 4 past end present: false
}

// ExampleMipMap_LevelFor picks the level to draw into a 64-pixel-wide
// viewport from a 10 000-sample chirp.
func ExampleMipMap_LevelFor() {
	mm := mipmap.MustNew(signal.Chirp(10_000, 1))

	idx, lvl, ok := mm.LevelFor(64)
	if !ok {
		return
	}
	lo, hi, _ := mm.Span(idx, 0)
	fmt.Printf("level=%d points=%d first point covers [%d,%d)\n", idx, lvl.Len(), lo, hi)
	// Output:
	// level=8 points=40 first point covers [0,256)
}

// ExampleNew_overflow shows the explicit failure on unrepresentable means.
func ExampleNew_overflow() {
	_, err := mipmap.New([]int64{math.MaxInt64, math.MaxInt64})
	fmt.Println(errors.Is(err, mipmap.ErrOverflow))
	// Output:
	// true
}
