// SPDX-License-Identifier: MIT

package mipmap_test

import (
	"testing"

	"github.com/katalvlaran/mipmap1d/mipmap"
	"github.com/katalvlaran/mipmap1d/signal"
)

// benchmarkNew builds pyramids over a chirp of n samples converted to T.
// The conversion happens before the timer is reset.
func benchmarkNew[T mipmap.Number](b *testing.B, n int) {
	raw := signal.Chirp(n, 42, signal.WithAmplitude(100))
	src := make([]T, n)
	for i, v := range raw {
		src[i] = T(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mipmap.New(src); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Float64_1K builds a 1 024-sample float64 pyramid.
func BenchmarkNew_Float64_1K(b *testing.B) { benchmarkNew[float64](b, 1<<10) }

// BenchmarkNew_Float64_1M builds a 1 048 576-sample float64 pyramid.
func BenchmarkNew_Float64_1M(b *testing.B) { benchmarkNew[float64](b, 1<<20) }

// BenchmarkNew_Int32_1M builds a 1 048 576-sample int32 pyramid (rounding path).
func BenchmarkNew_Int32_1M(b *testing.B) { benchmarkNew[int32](b, 1<<20) }

// BenchmarkLevelFor measures zoom selection on a built pyramid.
func BenchmarkLevelFor(b *testing.B) {
	mm := mipmap.MustNew(signal.Ramp(1<<20, 0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, ok := mm.LevelFor(1920); !ok {
			b.Fatal("LevelFor must succeed")
		}
	}
}
