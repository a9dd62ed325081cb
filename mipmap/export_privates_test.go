// SPDX-License-Identifier: MIT

package mipmap

// Test bridge: exposes the private downsampling kernel and numeric helpers
// to the external mipmap_test package without widening the public API.
// Compiled only with `go test`.

// DownsampleTestOnly runs one downsampling step over src.
func DownsampleTestOnly[T Number](src []T) ([]T, error) {
	return downsample(domainOf[T](), src)
}

// AverageTestOnly averages a pair exactly as New does.
func AverageTestOnly[T Number](a, b T) (T, bool) {
	return average(domainOf[T](), a, b)
}

// LevelCountTestOnly exposes the ceil(log2(n))+1 capacity helper.
func LevelCountTestOnly(n int) int {
	return levelCount(n)
}
