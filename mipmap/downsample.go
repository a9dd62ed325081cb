// SPDX-License-Identifier: MIT

package mipmap

import "fmt"

// downsample halves src by averaging consecutive pairs, left to right.
//
// Algorithm:
//  1. out has ceil(n/2) slots.
//  2. For each pair (src[2j], src[2j+1]): out[j] = average(pair).
//  3. If n is odd, the trailing element is copied unchanged (no averaging).
//
// Callers only pass non-empty levels; New stops at length 1 and never
// downsamples an empty source.
//
// Errors:
//   - ErrOverflow (wrapped with the pair index and operands).
//
// Complexity: O(n) time, O(n/2) memory.
func downsample[T Number](d numericDomain, src []T) ([]T, error) {
	n := len(src)
	out := make([]T, (n+1)/2)

	for i := 0; i+1 < n; i += 2 {
		v, ok := average(d, src[i], src[i+1])
		if !ok {
			return nil, fmt.Errorf("pair %d (%v, %v): %w", i/2, src[i], src[i+1], ErrOverflow)
		}
		out[i/2] = v
	}

	// Lone trailing element passes through.
	if n%2 == 1 {
		out[len(out)-1] = src[n-1]
	}

	return out, nil
}
