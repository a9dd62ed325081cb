// SPDX-License-Identifier: MIT
// Package: mipmap1d/signal
//
// generators.go — deterministic pulse, chirp and ramp generators.
//
// Contract:
//   • Every generator returns a slice of length n, or nil when n < 1.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.
//   • Trend and noise are applied after the base waveform, in that order.

package signal

import (
	"math"
)

const tau = 2.0 * math.Pi

// Pulse returns a length-n pulse train.
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2·frac − 1| (no trig).
//
// Complexity: O(n) time, O(n) memory.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1).
		frac = math.Mod(float64(i)*c.freq, 1.0)

		if c.triangular {
			base = c.amplitude * (1.0 - math.Abs(2.0*frac-1.0))
		} else if frac < c.duty {
			base = c.amplitude
		} else {
			base = 0
		}
		out[i] = base
	}
	c.finish(out, seed)

	return out
}

// Chirp returns a length-n linear chirp whose frequency sweeps from the
// start to the end frequency:
//   - fᵢ   = f0 + (f1 − f0)·i/(n−1)
//   - θᵢ₊₁ = θᵢ + τ·fᵢ
//   - yᵢ   = A·sin(θᵢ)
//
// Complexity: O(n) time, O(n) memory.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)

	out := make([]float64, n)
	theta := 0.0
	var t float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (c.sweepFrom + (c.sweepTo-c.sweepFrom)*t)
		out[i] = c.amplitude * math.Sin(theta)
	}
	c.finish(out, seed)

	return out
}

// Ramp returns 0, A, 2A, …, (n−1)A. Pairwise means of a ramp are exact in
// float64, which makes it the reference fixture for pyramid tests.
func Ramp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)

	out := make([]float64, n)
	for i := range out {
		out[i] = c.amplitude * float64(i)
	}
	c.finish(out, seed)

	return out
}

// finish adds the linear trend and, when enabled, Gaussian noise in place.
func (c config) finish(out []float64, seed int64) {
	if c.trend != 0 {
		for i := range out {
			out[i] += c.trend * float64(i)
		}
	}
	if c.noiseSigma > 0 {
		rng := c.rngFor(seed)
		for i := range out {
			out[i] += c.noiseSigma * rng.NormFloat64()
		}
	}
}
