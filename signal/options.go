// SPDX-License-Identifier: MIT
// Package: mipmap1d/signal
//
// options.go — functional options shared by every generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: noise draws come from WithRand, or from the
//     seed passed to the generator.

package signal

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating its config before sampling.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config holds all knobs resolved for a generator call.
type config struct {
	rng        *rand.Rand // shared stream; nil ⇒ rand.New(seed)
	amplitude  float64    // > 0
	trend      float64    // linear increment per sample
	noiseSigma float64    // ≥ 0; 0 disables noise
	freq       float64    // pulse base frequency, cycles/sample > 0
	duty       float64    // pulse duty cycle in [0,1]
	triangular bool       // pulse shape
	sweepFrom  float64    // chirp start frequency > 0
	sweepTo    float64    // chirp end frequency > 0
}

// Defaults (single source of truth for zero-option behavior).
const (
	defaultAmplitude = 1.0
	defaultTrend     = 0.0
	defaultNoise     = 0.0
	defaultFreq      = 0.125 // period ≈ 8 samples
	defaultDuty      = 0.5
	defaultSweepFrom = 0.02
	defaultSweepTo   = 0.25
)

func newConfig(opts ...Option) config {
	c := config{
		amplitude:  defaultAmplitude,
		trend:      defaultTrend,
		noiseSigma: defaultNoise,
		freq:       defaultFreq,
		duty:       defaultDuty,
		sweepFrom:  defaultSweepFrom,
		sweepTo:    defaultSweepTo,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// rngFor returns c.rng if present (shared stream), else a local rand
// seeded by seed.
func (c config) rngFor(seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithRand provides an explicit RNG for noise draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithAmplitude sets the amplitude A (>0). Panics on A<=0, NaN or Inf.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("signal: WithAmplitude(A<=0)")
	}

	return func(c *config) {
		c.amplitude = a
	}
}

// WithTrend adds k*i to sample i.
func WithTrend(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("signal: WithTrend(non-finite)")
	}

	return func(c *config) {
		c.trend = k
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma (>=0).
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("signal: WithNoise(sigma<0)")
	}

	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithFrequency sets the pulse base frequency in cycles/sample (>0).
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("signal: WithFrequency(f<=0)")
	}

	return func(c *config) {
		c.freq = f
	}
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(duty float64) Option {
	if !(duty >= 0 && duty <= 1) {
		panic("signal: WithDuty(duty∉[0,1])")
	}

	return func(c *config) {
		c.duty = duty
	}
}

// WithTriangular switches Pulse to a triangular shape.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithSweep sets the chirp start and end frequencies (both >0).
func WithSweep(from, to float64) Option {
	if !(from > 0) || !(to > 0) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		panic("signal: WithSweep(f<=0)")
	}

	return func(c *config) {
		c.sweepFrom = from
		c.sweepTo = to
	}
}
