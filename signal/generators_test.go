// SPDX-License-Identifier: MIT

package signal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mipmap1d/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_InvalidSize verifies the nil-on-invalid contract.
func TestGenerators_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		assert.Nil(t, signal.Pulse(n, 1), "Pulse n=%d", n)
		assert.Nil(t, signal.Chirp(n, 1), "Chirp n=%d", n)
		assert.Nil(t, signal.Ramp(n, 1), "Ramp n=%d", n)
	}
}

// TestPulse_RectangularDefaults checks the first period with defaults
// (f0 = 1/8, duty = 0.5, A = 1).
func TestPulse_RectangularDefaults(t *testing.T) {
	got := signal.Pulse(8, 1)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, got)
}

// TestPulse_Triangular checks the triangular envelope over one period.
func TestPulse_Triangular(t *testing.T) {
	got := signal.Pulse(4, 1, signal.WithTriangular(), signal.WithFrequency(0.25), signal.WithAmplitude(2))
	assert.InDeltaSlice(t, []float64{0, 1, 2, 1}, got, 1e-12)
}

// TestPulse_Duty checks a narrow duty cycle.
func TestPulse_Duty(t *testing.T) {
	got := signal.Pulse(8, 1, signal.WithDuty(0.25))
	assert.Equal(t, []float64{1, 1, 0, 0, 0, 0, 0, 0}, got)
}

// TestChirp_Bounded checks amplitude bounds and length.
func TestChirp_Bounded(t *testing.T) {
	got := signal.Chirp(512, 1, signal.WithAmplitude(3), signal.WithSweep(0.01, 0.1))
	require.Len(t, got, 512)
	for i, v := range got {
		assert.LessOrEqual(t, math.Abs(v), 3.0+1e-12, "sample %d", i)
	}

	one := signal.Chirp(1, 1)
	require.Len(t, one, 1)
	assert.InDelta(t, math.Sin(2*math.Pi*0.02), one[0], 1e-12)
}

// TestRamp_TrendAndAmplitude checks the exact ramp with a trend.
func TestRamp_TrendAndAmplitude(t *testing.T) {
	got := signal.Ramp(4, 0, signal.WithAmplitude(2), signal.WithTrend(0.5))
	assert.Equal(t, []float64{0, 2.5, 5, 7.5}, got)
}

// TestNoise_Deterministic checks that noise depends only on the seed or
// the supplied RNG stream.
func TestNoise_Deterministic(t *testing.T) {
	a := signal.Ramp(64, 9, signal.WithNoise(0.5))
	b := signal.Ramp(64, 9, signal.WithNoise(0.5))
	c := signal.Ramp(64, 10, signal.WithNoise(0.5))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// An explicit RNG overrides the seed argument.
	x := signal.Ramp(16, 1, signal.WithNoise(1), signal.WithRand(rand.New(rand.NewSource(5))))
	y := signal.Ramp(16, 2, signal.WithNoise(1), signal.WithRand(rand.New(rand.NewSource(5))))
	assert.Equal(t, x, y)

	// Zero sigma leaves the waveform untouched.
	assert.Equal(t, signal.Ramp(8, 0), signal.Ramp(8, 99, signal.WithNoise(0)))
}

// TestOptions_PanicOnNonsense verifies option validation.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { signal.WithAmplitude(0) })
	assert.Panics(t, func() { signal.WithAmplitude(math.NaN()) })
	assert.Panics(t, func() { signal.WithNoise(-1) })
	assert.Panics(t, func() { signal.WithFrequency(0) })
	assert.Panics(t, func() { signal.WithDuty(1.5) })
	assert.Panics(t, func() { signal.WithSweep(0.1, -0.1) })
	assert.Panics(t, func() { signal.WithTrend(math.Inf(1)) })
	assert.Panics(t, func() { signal.WithRand(nil) })
	assert.NotPanics(t, func() { signal.WithDuty(0) })
}
