// SPDX-License-Identifier: MIT

// Package signal generates deterministic synthetic 1-D series for demos,
// fixtures and benchmarks of multi-resolution pyramids.
//
// Generators:
//   - Pulse — rectangular or triangular pulse train.
//   - Chirp — linear frequency sweep f0 → f1.
//   - Ramp  — linear ramp 0, A, 2A, … (exact under pairwise averaging).
//
// Every generator accepts the same options (amplitude, trend, Gaussian
// noise, RNG) and is strictly deterministic per (n, seed, options).
// Invalid sizes return nil; option constructors panic on nonsensical values.
//
//	xs := signal.Chirp(1<<16, 42, signal.WithNoise(0.05))
//	mm := mipmap.MustNew(xs)
package signal
