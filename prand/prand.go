// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prand provides the deterministic seeded draw primitive that
// everything procedural in this module is generated from.
//
// Unlike a stateful random number generator, a draw is a pure function of
// (seed, offset): the same pair always produces the same value, regardless
// of call order, process, or platform. That property is what makes an
// entire generated scene replayable from a single seed. Callers are
// responsible for choosing offsets that do not alias between logically
// distinct draws, typically by striding an index (i*10, i*10+1, ...) or by
// reserving additive offset bands (+1000, +2000, ...) per draw population.
package prand

import "math"

// Draw returns a deterministic pseudo-random value in [min, max) for the
// given seed and offset. It is pure and total for all finite inputs.
func Draw(seed, offset, min, max float64) float64 {
	x := math.Sin(seed+offset) * 10000
	return min + (x-math.Floor(x))*(max-min)
}

// Source carries a seed for a generation run. It holds no other state:
// all methods are pure functions of the seed and the given offset.
type Source struct {
	Seed float64
}

// NewSource returns a Source for the given seed.
func NewSource(seed float64) Source {
	return Source{Seed: seed}
}

// Draw returns a value in [min, max) for the given offset.
func (s Source) Draw(offset, min, max float64) float64 {
	return Draw(s.Seed, offset, min, max)
}

// Float returns a value in [0, 1) for the given offset.
func (s Source) Float(offset float64) float64 {
	return Draw(s.Seed, offset, 0, 1)
}

// Float32 returns a float32 value in [min, max) for the given offset.
func (s Source) Float32(offset, min, max float64) float32 {
	return float32(Draw(s.Seed, offset, min, max))
}

// Derive returns a child Source whose seed is offset by stride from this
// one, for giving sub-generators (e.g., per-instance meshes) their own
// reproducible seed space.
func (s Source) Derive(stride float64) Source {
	return Source{Seed: s.Seed + stride}
}
