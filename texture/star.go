// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image/color"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// Star is a glow sprite: a single radial gradient from a fully opaque
// core fading to transparent at the texture edge. It is fully determined
// by its parameters; no seeded draws are involved.
type Star struct {

	// Size is the square texture edge length in pixels.
	Size int

	// Color is the core color of the star.
	Color color.NRGBA

	// Intensity in [0, 1] controls how far the glow carries before
	// fading; the core stays fully opaque regardless.
	Intensity float32
}

func (s Star) Dims() (int, int) {
	return s.Size, s.Size
}

func (s Star) draw(r *Raster) {
	half := float32(s.Size) / 2
	glow := math32.Clamp(s.Intensity, 0, 1)
	stops := []Stop{
		{Color: s.Color, Opacity: 1, Pos: 0},
		{Color: s.Color, Opacity: 1, Pos: 0.08},
		{Color: s.Color, Opacity: 0.55 * glow, Pos: 0.35},
		{Color: s.Color, Opacity: 0.15 * glow, Pos: 0.7},
		{Color: s.Color, Opacity: 0, Pos: 1},
	}
	r.FillRadialGradient(half, half, half, stops)
}
