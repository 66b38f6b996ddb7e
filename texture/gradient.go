// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image/color"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// Stop represents a single stop in a gradient.
type Stop struct {

	// Color is the stop color. It should be fully opaque, with opacity
	// specified separately, for best results.
	Color color.NRGBA

	// Opacity is the 0-1 level of opacity for this stop.
	Opacity float32

	// Pos is the position of the stop between 0 and 1.
	Pos float32
}

// opacityColor returns the stop color with its opacity applied.
func (st Stop) opacityColor() color.NRGBA {
	c := st.Color
	c.A = uint8(math32.Clamp(st.Opacity, 0, 1) * float32(c.A))
	return c
}

// colorAt returns the color at the given normalized position along the
// stops, blending linearly between adjacent stops and padding with the
// end stops beyond them. Stops must be ordered by Pos.
func colorAt(stops []Stop, pos float32) color.NRGBA {
	d := len(stops)
	if pos <= stops[0].Pos {
		return stops[0].opacityColor()
	}
	if pos >= stops[d-1].Pos {
		return stops[d-1].opacityColor()
	}
	place := 0
	for place != d && pos > stops[place].Pos {
		place++
	}
	s1, s2 := stops[place-1], stops[place]
	if s2.Pos == s1.Pos {
		return s2.opacityColor()
	}
	t := (pos - s1.Pos) / (s2.Pos - s1.Pos)
	c := color.NRGBA{
		R: uint8(math32.Lerp(float32(s1.Color.R), float32(s2.Color.R), t)),
		G: uint8(math32.Lerp(float32(s1.Color.G), float32(s2.Color.G), t)),
		B: uint8(math32.Lerp(float32(s1.Color.B), float32(s2.Color.B), t)),
		A: uint8(math32.Lerp(float32(s1.Color.A), float32(s2.Color.A), t)),
	}
	op := math32.Lerp(s1.Opacity, s2.Opacity, t)
	c.A = uint8(math32.Clamp(op, 0, 1) * float32(c.A))
	return c
}
