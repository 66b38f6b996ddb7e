// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture synthesizes raster textures (stars, nebulae, planet
// surfaces) from seeded procedural recipes. All recipes share one
// pattern: a base fill, then layered procedurally-placed shapes whose
// position, size, opacity and color are independent seeded draws,
// composited with standard alpha-over.
//
// Synthesis is deterministic: the same recipe (including its seed) always
// produces an identical pixel buffer. Callers wanting reuse across frames
// cache the result keyed by recipe; no caching happens here.
package texture

import "errors"

// ErrTextureCreation indicates the destination raster surface could not
// be created (non-positive dimensions). Callers are expected to fall back
// to a flat-colored placeholder rather than fail the frame.
var ErrTextureCreation = errors.New("texture: cannot create raster surface")

// Recipe describes which texture to synthesize and how. The concrete
// types are [Star], [Nebula] and [Planet].
type Recipe interface {

	// Dims returns the raster dimensions in pixels.
	Dims() (width, height int)

	// draw renders the recipe onto the cleared raster.
	draw(r *Raster)
}

// Synthesize renders the given recipe into a new raster buffer. It is the
// single entry point for all texture kinds.
func Synthesize(rec Recipe) (*Raster, error) {
	w, h := rec.Dims()
	r, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}
	rec.draw(r)
	return r, nil
}
