// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image/color"

	"github.com/anthonynsimon/bild/blur"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/prand"
)

// Draw offsets for the nebula shape populations start at nebulaBandStart;
// within a band each shape strides by nebulaShapeStride. Band widths are
// sized to the population counts, see nebulaBands.
const (
	nebulaBandStart   = 1000
	nebulaShapeStride = 10
)

// Nebula is a cloudy emission texture: two populations of soft
// semi-transparent circles over black, plus a sparse population of bright
// point stars.
type Nebula struct {

	// Size is the square texture edge length in pixels.
	Size int

	// Primary is the color of the large base clouds.
	Primary color.NRGBA

	// Secondary is the color of the smaller, more numerous detail clouds.
	Secondary color.NRGBA

	// Density scales cloud counts; 1 is the nominal density.
	Density float32

	// Seed determines every shape placement.
	Seed float64
}

func (n Nebula) Dims() (int, int) {
	return n.Size, n.Size
}

func (n Nebula) draw(r *Raster) {
	r.Fill(color.NRGBA{A: 255})

	src := prand.NewSource(n.Seed)
	size := float32(n.Size)

	base, detail, stars := nebulaCounts(n.Density, size)
	baseBand, detailBand, starBand := nebulaBands(base, detail)

	for i := 0; i < base; i++ {
		off := baseBand + float64(i*nebulaShapeStride)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		radius := src.Float32(off+2, float64(size/8), float64(size/3))
		opacity := src.Float32(off+3, 0.05, 0.2)
		r.FillCircleSoft(cx, cy, radius, n.Primary, opacity)
	}

	for i := 0; i < detail; i++ {
		off := detailBand + float64(i*nebulaShapeStride)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		radius := src.Float32(off+2, float64(size/24), float64(size/10))
		opacity := src.Float32(off+3, 0.08, 0.3)
		r.FillCircleSoft(cx, cy, radius, n.Secondary, opacity)
	}

	// Soften the cloud layers before the stars go on, so the points
	// stay crisp.
	blurred := blur.Gaussian(r.RGBA, float64(size)/64)
	copy(r.Pix, blurred.Pix)
	// The convolution's truncating normalization erodes alpha; the
	// texture is opaque by construction, so restore it.
	for i := 3; i < len(r.Pix); i += 4 {
		r.Pix[i] = 255
	}

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < stars; i++ {
		off := starBand + float64(i*nebulaShapeStride)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		radius := src.Float32(off+2, 0.8, 2.2)
		opacity := src.Float32(off+3, 0.5, 1)
		r.FillCircleSoft(cx, cy, radius, white, opacity)
	}
}

// nebulaCounts scales the three population sizes with density and
// texture area.
func nebulaCounts(density, size float32) (base, detail, stars int) {
	base = int(math32.Max(1, density*size*size/1024))
	return base, base * 2, base/2 + 4
}

// nebulaBands returns the starting draw offset of each population's
// band. Each band is sized to the population it holds so the three
// streams never overlap, whatever the texture size and density.
func nebulaBands(base, detail int) (baseBand, detailBand, starBand float64) {
	baseBand = nebulaBandStart
	detailBand = baseBand + float64(base*nebulaShapeStride)
	starBand = detailBand + float64(detail*nebulaShapeStride)
	return baseBand, detailBand, starBand
}
