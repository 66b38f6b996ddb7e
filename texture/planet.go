// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image/color"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/prand"
)

// PlanetKind selects the surface grammar and palette of a planet texture.
type PlanetKind int32

const (
	// Earth is an earth-like surface: oceans, irregular continents,
	// polar ice.
	Earth PlanetKind = iota

	// Mars is a dusty cratered surface.
	Mars

	// GasGiant is horizontally banded with an optional storm spot.
	GasGiant

	// Ice is a pale frozen surface veined with cracks.
	Ice

	// Lava is a dark surface with glowing flows and hotspots.
	Lava

	// Alien is an off-palette surface with concentric rings and spots.
	Alien
)

var planetKindNames = []string{"earth", "mars", "gas-giant", "ice", "lava", "alien"}

func (k PlanetKind) String() string {
	if k < 0 || int(k) >= len(planetKindNames) {
		return "unknown"
	}
	return planetKindNames[int(k)]
}

// PlanetKindByName returns the kind with the given name, or Earth and
// false if unrecognized.
func PlanetKindByName(name string) (PlanetKind, bool) {
	for i, n := range planetKindNames {
		if n == name {
			return PlanetKind(i), true
		}
	}
	return Earth, false
}

// Planet synthesizes a kind-specific planet surface. Each kind is an
// ordered sequence of layered draws; later layers cover earlier ones
// where they overlap.
type Planet struct {

	// Size is the square texture edge length in pixels.
	Size int

	// Kind selects the surface grammar.
	Kind PlanetKind

	// Seed determines every shape placement.
	Seed float64
}

func (p Planet) Dims() (int, int) {
	return p.Size, p.Size
}

func (p Planet) draw(r *Raster) {
	src := prand.NewSource(p.Seed)
	switch p.Kind {
	case Mars:
		drawMars(r, src)
	case GasGiant:
		drawGasGiant(r, src)
	case Ice:
		drawIce(r, src)
	case Lava:
		drawLava(r, src)
	case Alien:
		drawAlien(r, src)
	default:
		drawEarth(r, src)
	}
}

// continentPoints samples an irregular closed perimeter around (cx, cy):
// evenly spaced angles with a seeded radius jitter per sample.
func continentPoints(src prand.Source, off float64, cx, cy, baseRadius float32, samples int) []math32.Vector2 {
	pts := make([]math32.Vector2, samples)
	for j := 0; j < samples; j++ {
		ang := float32(j) / float32(samples) * 2 * math32.Pi
		rad := baseRadius * src.Float32(off+float64(j), 0.55, 1.25)
		pts[j] = math32.Vec2(cx+math32.Cos(ang)*rad, cy+math32.Sin(ang)*rad)
	}
	return pts
}

func drawEarth(r *Raster, src prand.Source) {
	size := float32(r.Width())
	ocean := color.NRGBA{R: 22, G: 74, B: 142, A: 255}
	r.Fill(ocean)

	continents := 4 + int(src.Float(1)*4)
	for i := 0; i < continents; i++ {
		off := float64(100 + i*40)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, float64(size)*0.15, float64(size)*0.85)
		base := src.Float32(off+2, float64(size)/12, float64(size)/5)
		green := color.NRGBA{
			R: uint8(src.Draw(off+3, 40, 80)),
			G: uint8(src.Draw(off+4, 110, 160)),
			B: uint8(src.Draw(off+5, 40, 70)),
			A: 255,
		}
		r.FillPolygon(continentPoints(src, off+10, cx, cy, base, 12), green)
	}

	// Polar ice caps.
	ice := color.NRGBA{R: 235, G: 243, B: 250, A: 230}
	r.FillEllipse(size/2, 0, size*0.42, size*0.09, ice)
	r.FillEllipse(size/2, size, size*0.42, size*0.09, ice)
}

func drawMars(r *Raster, src prand.Source) {
	size := float32(r.Width())
	r.Fill(color.NRGBA{R: 176, G: 88, B: 46, A: 255})

	// Dust shading patches.
	for i := 0; i < 8; i++ {
		off := float64(100 + i*10)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		rad := src.Float32(off+2, float64(size)/10, float64(size)/4)
		shade := color.NRGBA{R: 150, G: 70, B: 38, A: 255}
		r.FillCircleSoft(cx, cy, rad, shade, src.Float32(off+3, 0.1, 0.3))
	}

	// Craters: dark bowl with an offset rim highlight.
	craters := 10 + int(src.Float(2)*10)
	for i := 0; i < craters; i++ {
		off := float64(500 + i*10)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		rad := src.Float32(off+2, float64(size)/64, float64(size)/16)
		bowl := color.NRGBA{R: 110, G: 52, B: 28, A: 255}
		rim := color.NRGBA{R: 210, G: 120, B: 70, A: 255}
		r.FillCircleSoft(cx, cy, rad, bowl, 0.8)
		r.FillCircleSoft(cx-rad*0.3, cy-rad*0.3, rad*0.55, rim, 0.5)
	}
}

func drawGasGiant(r *Raster, src prand.Source) {
	size := float32(r.Width())
	a := color.NRGBA{R: 216, G: 178, B: 130, A: 255}
	b := color.NRGBA{R: 168, G: 126, B: 88, A: 255}
	r.Fill(a)

	// Horizontal wavy bands alternating between the two colors.
	bands := 6 + int(src.Float(1)*5)
	bandH := size / float32(bands)
	for i := 0; i < bands; i++ {
		if i%2 == 0 {
			continue
		}
		off := float64(100 + i*10)
		phase := src.Float32(off, 0, 2*math32.Pi)
		amp := src.Float32(off+1, float64(bandH)*0.1, float64(bandH)*0.35)
		freq := src.Float32(off+2, 2, 5) * 2 * math32.Pi / size

		y0 := float32(i) * bandH
		const waveSamples = 32
		pts := make([]math32.Vector2, 0, waveSamples*2+2)
		for j := 0; j <= waveSamples; j++ {
			x := float32(j) / waveSamples * size
			pts = append(pts, math32.Vec2(x, y0+math32.Sin(x*freq+phase)*amp))
		}
		for j := waveSamples; j >= 0; j-- {
			x := float32(j) / waveSamples * size
			pts = append(pts, math32.Vec2(x, y0+bandH+math32.Sin(x*freq+phase+1)*amp))
		}
		r.FillPolygon(pts, b)
	}

	// Optional storm spot.
	if src.Float(50) > 0.4 {
		cx := src.Float32(51, float64(size)*0.2, float64(size)*0.8)
		cy := src.Float32(52, float64(size)*0.3, float64(size)*0.7)
		rx := src.Float32(53, float64(size)/12, float64(size)/7)
		storm := color.NRGBA{R: 196, G: 98, B: 64, A: 240}
		r.FillEllipse(cx, cy, rx, rx*0.6, storm)
	}
}

func drawIce(r *Raster, src prand.Source) {
	size := float32(r.Width())
	r.Fill(color.NRGBA{R: 206, G: 228, B: 242, A: 255})

	// Subtle depth patches under the cracks.
	for i := 0; i < 6; i++ {
		off := float64(100 + i*10)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		rad := src.Float32(off+2, float64(size)/8, float64(size)/3)
		deep := color.NRGBA{R: 150, G: 190, B: 220, A: 255}
		r.FillCircleSoft(cx, cy, rad, deep, src.Float32(off+3, 0.1, 0.25))
	}

	// Crack veins: seeded random walks.
	cracks := 6 + int(src.Float(2)*5)
	crack := color.NRGBA{R: 90, G: 130, B: 170, A: 220}
	for i := 0; i < cracks; i++ {
		off := float64(500 + i*40)
		x := src.Float32(off, 0, float64(size))
		y := src.Float32(off+1, 0, float64(size))
		segs := 4 + int(src.Float(off+2)*5)
		pts := make([]math32.Vector2, 0, segs+1)
		pts = append(pts, math32.Vec2(x, y))
		for j := 0; j < segs; j++ {
			x += src.Float32(off+float64(3+j*2), -float64(size)/8, float64(size)/8)
			y += src.Float32(off+float64(4+j*2), -float64(size)/8, float64(size)/8)
			pts = append(pts, math32.Vec2(x, y))
		}
		r.StrokePolyline(pts, src.Float32(off+30, 0.8, 2), crack)
	}
}

func drawLava(r *Raster, src prand.Source) {
	size := float32(r.Width())
	r.Fill(color.NRGBA{R: 38, G: 26, B: 24, A: 255})

	// Glowing flows: polylines stroked per-segment with a color gradient
	// from bright orange at the source to deep red downstream.
	hot := color.NRGBA{R: 255, G: 160, B: 40, A: 255}
	cool := color.NRGBA{R: 170, G: 34, B: 18, A: 255}
	flows := 5 + int(src.Float(1)*5)
	for i := 0; i < flows; i++ {
		off := float64(100 + i*40)
		x := src.Float32(off, 0, float64(size))
		y := src.Float32(off+1, 0, float64(size))
		segs := 5 + int(src.Float(off+2)*4)
		width := src.Float32(off+3, 2, 5)
		for j := 0; j < segs; j++ {
			nx := x + src.Float32(off+float64(4+j*2), -float64(size)/10, float64(size)/10)
			ny := y + src.Float32(off+float64(5+j*2), -float64(size)/10, float64(size)/10)
			t := float32(j) / float32(segs-1)
			c := color.NRGBA{
				R: uint8(math32.Lerp(float32(hot.R), float32(cool.R), t)),
				G: uint8(math32.Lerp(float32(hot.G), float32(cool.G), t)),
				B: uint8(math32.Lerp(float32(hot.B), float32(cool.B), t)),
				A: 255,
			}
			r.StrokePolyline([]math32.Vector2{{X: x, Y: y}, {X: nx, Y: ny}}, width, c)
			x, y = nx, ny
		}
	}

	// Hotspots.
	glow := color.NRGBA{R: 255, G: 210, B: 90, A: 255}
	spots := 8 + int(src.Float(2)*8)
	for i := 0; i < spots; i++ {
		off := float64(900 + i*10)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		rad := src.Float32(off+2, 1.5, float64(size)/32)
		r.FillCircleSoft(cx, cy, rad, glow, src.Float32(off+3, 0.5, 0.9))
	}
}

func drawAlien(r *Raster, src prand.Source) {
	size := float32(r.Width())
	r.Fill(color.NRGBA{R: 84, G: 44, B: 120, A: 255})

	// Concentric rings around a seeded focus.
	teal := color.NRGBA{R: 60, G: 190, B: 180, A: 220}
	fx := src.Float32(1, float64(size)*0.3, float64(size)*0.7)
	fy := src.Float32(2, float64(size)*0.3, float64(size)*0.7)
	rings := 3 + int(src.Float(3)*3)
	const ringSamples = 48
	for i := 0; i < rings; i++ {
		off := float64(100 + i*10)
		rad := float32(i+1) / float32(rings) * size * src.Float32(off, 0.3, 0.5)
		pts := make([]math32.Vector2, ringSamples+1)
		for j := 0; j <= ringSamples; j++ {
			ang := float32(j) / ringSamples * 2 * math32.Pi
			pts[j] = math32.Vec2(fx+math32.Cos(ang)*rad, fy+math32.Sin(ang)*rad)
		}
		r.StrokePolyline(pts, src.Float32(off+1, 1, 3), teal)
	}

	// Scattered spots in a second accent color.
	accent := color.NRGBA{R: 220, G: 230, B: 80, A: 255}
	spots := 6 + int(src.Float(4)*8)
	for i := 0; i < spots; i++ {
		off := float64(500 + i*10)
		cx := src.Float32(off, 0, float64(size))
		cy := src.Float32(off+1, 0, float64(size))
		rad := src.Float32(off+2, float64(size)/40, float64(size)/14)
		r.FillCircleSoft(cx, cy, rad, accent, src.Float32(off+3, 0.3, 0.7))
	}
}
