// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// Raster is the RGBA destination surface for texture synthesis: 8-bit per
// channel, row-major, top-to-bottom, as consumed by a texture upload.
// All drawing composites with standard alpha-over only.
type Raster struct {
	*image.RGBA
}

// NewRaster returns a cleared (fully transparent) raster surface of the
// given dimensions, or ErrTextureCreation for non-positive dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrTextureCreation, width, height)
	}
	return &Raster{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.Rect.Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.Rect.Dy()
}

// Fill covers the whole surface with the given color, replacing any
// existing content.
func (r *Raster) Fill(c color.NRGBA) {
	draw.Draw(r.RGBA, r.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// blend composites c over the pixel at (x, y) with standard alpha-over.
func (r *Raster) blend(x, y int, c color.NRGBA) {
	if c.A == 0 || !(image.Point{X: x, Y: y}.In(r.Rect)) {
		return
	}
	d := r.RGBAAt(x, y)
	a := uint32(c.A)
	ia := 255 - a
	d.R = uint8((uint32(c.R)*a + uint32(d.R)*ia) / 255)
	d.G = uint8((uint32(c.G)*a + uint32(d.G)*ia) / 255)
	d.B = uint8((uint32(c.B)*a + uint32(d.B)*ia) / 255)
	d.A = uint8(a + uint32(d.A)*ia/255)
	r.SetRGBA(x, y, d)
}

// FillPolygon fills the polygon described by pts (implicitly closed) with
// the given color, antialiased via coverage rasterization.
func (r *Raster) FillPolygon(pts []math32.Vector2, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(r.Width(), r.Height())
	z.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		z.LineTo(p.X, p.Y)
	}
	z.ClosePath()
	z.Draw(r.RGBA, r.Rect, image.NewUniform(c), image.Point{})
}

// ellipseKappa is the cubic Bezier control-point factor approximating a
// quarter circle.
const ellipseKappa = 0.5522848

// FillEllipse fills an axis-aligned ellipse centered at (cx, cy) with
// radii rx, ry.
func (r *Raster) FillEllipse(cx, cy, rx, ry float32, c color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	ox := rx * ellipseKappa
	oy := ry * ellipseKappa
	z := vector.NewRasterizer(r.Width(), r.Height())
	z.MoveTo(cx-rx, cy)
	z.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	z.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	z.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	z.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	z.ClosePath()
	z.Draw(r.RGBA, r.Rect, image.NewUniform(c), image.Point{})
}

// StrokePolyline strokes the open polyline pts with the given width,
// drawing each segment as a perpendicular-offset quad. Joins are butt
// joins; overlapping segment coverage accumulates, which is adequate for
// the organic strokes (cracks, flows) drawn here.
func (r *Raster) StrokePolyline(pts []math32.Vector2, width float32, c color.NRGBA) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	z := vector.NewRasterizer(r.Width(), r.Height())
	hw := width / 2
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dir := b.Sub(a).Normal()
		if dir == (math32.Vector2{}) {
			continue
		}
		perp := math32.Vec2(-dir.Y, dir.X).MulScalar(hw)
		z.MoveTo(a.X+perp.X, a.Y+perp.Y)
		z.LineTo(b.X+perp.X, b.Y+perp.Y)
		z.LineTo(b.X-perp.X, b.Y-perp.Y)
		z.LineTo(a.X-perp.X, a.Y-perp.Y)
		z.ClosePath()
	}
	z.Draw(r.RGBA, r.Rect, image.NewUniform(c), image.Point{})
}

// FillCircleSoft composites a circle with a quadratic alpha falloff from
// full opacity at the center to zero at the radius, the soft "cloud puff"
// primitive.
func (r *Raster) FillCircleSoft(cx, cy, radius float32, c color.NRGBA, opacity float32) {
	if radius <= 0 || opacity <= 0 {
		return
	}
	x0 := int(math32.Floor(cx - radius))
	x1 := int(cx + radius + 1)
	y0 := int(math32.Floor(cy - radius))
	y1 := int(cy + radius + 1)
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			d2 := dx*dx + dy*dy
			if d2 >= r2 {
				continue
			}
			fall := 1 - math32.Sqrt(d2)/radius
			a := math32.Clamp(opacity*fall*fall, 0, 1)
			pc := c
			pc.A = uint8(a * float32(c.A))
			r.blend(x, y, pc)
		}
	}
}

// FillRadialGradient composites a radial gradient disc centered at
// (cx, cy): the color at each pixel is the gradient stop color at
// t = distance/radius, with Pad spread beyond the last stop.
func (r *Raster) FillRadialGradient(cx, cy, radius float32, stops []Stop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			t := math32.Sqrt(dx*dx+dy*dy) / radius
			r.blend(x, y, colorAt(stops, t))
		}
	}
}
