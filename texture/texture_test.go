// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeStarShape(t *testing.T) {
	r, err := Synthesize(Star{Size: 128, Color: color.NRGBA{R: 255, G: 240, B: 200, A: 255}, Intensity: 1})
	require.NoError(t, err)

	assert.Equal(t, 128, r.Width())
	assert.Equal(t, 128, r.Height())
	assert.Equal(t, 128*128*4, len(r.Pix))

	// Fully opaque core, fully transparent corners.
	assert.EqualValues(t, 255, r.RGBAAt(64, 64).A)
	for _, pt := range [][2]int{{0, 0}, {127, 0}, {0, 127}, {127, 127}} {
		assert.EqualValues(t, 0, r.RGBAAt(pt[0], pt[1]).A, "corner %v", pt)
	}
}

func TestSynthesizeStarDeterminism(t *testing.T) {
	rec := Star{Size: 64, Color: color.NRGBA{R: 200, G: 220, B: 255, A: 255}, Intensity: 0.8}
	a, err := Synthesize(rec)
	require.NoError(t, err)
	b, err := Synthesize(rec)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestSynthesizeNebula(t *testing.T) {
	rec := Nebula{
		Size:      128,
		Primary:   color.NRGBA{R: 120, G: 40, B: 180, A: 255},
		Secondary: color.NRGBA{R: 60, G: 120, B: 220, A: 255},
		Density:   1,
		Seed:      42,
	}
	a, err := Synthesize(rec)
	require.NoError(t, err)
	b, err := Synthesize(rec)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)

	// Every pixel opaque (black base), and the clouds actually tinted
	// some of them away from pure black.
	colored := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			px := a.RGBAAt(x, y)
			assert.EqualValues(t, 255, px.A)
			if px.R > 0 || px.G > 0 || px.B > 0 {
				colored++
			}
		}
	}
	assert.Greater(t, colored, 128*128/10)

	// A different seed produces different pixels.
	rec.Seed = 43
	c, err := Synthesize(rec)
	require.NoError(t, err)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestNebulaBandsDisjoint(t *testing.T) {
	// Full-size texture at nominal density, where the detail population
	// outgrows any fixed band width.
	base, detail, stars := nebulaCounts(1, 256)
	assert.Equal(t, 64, base)
	assert.Equal(t, 128, detail)
	assert.Equal(t, 36, stars)

	baseBand, detailBand, starBand := nebulaBands(base, detail)
	assert.GreaterOrEqual(t, detailBand, baseBand+float64(base*nebulaShapeStride))
	assert.GreaterOrEqual(t, starBand, detailBand+float64(detail*nebulaShapeStride))
}

func TestSynthesizePlanetKinds(t *testing.T) {
	for _, kind := range []PlanetKind{Earth, Mars, GasGiant, Ice, Lava, Alien} {
		rec := Planet{Size: 96, Kind: kind, Seed: 7}
		a, err := Synthesize(rec)
		require.NoError(t, err, "kind %v", kind)
		b, err := Synthesize(rec)
		require.NoError(t, err)
		assert.Equal(t, a.Pix, b.Pix, "kind %v determinism", kind)

		// Planets are fully opaque everywhere.
		for y := 0; y < 96; y += 7 {
			for x := 0; x < 96; x += 7 {
				assert.EqualValues(t, 255, a.RGBAAt(x, y).A, "kind %v at %d,%d", kind, x, y)
			}
		}
	}
}

func TestSynthesizePlanetKindsDiffer(t *testing.T) {
	a, err := Synthesize(Planet{Size: 64, Kind: Earth, Seed: 7})
	require.NoError(t, err)
	b, err := Synthesize(Planet{Size: 64, Kind: Lava, Seed: 7})
	require.NoError(t, err)
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestSynthesizeInvalidDimensions(t *testing.T) {
	_, err := Synthesize(Star{Size: 0, Color: color.NRGBA{A: 255}, Intensity: 1})
	assert.ErrorIs(t, err, ErrTextureCreation)

	_, err = Synthesize(Planet{Size: -16, Kind: Mars, Seed: 1})
	assert.ErrorIs(t, err, ErrTextureCreation)
}

func TestPlanetKindByName(t *testing.T) {
	k, ok := PlanetKindByName("gas-giant")
	assert.True(t, ok)
	assert.Equal(t, GasGiant, k)

	_, ok = PlanetKindByName("nonesuch")
	assert.False(t, ok)

	assert.Equal(t, "lava", Lava.String())
}

func TestGradientColorAt(t *testing.T) {
	stops := []Stop{
		{Color: color.NRGBA{R: 255, A: 255}, Opacity: 1, Pos: 0},
		{Color: color.NRGBA{R: 255, A: 255}, Opacity: 0, Pos: 1},
	}
	assert.EqualValues(t, 255, colorAt(stops, 0).A)
	assert.EqualValues(t, 0, colorAt(stops, 1).A)
	mid := colorAt(stops, 0.5)
	assert.InDelta(t, 127, float64(mid.A), 2)
	// Pad spread beyond the ends.
	assert.EqualValues(t, 0, colorAt(stops, 1.5).A)
	assert.EqualValues(t, 255, colorAt(stops, -0.5).A)
}
