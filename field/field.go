// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field generates instance sets for rubble fields (asteroid
// belts and similar): per-instance placement, orientation, size, spin and
// color, all reproducible from a single field seed.
package field

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/prand"
)

// ErrInvalidParameter indicates a non-positive count/radius or an
// inverted size range.
var ErrInvalidParameter = errors.New("field: invalid parameter")

// Per-instance draw offsets are strided by offsetStride so the placement,
// size, rotation, spin and color draws of one instance never alias with
// another's. InstanceSeedStride separates the seed space of each
// instance's own mesh deformation from the field seed.
const (
	offsetStride = 10

	// InstanceSeedStride is the per-index stride added to the field seed
	// to produce each instance's private seed.
	InstanceSeedStride = 1000
)

// Instance is one procedurally placed body within a field. The slice of
// instances is owned by the caller; discarding it discards the field.
type Instance struct {

	// Position is the world position, offset from the field center.
	Position math32.Vector3

	// Rotation is the initial orientation in Euler radians.
	Rotation math32.Vector3

	// RotationSpeed is the angular velocity in radians/sec per axis.
	// Smaller instances spin faster (speed scales with 1/size).
	RotationSpeed math32.Vector3

	// Scale is the uniform size factor of the instance.
	Scale float32

	// Color is a muted per-instance tint, drawn within a narrow band so
	// the field reads as visually homogeneous.
	Color color.RGBA

	// Seed is the instance's private seed, derived from the field seed,
	// for generating its surface mesh independently but reproducibly.
	Seed float64
}

// Generate returns count instances distributed within a sphere of the
// given radius around center, with uniform sizes drawn from
// [minSize, maxSize] biased toward the small end. The same arguments
// always produce an identical slice, element for element.
//
// Placement is uniform by volume: the radial distance uses the cube root
// of a uniform draw, compensating for the r² growth of spherical shell
// volume so density does not pile up at the center.
func Generate(seed float64, count int, center math32.Vector3, radius, minSize, maxSize float32) ([]Instance, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count %d must be positive", ErrInvalidParameter, count)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v must be positive", ErrInvalidParameter, radius)
	}
	if minSize > maxSize {
		return nil, fmt.Errorf("%w: size range [%v, %v] inverted", ErrInvalidParameter, minSize, maxSize)
	}

	src := prand.NewSource(seed)
	insts := make([]Instance, count)
	for i := range insts {
		off := float64(i * offsetStride)

		// Uniform angular distribution over the sphere: theta uniform,
		// phi from acos(2u-1).
		theta := src.Float32(off, 0, 2*math32.Pi)
		phi := math32.Acos(src.Float32(off+1, -1, 1))
		r := radius * math32.Cbrt(float32(src.Float(off+2)))

		sinPhi := math32.Sin(phi)
		pos := math32.Vec3(
			r*sinPhi*math32.Cos(theta),
			r*math32.Cos(phi),
			r*sinPhi*math32.Sin(theta),
		).Add(center)

		// Squared uniform biases toward small sizes: many small bodies,
		// few large ones.
		u := float32(src.Float(off + 3))
		size := minSize + u*u*(maxSize-minSize)

		rot := math32.Vec3(
			src.Float32(off+4, 0, 2*math32.Pi),
			src.Float32(off+5, 0, 2*math32.Pi),
			src.Float32(off+6, 0, 2*math32.Pi),
		)

		spin := math32.Vec3(
			src.Float32(off+7, -0.5, 0.5),
			src.Float32(off+8, -0.5, 0.5),
			src.Float32(off+9, -0.5, 0.5),
		).DivScalar(size)

		clr := color.RGBA{
			R: uint8(src.Draw(off+6.5, 0.4, 0.6) * 255),
			G: uint8(src.Draw(off+7.5, 0.4, 0.6) * 255),
			B: uint8(src.Draw(off+8.5, 0.4, 0.6) * 255),
			A: 255,
		}

		insts[i] = Instance{
			Position:      pos,
			Rotation:      rot,
			RotationSpeed: spin,
			Scale:         size,
			Color:         clr,
			Seed:          seed + float64(i)*InstanceSeedStride,
		}
	}
	return insts, nil
}
